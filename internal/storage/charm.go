// ABOUTME: Charm KV backend storing the workout document under one key.
// ABOUTME: Pulls from Charm Cloud on open and pushes after every write.
package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

const (
	// DefaultCharmHost is the Charm server used when none is configured.
	DefaultCharmHost = "charm.2389.dev"

	// CharmDBName is the Charm KV database holding the document.
	CharmDBName = "fittrack"

	documentKey   = "document"
	errReadOnlyKV = "cannot write: database is locked by another process (MCP server?)"
)

// CharmKV keeps the document in a Charm KV database.
type CharmKV struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

var _ Backend = (*CharmKV)(nil)

// OpenCharm opens the fittrack KV database against host. An empty host
// selects DefaultCharmHost.
func OpenCharm(host string) (*CharmKV, error) {
	if host == "" {
		host = DefaultCharmHost
	}
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", host); err != nil {
		return nil, fmt.Errorf("set charm host: %w", err)
	}

	db, err := kv.OpenWithDefaultsFallback(CharmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	c := &CharmKV{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return c, nil
}

func (c *CharmKV) Name() string {
	return "charm"
}

// IsReadOnly returns true if the database is open in read-only mode.
// This happens when another process (like an MCP server) holds the lock.
func (c *CharmKV) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *CharmKV) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// ID returns the Charm user ID for the linked account.
func (c *CharmKV) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Load returns the stored document, or nil if the key was never written.
func (c *CharmKV) Load() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := c.kv.Get([]byte(documentKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return data, nil
}

// Save stores the document and syncs if enabled.
func (c *CharmKV) Save(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return errors.New(errReadOnlyKV)
	}
	if err := c.kv.Set([]byte(documentKey), data); err != nil {
		return fmt.Errorf("set document: %w", err)
	}
	if c.autoSync {
		_ = c.kv.Sync()
	}
	return nil
}

// Sync synchronizes local state with Charm Cloud.
func (c *CharmKV) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// Close closes the KV database connection.
func (c *CharmKV) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}
