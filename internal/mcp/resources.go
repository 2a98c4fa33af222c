// ABOUTME: MCP resource implementations for workout tracking.
// ABOUTME: Provides fittrack://stats, fittrack://recent, and fittrack://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/dashboard"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	statsURI  = "fittrack://stats"
	recentURI = "fittrack://recent"
	todayURI  = "fittrack://today"
)

func (s *Server) registerResources() {
	// fittrack://stats - Derived counters and user settings
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         statsURI,
		Name:        "Workout Stats",
		Description: "Total sessions, exercises, volume, weekly workouts, and user settings",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// fittrack://recent - Latest sessions plus per-exercise totals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Workouts",
		Description: "Most recent workout sessions and per-exercise totals",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// fittrack://today - Full detail of today's sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Workouts",
		Description: "All workout sessions started today with their exercises and sets",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"generated_at":  s.now().Format(time.RFC3339),
		"app_stats":     s.repo.AppStats(),
		"user_settings": s.repo.UserSettings(),
	}
	return jsonResource(statsURI, result)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary := dashboard.Build(s.repo.Document(), s.now())

	recent := make([]map[string]interface{}, 0, len(summary.Recent))
	for _, r := range summary.Recent {
		recent = append(recent, map[string]interface{}{
			"id":           r.ID,
			"name":         r.Name,
			"workout_type": r.WorkoutType,
			"date":         r.Date,
			"time":         r.Time,
			"exercises":    r.Exercises,
			"sets":         r.Sets,
			"volume":       r.Volume,
		})
	}

	exercises := make([]map[string]interface{}, 0, len(summary.Exercises))
	for _, e := range summary.Exercises {
		exercises = append(exercises, map[string]interface{}{
			"name":         e.Name,
			"muscle_group": e.MuscleGroup,
			"sessions":     e.Sessions,
			"sets":         e.Sets,
			"volume":       e.Volume,
			"best_weight":  e.BestWeight,
		})
	}

	result := map[string]interface{}{
		"workouts":  recent,
		"exercises": exercises,
		"stats":     summary.Stats,
	}
	return jsonResource(recentURI, result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := s.now().Format(models.DateLayout)

	var sessions []*models.Session
	for pair := s.repo.ListSessions().Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Date == today {
			sessions = append(sessions, pair.Value)
		}
	}
	models.SortByRecent(sessions)

	views := make([]sessionView, 0, len(sessions))
	sets := 0
	var volume float64
	for _, session := range sessions {
		v := toSessionView(session)
		sets += v.SetCount
		volume += v.Volume
		views = append(views, v)
	}

	result := map[string]interface{}{
		"date":     today,
		"workouts": views,
		"counts": map[string]interface{}{
			"workouts": len(views),
			"sets":     sets,
			"volume":   volume,
		},
	}
	return jsonResource(todayURI, result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
