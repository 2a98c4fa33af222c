// ABOUTME: Validated user input for creating sessions, exercises, and sets.
// ABOUTME: Front ends validate here before calling the store, which only guards against unstorable volumes.
package models

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Limits enforced on set input.
const (
	// MaxBatchSets caps how many identical sets one request may add.
	MaxBatchSets = 10
	// MaxWeight is the heaviest weight accepted for a set.
	MaxWeight = 2000
	// MaxReps is the most repetitions accepted for a set.
	MaxReps = 1000
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// NaN and ±Inf would make volumes unencodable as JSON.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// SessionInput describes a session to start.
type SessionInput struct {
	Name        string `validate:"max=80"`
	WorkoutType string `validate:"required,max=40"`
}

// ExerciseInput describes an exercise to add.
type ExerciseInput struct {
	Name        string `validate:"required,max=80"`
	MuscleGroup string `validate:"max=40"`
}

// SetInput describes one or more identical sets to add.
type SetInput struct {
	Weight float64 `validate:"finite,gte=0,lte=2000"`
	Reps   int     `validate:"gte=1,lte=1000"`
	Count  int     `validate:"min=1,max=10"`
}

// SetUpdate describes a partial set edit; nil fields are left unchanged.
type SetUpdate struct {
	Weight *float64 `validate:"omitempty,finite,gte=0,lte=2000"`
	Reps   *int     `validate:"omitempty,gte=1,lte=1000"`
}

// Validate checks the session input.
func (in SessionInput) Validate() error { return check(in) }

// Validate checks the exercise input.
func (in ExerciseInput) Validate() error { return check(in) }

// Validate checks the set input.
func (in SetInput) Validate() error { return check(in) }

// Validate checks the set update. At least one field must be given.
func (in SetUpdate) Validate() error {
	if in.Weight == nil && in.Reps == nil {
		return errors.New("nothing to update: give a weight and/or reps")
	}
	return check(in)
}

// check runs struct validation and flattens failures into one readable error.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid input: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "finite":
		return field + " must be a finite number"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
