// ABOUTME: MCP tool implementations for workout tracking.
// ABOUTME: Provides CRUD operations for sessions, exercises, and sets plus stats.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// start_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a new workout session (Push, Pull, Legs, Cardio, or Custom)",
	}, s.handleStartWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workout sessions, newest first, optionally filtered by type",
	}, s.handleListWorkouts)

	// get_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout session with all its exercises and sets",
	}, s.handleGetWorkout)

	// delete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout session and everything in it",
	}, s.handleDeleteWorkout)

	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to a workout session",
	}, s.handleAddExercise)

	// delete_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Delete an exercise and its sets from a workout session",
	}, s.handleDeleteExercise)

	// add_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_set",
		Description: fmt.Sprintf("Record up to %d identical sets (weight in kg, reps) for an exercise. Use get_workout first to see each exercise's last_set.", models.MaxBatchSets),
	}, s.handleAddSet)

	// update_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_set",
		Description: "Change the weight and/or reps of a recorded set",
	}, s.handleUpdateSet)

	// delete_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_set",
		Description: "Delete a recorded set; other sets keep their numbers",
	}, s.handleDeleteSet)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get total sessions, exercises, volume, and workouts in the last 7 days",
	}, s.handleGetStats)
}

// Tool input/output types

type startWorkoutInput struct {
	Name        string `json:"name,omitempty" jsonschema:"session name, defaults to '<type> Workout'"`
	WorkoutType string `json:"workout_type,omitempty" jsonschema:"Push, Pull, Legs, Cardio, or Custom (default Custom)"`
}

type workoutOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	WorkoutType string `json:"workout_type"`
	Message     string `json:"message"`
}

type listWorkoutsInput struct {
	WorkoutType string `json:"workout_type,omitempty" jsonschema:"only list sessions of this type"`
	Limit       int    `json:"limit,omitempty" jsonschema:"max results (default 20)"`
}

type listWorkoutsOutput struct {
	Workouts []sessionSummary `json:"workouts"`
	Count    int              `json:"count"`
	Message  string           `json:"message,omitempty"`
}

type sessionInput struct {
	SessionID string `json:"session_id" jsonschema:"workout session id (session_xxxxxxxx)"`
}

type addExerciseInput struct {
	SessionID   string `json:"session_id" jsonschema:"workout session id"`
	Name        string `json:"name" jsonschema:"exercise name, e.g. Bench Press"`
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Chest, Back, Legs, Arms, Shoulders, or Core; guessed from the name when omitted"`
}

type exerciseOutput struct {
	ID          string `json:"id"`
	SessionID   string `json:"session_id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	Message     string `json:"message"`
}

type exerciseInput struct {
	SessionID  string `json:"session_id" jsonschema:"workout session id"`
	ExerciseID string `json:"exercise_id" jsonschema:"exercise id (exercise_xxxxxxxx)"`
}

type addSetInput struct {
	SessionID  string  `json:"session_id" jsonschema:"workout session id"`
	ExerciseID string  `json:"exercise_id" jsonschema:"exercise id"`
	Weight     float64 `json:"weight" jsonschema:"weight in kg, 0 for bodyweight, at most 2000"`
	Reps       int     `json:"reps" jsonschema:"repetitions, 1 to 1000"`
	Count      int     `json:"count,omitempty" jsonschema:"number of identical sets to add, 1 to 10 (default 1)"`
}

type addSetOutput struct {
	SetIDs  []string `json:"set_ids"`
	Volume  float64  `json:"volume"`
	Message string   `json:"message"`
}

type updateSetInput struct {
	SessionID  string   `json:"session_id" jsonschema:"workout session id"`
	ExerciseID string   `json:"exercise_id" jsonschema:"exercise id"`
	SetID      string   `json:"set_id" jsonschema:"set id (set_N)"`
	Weight     *float64 `json:"weight,omitempty" jsonschema:"new weight in kg"`
	Reps       *int     `json:"reps,omitempty" jsonschema:"new repetitions"`
}

type setInput struct {
	SessionID  string `json:"session_id" jsonschema:"workout session id"`
	ExerciseID string `json:"exercise_id" jsonschema:"exercise id"`
	SetID      string `json:"set_id" jsonschema:"set id (set_N)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type statsInput struct{}

type statsOutput struct {
	TotalSessions  int    `json:"total_sessions"`
	TotalExercises int    `json:"total_exercises"`
	TotalVolume    int    `json:"total_volume"`
	WeeklyWorkouts int    `json:"weekly_workouts"`
	WeightUnit     string `json:"weight_unit"`
	Message        string `json:"message"`
}

// Tool handlers

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	workoutType := models.CanonicalWorkoutType(input.WorkoutType)
	if workoutType == "" {
		workoutType = models.WorkoutCustom
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = models.DefaultSessionName(workoutType)
	}

	if err := (models.SessionInput{Name: name, WorkoutType: workoutType}).Validate(); err != nil {
		return nil, workoutOutput{}, err
	}

	id := s.repo.CreateSession(name, workoutType)
	s.logger.Debug().Str("session", id).Msg("session started")

	return nil, workoutOutput{
		ID:          id,
		Name:        name,
		WorkoutType: workoutType,
		Message:     fmt.Sprintf("Started %s (%s), ID: %s", name, workoutType, id),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, listWorkoutsOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var sessions []*models.Session
	for pair := s.repo.ListSessions().Oldest(); pair != nil; pair = pair.Next() {
		if input.WorkoutType != "" && !strings.EqualFold(pair.Value.WorkoutType, input.WorkoutType) {
			continue
		}
		sessions = append(sessions, pair.Value)
	}
	models.SortByRecent(sessions)

	out := listWorkoutsOutput{Workouts: []sessionSummary{}}
	for i, session := range sessions {
		if i >= input.Limit {
			break
		}
		out.Workouts = append(out.Workouts, toSessionSummary(session))
	}
	out.Count = len(out.Workouts)
	if out.Count == 0 {
		out.Message = "No workouts found."
	}

	return nil, out, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input sessionInput) (*mcp.CallToolResult, sessionView, error) {
	session, ok := s.repo.GetSession(input.SessionID)
	if !ok {
		return nil, sessionView{}, fmt.Errorf("workout not found: %s", input.SessionID)
	}

	return nil, toSessionView(session), nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input sessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !s.repo.DeleteSession(input.SessionID) {
		return nil, simpleOutput{}, fmt.Errorf("workout not found: %s", input.SessionID)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted workout: %s", input.SessionID),
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	name := strings.TrimSpace(input.Name)
	muscle := strings.TrimSpace(input.MuscleGroup)
	if muscle == "" {
		muscle = models.MuscleGroupFor(name)
	}
	if err := (models.ExerciseInput{Name: name, MuscleGroup: muscle}).Validate(); err != nil {
		return nil, exerciseOutput{}, err
	}

	id, ok := s.repo.AddExercise(input.SessionID, name, muscle)
	if !ok {
		return nil, exerciseOutput{}, fmt.Errorf("workout not found: %s", input.SessionID)
	}

	return nil, exerciseOutput{
		ID:          id,
		SessionID:   input.SessionID,
		Name:        name,
		MuscleGroup: muscle,
		Message:     fmt.Sprintf("Added %s (%s), ID: %s", name, muscle, id),
	}, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input exerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !s.repo.DeleteExercise(input.SessionID, input.ExerciseID) {
		return nil, simpleOutput{}, fmt.Errorf("exercise not found: %s/%s", input.SessionID, input.ExerciseID)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted exercise: %s", input.ExerciseID),
	}, nil
}

func (s *Server) handleAddSet(ctx context.Context, req *mcp.CallToolRequest, input addSetInput) (*mcp.CallToolResult, addSetOutput, error) {
	if input.Count == 0 {
		input.Count = 1
	}
	if err := (models.SetInput{Weight: input.Weight, Reps: input.Reps, Count: input.Count}).Validate(); err != nil {
		return nil, addSetOutput{}, err
	}

	out := addSetOutput{SetIDs: []string{}}
	for i := 0; i < input.Count; i++ {
		id, ok := s.repo.AddSet(input.SessionID, input.ExerciseID, input.Weight, input.Reps)
		if !ok {
			return nil, addSetOutput{}, fmt.Errorf("exercise not found: %s/%s", input.SessionID, input.ExerciseID)
		}
		out.SetIDs = append(out.SetIDs, id)
		out.Volume += input.Weight * float64(input.Reps)
	}
	out.Message = fmt.Sprintf("Added %d set(s) of %g x %d: %s",
		len(out.SetIDs), input.Weight, input.Reps, strings.Join(out.SetIDs, ", "))

	return nil, out, nil
}

func (s *Server) handleUpdateSet(ctx context.Context, req *mcp.CallToolRequest, input updateSetInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := (models.SetUpdate{Weight: input.Weight, Reps: input.Reps}).Validate(); err != nil {
		return nil, simpleOutput{}, err
	}

	if !s.repo.UpdateSet(input.SessionID, input.ExerciseID, input.SetID, input.Weight, input.Reps) {
		return nil, simpleOutput{}, fmt.Errorf("set not found: %s/%s/%s", input.SessionID, input.ExerciseID, input.SetID)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated set: %s", input.SetID),
	}, nil
}

func (s *Server) handleDeleteSet(ctx context.Context, req *mcp.CallToolRequest, input setInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !s.repo.DeleteSet(input.SessionID, input.ExerciseID, input.SetID) {
		return nil, simpleOutput{}, fmt.Errorf("set not found: %s/%s/%s", input.SessionID, input.ExerciseID, input.SetID)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted set: %s", input.SetID),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input statsInput) (*mcp.CallToolResult, statsOutput, error) {
	stats := s.repo.AppStats()
	unit := s.repo.UserSettings().WeightUnit

	return nil, statsOutput{
		TotalSessions:  stats.TotalSessions,
		TotalExercises: stats.TotalExercises,
		TotalVolume:    stats.TotalVolume,
		WeeklyWorkouts: stats.WeeklyWorkouts,
		WeightUnit:     unit,
		Message: fmt.Sprintf("%d sessions, %d exercises, %d %s lifted, %d this week",
			stats.TotalSessions, stats.TotalExercises, stats.TotalVolume, unit, stats.WeeklyWorkouts),
	}, nil
}
