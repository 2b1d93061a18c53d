package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/gymroutines/internal/gymstats/routines"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

// NewHandler builds a handler with the given service.
func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// RoutinesInput is the input for get_routines.
type RoutinesInput struct {
	MuscleGroup   string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (chest, back, legs, shoulders, arms, core, cardio)"`
	FavoritesOnly bool   `json:"favorites_only,omitempty" jsonschema:"Return only favorite routines"`
}

// GetRoutinesTool returns the MCP tool handler for get_routines.
func (h *Handler) GetRoutinesTool() func(context.Context, *mcp.CallToolRequest, RoutinesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RoutinesInput) (*mcp.CallToolResult, any, error) {
		list, err := h.service.GetRoutines(ctx, routines.FilterParams{
			MuscleGroup:   routines.MuscleGroup(in.MuscleGroup),
			FavoritesOnly: in.FavoritesOnly,
		})
		if err != nil {
			return errorResult("Error fetching routines: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

// RecentWorkoutsInput is the input for get_recent_workouts.
type RecentWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"How many workouts to return, newest first (default 10, max 50)"`
}

// GetRecentWorkoutsTool returns the MCP tool handler for get_recent_workouts.
func (h *Handler) GetRecentWorkoutsTool() func(context.Context, *mcp.CallToolRequest, RecentWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RecentWorkoutsInput) (*mcp.CallToolResult, any, error) {
		if in.Limit < 0 {
			return errorResult("Invalid limit: must not be negative"), nil, nil
		}
		recent, err := h.service.GetRecentWorkouts(ctx, in.Limit)
		if err != nil {
			return errorResult("Error fetching workouts: " + err.Error()), nil, nil
		}
		return jsonResult(recent), nil, nil
	}
}

// GetWorkoutStatisticsTool returns the MCP tool handler for get_workout_statistics.
func (h *Handler) GetWorkoutStatisticsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetStatistics(ctx)
		if err != nil {
			return errorResult("Error computing statistics: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// ExerciseHistoryInput is the input for get_exercise_history.
type ExerciseHistoryInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Routine exercise id, as returned by get_routines"`
}

// GetExerciseHistoryTool returns the MCP tool handler for get_exercise_history.
func (h *Handler) GetExerciseHistoryTool() func(context.Context, *mcp.CallToolRequest, ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID == "" {
			return errorResult("Missing exercise_id"), nil, nil
		}
		history, err := h.service.GetExerciseHistory(ctx, in.ExerciseID)
		if err != nil {
			return errorResult("Error fetching exercise history: " + err.Error()), nil, nil
		}
		return jsonResult(history), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
