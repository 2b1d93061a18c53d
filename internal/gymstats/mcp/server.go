package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the workout tools: routines, recent workouts,
// statistics and exercise history.
// Served over stdio by cmd/gymroutines_mcp and over HTTP at /mcp by the main service.
func NewServer(service *ContextService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "gymroutines",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_routines",
		Description: "Returns the workout routines (id, name, description, day, favorite flag, exercises with sets/reps/weight). Optional filters: muscle_group (e.g. chest, legs), favorites_only. Use when you need to know what routines exist.",
	}, h.GetRoutinesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_recent_workouts",
		Description: "Returns the most recent completed workouts, newest first, with routine name, date, duration in minutes and number of exercises. Optional: limit (default 10).",
	}, h.GetRecentWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_statistics",
		Description: "Returns aggregate workout statistics as markdown: totals, most popular routines, workouts per weekday, top exercises and recent activity.",
	}, h.GetWorkoutStatisticsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_history",
		Description: "Returns per-day stats (avg weight, avg reps, sets) for one routine exercise across all logged workouts. Arg: exercise_id. Use when you need progression over time.",
	}, h.GetExerciseHistoryTool())

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}
