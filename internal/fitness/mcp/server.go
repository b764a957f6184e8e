package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with fitness tools: dashboard, personal records,
// exercise progress, workouts for a time range, exercise catalog.
// Used by the HTTP backend at /mcp and by the stdio binary.
func NewServer(state StateReader) *mcp.Server {
	h := NewHandler(NewStatsService(state))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack-stats",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Returns the training dashboard: streak, summary, personal records, category distribution, weekly volume (last 12 weeks), 90 day activity, goal progress and body-weight trend. Optional arg: window (7d, 30d, 90d, all) for summary and distribution.",
	}, h.GetDashboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the best set (highest weight x reps) of every exercise ever logged, with its date.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns per-entry max weight and total volume over time for one exercise, plus its personal record. Arg: exercise (name as logged). Use when asking how an exercise improved.",
	}, h.GetExerciseProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workouts_for_time_range",
		Description: "Returns workout entries (exercise, date, sets of weight x reps) within the given date range, both ends included. Args: from_date, to_date (YYYY-MM-DD); optional: exercise, category.",
	}, h.GetWorkoutsForTimeRangeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_catalog",
		Description: "Returns the exercise catalog: categories with their exercises, built-in ones first, then user added.",
	}, h.GetExerciseCatalogTool())

	return s
}
