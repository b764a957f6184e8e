package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/pkg"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

// DashboardInput is the input for get_dashboard.
type DashboardInput struct {
	Window string `json:"window,omitempty" jsonschema:"Time window for summary and category distribution: 7d, 30d, 90d or all (default all)"`
}

func (h *Handler) GetDashboardTool() func(context.Context, *mcp.CallToolRequest, DashboardInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in DashboardInput) (*mcp.CallToolResult, any, error) {
		window, err := stats.ParseWindow(in.Window)
		if err != nil {
			return errorResult("Invalid window: use 7d, 30d, 90d or all"), nil, nil
		}
		return jsonResult(h.service.Dashboard(window)), nil, nil
	}
}

func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.PersonalRecords()), nil, nil
	}
}

// ExerciseProgressInput is the input for get_exercise_progress.
type ExerciseProgressInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name as logged (e.g. Bankdrücken)"`
}

func (h *Handler) GetExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
		if in.Exercise == "" {
			return errorResult("exercise is required"), nil, nil
		}
		return jsonResult(h.service.ExerciseProgress(in.Exercise)), nil, nil
	}
}

// WorkoutsTimeRangeInput is the input for get_workouts_for_time_range.
type WorkoutsTimeRangeInput struct {
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD), included"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD), included"`
	Exercise string `json:"exercise,omitempty" jsonschema:"Filter by exercise name"`
	Category string `json:"category,omitempty" jsonschema:"Filter by category (e.g. Brust, Rücken)"`
}

func (h *Handler) GetWorkoutsForTimeRangeTool() func(context.Context, *mcp.CallToolRequest, WorkoutsTimeRangeInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in WorkoutsTimeRangeInput) (*mcp.CallToolResult, any, error) {
		from, err := pkg.ParseDate(in.FromDate)
		if err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, err := pkg.ParseDate(in.ToDate)
		if err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}

		list, err := h.service.WorkoutsForRange(RangeParams{
			From:     from,
			To:       to,
			Exercise: in.Exercise,
			Category: in.Category,
		})
		if err != nil {
			return errorResult("Error listing workouts: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}

func (h *Handler) GetExerciseCatalogTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.Catalog()), nil, nil
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

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}
