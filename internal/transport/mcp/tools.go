package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domaindispatch "github.com/nvoss/staff-mesh/internal/domain/dispatch"
	portrecommender "github.com/nvoss/staff-mesh/internal/port/recommender"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
	"github.com/nvoss/staff-mesh/internal/service/orchestrator"
)

// RegisterTools registers all MCP tools on the server.
func RegisterTools(s *mcpserver.MCPServer, orch *orchestrator.Service, rec portrecommender.Recommender) {
	s.AddTool(mcpmcp.NewTool("run_batch",
		mcpmcp.WithDescription("Run one distribution pass over all pending tasks. Tasks whose confidence clears the threshold are committed; the rest are deferred for manual review. Returns the per-task outcomes and batch stats."),
		mcpmcp.WithString("skill_matching", mcpmcp.Description("Skill policy: strict, flexible, or adaptive. Default adaptive.")),
		mcpmcp.WithString("auto_assign_threshold", mcpmcp.Description("Minimum confidence (0-100) for auto-commit. Default 85.")),
		mcpmcp.WithString("balance_workload", mcpmcp.Description("true/false, default true")),
		mcpmcp.WithString("prioritize_efficiency", mcpmcp.Description("true/false, default true")),
		mcpmcp.WithString("consider_location", mcpmcp.Description("true/false, default true")),
	), runBatchHandler(orch))

	s.AddTool(mcpmcp.NewTool("recommend_task",
		mcpmcp.WithDescription("Preview the ranked staff recommendation for one task without committing anything."),
		mcpmcp.WithString("task_id", mcpmcp.Required(), mcpmcp.Description("Task UUID")),
	), recommendTaskHandler(rec))

	s.AddTool(mcpmcp.NewTool("assign_task",
		mcpmcp.WithDescription("Manually assign a task to a staff member. Uses the same atomic claim as the batch path; a task already claimed elsewhere is reported as a conflict."),
		mcpmcp.WithString("task_id", mcpmcp.Required(), mcpmcp.Description("Task UUID")),
		mcpmcp.WithString("staff_id", mcpmcp.Required(), mcpmcp.Description("Staff UUID")),
	), assignTaskHandler(orch))

	s.AddTool(mcpmcp.NewTool("get_dispatch_stats",
		mcpmcp.WithDescription("Counters accumulated since the last batch started: processed, auto-assigned, manual overrides, skipped conflicts, unassignable, average confidence."),
	), getStatsHandler(orch))
}

// settingsFromRequest overlays tool arguments on the default settings.
// Values arrive as strings; malformed ones fall back to the default.
func settingsFromRequest(req mcpmcp.CallToolRequest) domaindispatch.Settings {
	settings := domaindispatch.DefaultSettings

	if v := mcpmcp.ParseString(req, "skill_matching", ""); v != "" {
		settings.SkillMatching = domaindispatch.SkillMatching(v)
	}
	if v := mcpmcp.ParseString(req, "auto_assign_threshold", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			settings.AutoAssignThreshold = n
		}
	}
	for key, dst := range map[string]*bool{
		"balance_workload":      &settings.BalanceWorkload,
		"prioritize_efficiency": &settings.PrioritizeEfficiency,
		"consider_location":     &settings.ConsiderLocation,
	} {
		if v := mcpmcp.ParseString(req, key, ""); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}
	return settings
}

func runBatchHandler(orch *orchestrator.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		settings := settingsFromRequest(req)
		result, err := orch.RunBatch(ctx, settings)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func recommendTaskHandler(rec portrecommender.Recommender) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		taskID, err := uuid.Parse(mcpmcp.ParseString(req, "task_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid task_id"), nil
		}

		r, err := rec.Recommend(ctx, taskID, domaindispatch.DefaultSettings)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %v", err)), nil
		}
		return jsonResult(r)
	}
}

func assignTaskHandler(orch *orchestrator.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		taskID, err := uuid.Parse(mcpmcp.ParseString(req, "task_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid task_id"), nil
		}
		staffID, err := uuid.Parse(mcpmcp.ParseString(req, "staff_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid staff_id"), nil
		}

		switch err := orch.Assign(ctx, taskID, staffID); {
		case err == nil:
			return mcpmcp.NewToolResultText("assigned"), nil
		case errors.Is(err, porttask.ErrAlreadyAssigned):
			return mcpmcp.NewToolResultText("conflict: task already assigned"), nil
		case errors.Is(err, porttask.ErrNotFound):
			return mcpmcp.NewToolResultText("error: task not found"), nil
		default:
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %v", err)), nil
		}
	}
}

func getStatsHandler(orch *orchestrator.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		return jsonResult(orch.Stats())
	}
}

func jsonResult(v any) (*mcpmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcpmcp.NewToolResultText(fmt.Sprintf("error: %v", err)), nil
	}
	return mcpmcp.NewToolResultText(string(data)), nil
}
