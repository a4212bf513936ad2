package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/claude/workoutlog/internal/exercise"
	"github.com/claude/workoutlog/internal/ingest"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolSummarizeWorkout = mcp.NewTool("summarize_workout",
	mcp.WithDescription("Build a workout from a list of exercises and return its exercise count, total calories, total duration, per-kind breakdown and a printable summary."),
	mcp.WithString("exercises", mcp.Required(), mcp.Description(`JSON array of exercises. Each item has "kind" (cardio, strength, flexibility) and "name", plus: cardio "distance" (miles) and "duration" (minutes); strength "weight" (lbs), "reps", "sets"; flexibility "duration" (minutes) and "intensity" (low, medium, high). Optional "date" (YYYY-MM-DD) defaults to today.`)),
)

var toolEstimateExercise = mcp.NewTool("estimate_exercise",
	mcp.WithDescription("Estimate calories burned and duration for a single exercise."),
	mcp.WithString("kind", mcp.Required(), mcp.Description("Exercise kind"), mcp.Enum("cardio", "strength", "flexibility")),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name (e.g. 'Running', 'Bench Press', 'Yoga')")),
	mcp.WithNumber("distance", mcp.Description("Cardio distance in miles")),
	mcp.WithNumber("duration", mcp.Description("Cardio or flexibility duration in minutes")),
	mcp.WithNumber("weight", mcp.Description("Strength weight in pounds (0 for bodyweight)")),
	mcp.WithNumber("reps", mcp.Description("Strength repetitions per set")),
	mcp.WithNumber("sets", mcp.Description("Strength set count")),
	mcp.WithString("intensity", mcp.Description("Flexibility intensity"), mcp.Enum("low", "medium", "high")),
	mcp.WithString("date", mcp.Description("Date performed (YYYY-MM-DD). Defaults to today.")),
)

// --- Tool handlers ---

func (h *handlers) summarizeWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("exercises")
	if err != nil {
		return mcp.NewToolResultError("exercises parameter is required"), nil
	}

	var entries []ingest.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return mcp.NewToolResultError("exercises must be a JSON array: " + err.Error()), nil
	}

	w, err := ingest.BuildWorkout(entries, h.now)
	if err != nil {
		return h.buildError("summarize_workout", err), nil
	}

	result, err := mcp.NewToolResultJSON(ingest.NewReport(w))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) estimateExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := req.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind parameter is required"), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	entry := ingest.Entry{
		Kind:      kind,
		Name:      name,
		Date:      req.GetString("date", ""),
		Distance:  req.GetFloat("distance", 0),
		Duration:  req.GetFloat("duration", 0),
		Weight:    req.GetFloat("weight", 0),
		Reps:      req.GetInt("reps", 0),
		Sets:      req.GetInt("sets", 0),
		Intensity: req.GetString("intensity", ""),
	}

	ex, err := entry.Build(h.now)
	if err != nil {
		return h.buildError("estimate_exercise", err), nil
	}

	result, err := mcp.NewToolResultJSON(ingest.NewExerciseReport(ex))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// buildError turns a construction failure into a tool error. Domain errors
// are the caller's fault and are not logged.
func (h *handlers) buildError(tool string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, exercise.ErrInvalidArgument):
		return mcp.NewToolResultError("invalid argument: " + err.Error())
	case errors.Is(err, exercise.ErrTypeMismatch):
		return mcp.NewToolResultError("type mismatch: " + err.Error())
	}
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError(err.Error())
}
