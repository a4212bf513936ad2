package mcp

import (
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("workoutlog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Workout log calculator. Estimate calories and duration for cardio, strength and flexibility exercises, and summarize a workout built from a list of exercises. Nothing is stored between calls."),
	)

	h := &handlers{log: log, now: time.Now}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolSummarizeWorkout, Handler: h.summarizeWorkout},
		server.ServerTool{Tool: toolEstimateExercise, Handler: h.estimateExercise},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCalorieFormulas, Handler: h.calorieFormulas},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	log *slog.Logger
	now func() time.Time
}

// --- Resource definitions ---

var resCalorieFormulas = mcp.NewResource(
	"workoutlog://calorie_formulas",
	"Calorie Formulas",
	mcp.WithResourceDescription("Calorie and duration formulas for each exercise kind, plus flexibility intensity multipliers"),
	mcp.WithMIMEType("application/json"),
)
