package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/workoutlog/internal/exercise"
	"github.com/mark3labs/mcp-go/mcp"
)

type formula struct {
	Kind     exercise.Kind `json:"kind"`
	Calories string        `json:"calories"`
	Duration string        `json:"duration"`
}

func (h *handlers) calorieFormulas(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	multipliers := make(map[exercise.Intensity]float64)
	for _, level := range exercise.Intensities() {
		multipliers[level] = level.Multiplier()
	}

	catalog := map[string]any{
		"formulas": []formula{
			{Kind: exercise.KindCardio, Calories: "distance_miles * 100", Duration: "duration_min"},
			{Kind: exercise.KindStrength, Calories: "weight_lbs * reps * sets * 0.05", Duration: "3 * sets"},
			{Kind: exercise.KindFlexibility, Calories: "duration_min * 2.5 * intensity_multiplier", Duration: "duration_min"},
		},
		"intensity_multipliers": multipliers,
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
