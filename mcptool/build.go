// SPDX-License-Identifier: MIT
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/armaan-choudhary/zola/constellation"
	"github.com/armaan-choudhary/zola/metrics"
)

// BuildTool handles the build_constellation MCP tool.
type BuildTool struct{}

// NewBuildTool creates a BuildTool.
func NewBuildTool() *BuildTool {
	return &BuildTool{}
}

// BuildOutput is the JSON payload returned by build_constellation.
type BuildOutput struct {
	Policy   string               `json:"policy"`
	Edges    []constellation.Edge `json:"edges"`
	Repaired int                  `json:"repaired"`
	Hub      string               `json:"hub,omitempty"`
	Length   float64              `json:"length"`
}

// Definition returns the MCP tool definition for build_constellation.
func (t *BuildTool) Definition() mcp.Tool {
	return mcp.NewTool("build_constellation",
		mcp.WithDescription(
			"Connect a set of 2D points into a sparse, line-like spanning tree. "+
				"Kruskal with a per-point degree cap, an optional single hub allowed "+
				"one extra line, and deterministic ID-based jitter.",
		),
		mcp.WithString("points",
			mcp.Required(),
			mcp.Description(`JSON array of points, e.g. [{"id":"a","x":10,"y":20}]`),
		),
		mcp.WithString("preset",
			mcp.Description("Policy preset: "+strings.Join(constellation.PresetNames, ", ")+" (default classic)"),
			mcp.Enum(constellation.PresetNames...),
		),
		mcp.WithNumber("max_degree",
			mcp.Description("Override the degree cap; 0 means unbounded"),
		),
		mcp.WithBoolean("hub_allowance",
			mcp.Description("Override the single-hub exception"),
		),
		mcp.WithBoolean("jitter",
			mcp.Description("Override deterministic distance jitter"),
		),
	)
}

// Handle processes the build_constellation tool call.
func (t *BuildTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := req.GetString("points", "")
	if raw == "" {
		return mcp.NewToolResultError("'points' is required"), nil
	}
	var points []constellation.Point
	if err := json.Unmarshal([]byte(raw), &points); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'points' is not a JSON point array: %v", err)), nil
	}
	policy, err := policyArgs(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := time.Now()
	res, err := constellation.BuildDetailed(points, policy)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("build failed: %v", err)), nil
	}
	metrics.ObserveBuild(policy.Label(), res.Repaired, time.Since(start))

	return jsonResult(BuildOutput{
		Policy:   policy.Label(),
		Edges:    res.Edges,
		Repaired: res.Repaired,
		Hub:      res.Hub,
		Length:   res.Length,
	})
}
