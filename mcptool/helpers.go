// SPDX-License-Identifier: MIT

// Package mcptool exposes the constellation builder and the sky service as
// MCP tools.
//
// Each tool follows the same shape:
//   - a struct with its dependencies injected via constructor
//   - Definition() returns the mcp.Tool schema
//   - Handle() processes the request and returns a result
//
// Invalid input is reported as a tool error result, never as a Go error.
package mcptool

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/armaan-choudhary/zola/constellation"
)

// ErrInvalidArgument reports a tool argument of the wrong shape.
var ErrInvalidArgument = errors.New("mcptool: invalid argument")

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing. JSON numbers arrive as float64, so a
// fractional or out-of-range value is rejected rather than truncated.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) (int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return defaultVal, nil
	}
	v, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("'%s' must be a number: %w", key, ErrInvalidArgument)
	}
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("'%s' must be a whole number, got %g: %w", key, v, ErrInvalidArgument)
	}

	return int(v), nil
}

// boolArg extracts a boolean argument; ok is false when the key is absent.
func boolArg(req mcp.CallToolRequest, key string) (v, ok bool) {
	v, ok = req.GetArguments()[key].(bool)
	return v, ok
}

// policyArgs resolves the preset plus per-field overrides.
func policyArgs(req mcp.CallToolRequest) (constellation.Policy, error) {
	p, err := constellation.PolicyByName(req.GetString("preset", ""))
	if err != nil {
		return constellation.Policy{}, err
	}
	if p.MaxDegree, err = intArg(req, "max_degree", p.MaxDegree); err != nil {
		return constellation.Policy{}, err
	}
	if v, ok := boolArg(req, "hub_allowance"); ok {
		p.HubAllowance = v
	}
	if v, ok := boolArg(req, "jitter"); ok {
		p.Jitter = v
	}

	return p, p.Validate()
}

// jsonResult renders v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
