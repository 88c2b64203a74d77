// SPDX-License-Identifier: MIT
package server

import (
	"github.com/armaan-choudhary/zola/constellation"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is a stable machine-readable error code.
	Code string `json:"code,omitempty"`
}

// Error codes.
const (
	CodeInvalidRequest = "invalid_request"
	CodeNotFound       = "not_found"
	CodeInternal       = "internal"
)

// HealthResponse reports liveness and the optional dependencies.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Redis   string `json:"redis,omitempty"`
}

// PolicyRequest selects a preset and optionally overrides its fields.
type PolicyRequest struct {
	Preset       string `json:"preset,omitempty"`
	MaxDegree    *int   `json:"max_degree,omitempty"`
	HubAllowance *bool  `json:"hub_allowance,omitempty"`
	Jitter       *bool  `json:"jitter,omitempty"`
}

// Resolve turns the request into a Policy.
func (r PolicyRequest) Resolve() (constellation.Policy, error) {
	p, err := constellation.PolicyByName(r.Preset)
	if err != nil {
		return constellation.Policy{}, err
	}
	if r.MaxDegree != nil {
		p.MaxDegree = *r.MaxDegree
	}
	if r.HubAllowance != nil {
		p.HubAllowance = *r.HubAllowance
	}
	if r.Jitter != nil {
		p.Jitter = *r.Jitter
	}

	return p, p.Validate()
}

// BuildRequest is the body of POST /v1/constellation.
type BuildRequest struct {
	Points []constellation.Point `json:"points" binding:"max=500"`
	Policy PolicyRequest         `json:"policy"`
}

// BuildResponse carries the chosen lines and how they were chosen.
type BuildResponse struct {
	Policy   string               `json:"policy"`
	Edges    []constellation.Edge `json:"edges"`
	Greedy   int                  `json:"greedy"`
	Repaired int                  `json:"repaired"`
	Hub      string               `json:"hub,omitempty"`
	Length   float64              `json:"length"`
}

// UniverseResponse is the global star count shown on the home page.
type UniverseResponse struct {
	Stars int `json:"stars"`
}
