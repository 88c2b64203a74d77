// SPDX-License-Identifier: MIT
// Package: zola/constellation
//
// options.go — degree policy and functional options.
//
// Contract (strict):
//   • Policy is a plain value supplied per Build call; nothing is persisted.
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics; it returns ErrInvalidPolicy instead.
//   • Later options override earlier ones (last-wins).
//
// Observed variants, all expressible as a Policy:
//   • ClassicPolicy  — cap 2, no hub, no jitter (live sky page).
//   • HubPolicy      — cap 2, one hub may reach 3, jittered ranking.
//   • WideHubPolicy  — cap 3, one hub may reach 4, jittered ranking.
//   • TreePolicy     — no cap: plain Kruskal minimum spanning tree (demo page).

package constellation

import (
	"fmt"
	"strconv"
	"strings"
)

// Unbounded disables the degree cap when used as MaxDegree.
const Unbounded = 0

// DefaultMaxDegree is the cap used by DefaultPolicy.
const DefaultMaxDegree = 2

// Policy configures the constrained greedy selector and the distance oracle.
type Policy struct {
	// MaxDegree caps the number of lines per star during the greedy pass.
	// Unbounded (0) means no cap.
	MaxDegree int `json:"max_degree" yaml:"max_degree"`

	// HubAllowance lets a single star exceed MaxDegree by one. The first
	// star, in ranked edge order, that needs the extra line becomes that hub.
	HubAllowance bool `json:"hub_allowance" yaml:"hub_allowance"`

	// Jitter switches the oracle from Euclidean to Jittered. Ignored when
	// Distance is set.
	Jitter bool `json:"jitter" yaml:"jitter"`

	// Distance overrides the oracle entirely. Nil means "derive from Jitter".
	Distance DistanceFn `json:"-" yaml:"-"`
}

// Option mutates a Policy under construction.
type Option func(*Policy)

// WithMaxDegree sets the degree cap. Use Unbounded to disable it.
// Panics if d < 0.
func WithMaxDegree(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("constellation: WithMaxDegree(%d): degree must be ≥ 0", d))
	}
	return func(p *Policy) {
		p.MaxDegree = d
	}
}

// WithHubAllowance enables or disables the single-hub exception.
func WithHubAllowance(on bool) Option {
	return func(p *Policy) {
		p.HubAllowance = on
	}
}

// WithJitter enables or disables deterministic distance jitter.
func WithJitter(on bool) Option {
	return func(p *Policy) {
		p.Jitter = on
	}
}

// WithDistance installs a custom distance oracle. Panics on nil.
func WithDistance(fn DistanceFn) Option {
	if fn == nil {
		panic("constellation: WithDistance(nil)")
	}
	return func(p *Policy) {
		p.Distance = fn
	}
}

// DefaultPolicy returns ClassicPolicy.
func DefaultPolicy() Policy {
	return ClassicPolicy()
}

// ClassicPolicy caps every star at two lines, with no hub and no jitter.
func ClassicPolicy() Policy {
	return Policy{MaxDegree: DefaultMaxDegree}
}

// HubPolicy caps stars at two lines but lets one hub take a third, and
// jitters the ranking.
func HubPolicy() Policy {
	return Policy{MaxDegree: 2, HubAllowance: true, Jitter: true}
}

// WideHubPolicy caps stars at three lines, allows one hub at four, jittered.
func WideHubPolicy() Policy {
	return Policy{MaxDegree: 3, HubAllowance: true, Jitter: true}
}

// TreePolicy removes the cap: Build then returns the Euclidean minimum
// spanning tree.
func TreePolicy() Policy {
	return Policy{MaxDegree: Unbounded}
}

// NewPolicy starts from DefaultPolicy and applies opts in order.
func NewPolicy(opts ...Option) Policy {
	p := DefaultPolicy()
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Validate reports ErrInvalidPolicy for negative caps.
func (p Policy) Validate() error {
	if p.MaxDegree < 0 {
		return fmt.Errorf("max degree %d: %w", p.MaxDegree, ErrInvalidPolicy)
	}

	return nil
}

// distanceFn resolves the oracle for this policy.
func (p Policy) distanceFn() DistanceFn {
	switch {
	case p.Distance != nil:
		return p.Distance
	case p.Jitter:
		return Jittered
	default:
		return Euclidean
	}
}

// Label is a short, stable name for the policy, e.g. "cap2", "cap3+hub+jitter"
// or "unbounded". Custom oracles are tagged "+custom".
func (p Policy) Label() string {
	var b strings.Builder
	if p.MaxDegree == Unbounded {
		b.WriteString("unbounded")
	} else {
		b.WriteString("cap")
		b.WriteString(strconv.Itoa(p.MaxDegree))
		if p.HubAllowance {
			b.WriteString("+hub")
		}
	}
	switch {
	case p.Distance != nil:
		b.WriteString("+custom")
	case p.Jitter:
		b.WriteString("+jitter")
	}

	return b.String()
}

// Preset names accepted by PolicyByName.
const (
	PresetClassic = "classic"
	PresetHub     = "hub"
	PresetWideHub = "wide-hub"
	PresetTree    = "tree"
)

// PresetNames lists the presets in documentation order.
var PresetNames = []string{PresetClassic, PresetHub, PresetWideHub, PresetTree}

// PolicyByName returns the preset called name; "" selects DefaultPolicy.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", PresetClassic:
		return ClassicPolicy(), nil
	case PresetHub:
		return HubPolicy(), nil
	case PresetWideHub:
		return WideHubPolicy(), nil
	case PresetTree:
		return TreePolicy(), nil
	default:
		return Policy{}, fmt.Errorf("unknown preset %q (want one of %s): %w",
			name, strings.Join(PresetNames, ", "), ErrInvalidPolicy)
	}
}
