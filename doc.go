// SPDX-License-Identifier: MIT

// Package zola is a personal night sky: friends leave short messages as
// stars, and every page of stars is joined by a hand-drawn looking
// constellation.
//
// What is inside?
//
//	• Constellation lines: degree-capped Kruskal with a single-hub exception,
//	  deterministic tie-break jitter and connectivity repair
//	• Sky service: skies, stars, pagination, tiers and the demo sequence
//	• Storage: pure-Go SQLite (no cgo) with versioned migrations
//	• Live updates: Redis pub/sub fanned out as Server-Sent Events
//	• Surfaces: a gin JSON API, an MCP tool server and the zola CLI
//
// Everything is organized as flat subpackages:
//
//	constellation/ — points, policies, distance oracles and the line builder
//	dsu/           — array-backed disjoint-set forest
//	sky/           — domain records, validation, paging and the Service
//	store/         — sqlite Repository
//	notify/        — redis Notifier and Subscriber
//	server/        — HTTP handlers, routes and graceful serving
//	mcptool/       — MCP tools over the builder and the sky service
//	metrics/       — prometheus collectors
//	config/        — YAML configuration
//	logging/       — slog construction
//	cmd/zola/      — the binary
//
// Quick ASCII example (the classic policy, cap 2):
//
//	    C
//	    │
//	    A───B
//	         ╲
//	          D
//
// four stars, three lines, nobody above two.
//
//	go install github.com/armaan-choudhary/zola/cmd/zola@latest
package zola
