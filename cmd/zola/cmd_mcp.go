// SPDX-License-Identifier: MIT
package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/armaan-choudhary/zola/mcptool"
	"github.com/armaan-choudhary/zola/sky"
	"github.com/armaan-choudhary/zola/store"
)

func runMCP(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	var svc *sky.Service
	if !mcpNoStore {
		revealAt, err := cfg.RevealTime()
		if err != nil {
			return err
		}
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer st.Close()
		svc = sky.NewService(st,
			sky.WithLogger(log),
			sky.WithPolicy(cfg.Policy()),
			sky.WithStarsPerPage(cfg.Constellation.StarsPerPage),
			sky.WithRevealAt(revealAt),
		)
	}

	// The stdio server manages its own lifecycle.
	return server.ServeStdio(mcptool.NewServer(version, svc))
}
