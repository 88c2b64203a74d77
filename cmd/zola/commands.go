// SPDX-License-Identifier: MIT
package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/armaan-choudhary/zola/config"
	"github.com/armaan-choudhary/zola/logging"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "0.3.0"

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:   "zola",
		Short: "Skies of wishes joined into constellations",
		Long: `zola hosts shareable skies where visitors leave wishes as stars, and
connects each page of stars with a sparse, hand-drawn looking constellation.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	buildCmd = &cobra.Command{
		Use:   "build [points.json]",
		Short: "Build a constellation from a JSON point array (file or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBuild,
	}
	buildPreset    string
	buildMaxDegree int

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Generate the demo sky and print every page with its lines",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoStars  int
	demoSeed   int64
	demoPreset string

	mcpCmd = &cobra.Command{
		Use:   "mcp",
		Short: "Serve the constellation tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE:  runMCP,
	}
	mcpNoStore bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	configInitCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to zola.yaml (default $"+config.EnvPath+")")

	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildPreset, "preset", "p", "",
		"policy preset: classic, hub, wide-hub, tree (default: from config)")
	buildCmd.Flags().IntVar(&buildMaxDegree, "max-degree", -1,
		"override the degree cap; 0 means unbounded")

	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().IntVarP(&demoStars, "stars", "n", 30, "number of demo stars")
	demoCmd.Flags().Int64Var(&demoSeed, "seed", 1, "random seed for positions")
	demoCmd.Flags().StringVarP(&demoPreset, "preset", "p", "tree", "policy preset")

	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().BoolVar(&mcpNoStore, "no-store", false,
		"offer only build_constellation, without opening the database")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// loadConfig reads the configuration and builds the logger it names.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	logCfg := cfg.Log
	logCfg.Service = "zola"
	log := logging.New(logCfg)
	slog.SetDefault(log)

	return cfg, log, nil
}
