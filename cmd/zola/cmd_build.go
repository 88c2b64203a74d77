// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/armaan-choudhary/zola/constellation"
)

// buildOutput is what `zola build` prints.
type buildOutput struct {
	Policy   string               `json:"policy"`
	Edges    []constellation.Edge `json:"edges"`
	Repaired int                  `json:"repaired"`
	Hub      string               `json:"hub,omitempty"`
	Length   float64              `json:"length"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	policy := cfg.Policy()
	if buildPreset != "" {
		if policy, err = constellation.PolicyByName(buildPreset); err != nil {
			return err
		}
	}
	if buildMaxDegree >= 0 {
		policy.MaxDegree = buildMaxDegree
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	return buildEdges(in, cmd.OutOrStdout(), policy)
}

// buildEdges reads a JSON point array from r and writes the constellation
// to w as indented JSON.
func buildEdges(r io.Reader, w io.Writer, policy constellation.Policy) error {
	var points []constellation.Point
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return fmt.Errorf("decode points: %w", err)
	}
	res, err := constellation.BuildDetailed(points, policy)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildOutput{
		Policy:   policy.Label(),
		Edges:    res.Edges,
		Repaired: res.Repaired,
		Hub:      res.Hub,
		Length:   res.Length,
	})
}
