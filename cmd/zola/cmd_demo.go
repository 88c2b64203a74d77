// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/armaan-choudhary/zola/constellation"
	"github.com/armaan-choudhary/zola/sky"
)

// demoEpoch anchors demo timestamps so output is reproducible.
var demoEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	policy, err := constellation.PolicyByName(demoPreset)
	if err != nil {
		return err
	}
	svc := sky.NewService(nil,
		sky.WithLogger(log),
		sky.WithPolicy(policy),
		sky.WithStarsPerPage(cfg.Constellation.StarsPerPage),
	)

	return renderDemo(cmd.OutOrStdout(), svc, demoStars, demoSeed)
}

// renderDemo prints every page of a generated demo sky.
func renderDemo(w io.Writer, svc *sky.Service, n int, seed int64) error {
	stars := sky.DemoStars(n, rand.New(rand.NewSource(seed)), demoEpoch)
	demo := sky.Sky{Slug: sky.DemoSlug, CreatorName: sky.DemoSender, CreatedAt: demoEpoch}

	pages := sky.PageCount(len(stars), 0)
	for page := 1; page <= pages; page++ {
		v, err := svc.Render(demo, stars, page)
		if err != nil {
			return err
		}
		if page == 1 {
			pages = v.Pages
			fmt.Fprintf(w, "%d stars, phase %02d %s (%s), policy %s\n",
				v.TotalStars, v.Tier.ID, v.Tier.Name, v.Mood, svc.Policy().Label())
		}
		fmt.Fprintf(w, "page %d/%d:", v.Page, v.Pages)
		for _, e := range v.Edges {
			fmt.Fprintf(w, " %s-%s", e.A.ID, e.B.ID)
		}
		fmt.Fprintf(w, " (length %.1f)\n", constellation.TotalLength(v.Edges))
	}

	return nil
}
