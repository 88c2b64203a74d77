// SPDX-License-Identifier: MIT
package mcptool

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/armaan-choudhary/zola/sky"
)

// SkyTool handles the sky_constellation MCP tool.
type SkyTool struct {
	svc *sky.Service
}

// NewSkyTool creates a SkyTool backed by svc.
func NewSkyTool(svc *sky.Service) *SkyTool {
	return &SkyTool{svc: svc}
}

// Definition returns the MCP tool definition for sky_constellation.
func (t *SkyTool) Definition() mcp.Tool {
	return mcp.NewTool("sky_constellation",
		mcp.WithDescription("Render one page of a stored sky: its stars, constellation lines and growth tier."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Sky slug, e.g. k3x9qa"),
		),
		mcp.WithNumber("page",
			mcp.Description("1-based page number (default 1)"),
		),
		mcp.WithString("format",
			mcp.Description("'summary' (default) for a readable outline, 'json' for the full view"),
			mcp.Enum("summary", "json"),
		),
	)
}

// Handle processes the sky_constellation tool call.
func (t *SkyTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := req.GetString("slug", "")
	if slug == "" {
		return mcp.NewToolResultError("'slug' is required"), nil
	}
	page, err := intArg(req, "page", 1)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	view, err := t.svc.View(ctx, slug, page)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("view failed: %v", err)), nil
	}
	if req.GetString("format", "summary") == "json" {
		return jsonResult(view)
	}

	return mcp.NewToolResultText(summarize(view)), nil
}

// summarize renders a view as a short outline.
func summarize(v sky.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sky %s by %s: %d stars, page %d/%d, tier %s\n",
		v.Sky.Slug, v.Sky.CreatorName, v.TotalStars, v.Page, v.Pages, v.Tier.Name)
	if !v.Revealed {
		fmt.Fprintf(&b, "Revealing in %s\n", v.RevealIn)
	}
	for _, s := range v.Stars {
		if !v.Revealed {
			fmt.Fprintf(&b, "  %s %s (%g,%g)\n", s.Emoji, s.ID, s.PosX, s.PosY)
			continue
		}
		fmt.Fprintf(&b, "  %s %s (%g,%g) %q\n", s.Emoji, s.ID, s.PosX, s.PosY, s.Message)
	}
	if len(v.Edges) > 0 {
		b.WriteString("Lines:\n")
		for _, e := range v.Edges {
			fmt.Fprintf(&b, "  %s - %s\n", e.A.ID, e.B.ID)
		}
	}
	if v.Hub != "" {
		fmt.Fprintf(&b, "Hub: %s\n", v.Hub)
	}

	return b.String()
}

// AddStarTool handles the add_star MCP tool.
type AddStarTool struct {
	svc *sky.Service
}

// NewAddStarTool creates an AddStarTool backed by svc.
func NewAddStarTool(svc *sky.Service) *AddStarTool {
	return &AddStarTool{svc: svc}
}

// Definition returns the MCP tool definition for add_star.
func (t *AddStarTool) Definition() mcp.Tool {
	return mcp.NewTool("add_star",
		mcp.WithDescription("Leave a wish as a new star in a sky. The position is chosen at random."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Sky slug")),
		mcp.WithString("message", mcp.Required(), mcp.Description("The wish, up to 500 characters")),
		mcp.WithString("sender_name", mcp.Description("Who is sending it")),
		mcp.WithString("emoji", mcp.Description("Emoji shown with the star (default ✨)")),
		mcp.WithString("style", mcp.Enum(sky.Styles...), mcp.Description("Star colour")),
		mcp.WithString("shape", mcp.Enum(sky.Shapes...), mcp.Description("Star shape")),
	)
}

// Handle processes the add_star tool call.
func (t *AddStarTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug := req.GetString("slug", "")
	if slug == "" {
		return mcp.NewToolResultError("'slug' is required"), nil
	}
	st, err := t.svc.AddStar(ctx, slug, sky.StarInput{
		Message:    req.GetString("message", ""),
		SenderName: req.GetString("sender_name", ""),
		Emoji:      req.GetString("emoji", ""),
		Style:      req.GetString("style", ""),
		Shape:      req.GetString("shape", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("add star failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Star %s placed at (%g,%g) in sky %s", st.ID, st.PosX, st.PosY, slug)), nil
}
