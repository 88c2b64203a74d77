// SPDX-License-Identifier: MIT
package mcptool

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/armaan-choudhary/zola/sky"
)

// NewServer registers every tool. svc may be nil, in which case only
// build_constellation is offered.
func NewServer(version string, svc *sky.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"zola",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	buildTool := NewBuildTool()
	s.AddTool(buildTool.Definition(), buildTool.Handle)

	if svc != nil {
		skyTool := NewSkyTool(svc)
		s.AddTool(skyTool.Definition(), skyTool.Handle)

		addStarTool := NewAddStarTool(svc)
		s.AddTool(addStarTool.Definition(), addStarTool.Handle)
	}

	return s
}
