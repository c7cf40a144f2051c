package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all archscan MCP tools with the server
func RegisterTools(s *server.MCPServer, h *HandlerSet) {
	if h == nil {
		h = NewHandlerSet(nil)
	}

	// Tool 1: validate_architecture - Rule and cycle validation
	s.AddTool(mcp.NewTool("validate_architecture",
		mcp.WithDescription("Validate a TypeScript project against FSD, Clean or Hexagonal architecture rules and report circular dependencies"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Project root directory to validate")),
		mcp.WithString("architecture",
			mcp.Enum("fsd", "clean", "hexagonal", "auto"),
			mcp.Description("Architecture style to validate against (default: from .archscan.toml, else auto)")),
		mcp.WithArray("enabled_rules",
			mcp.WithStringItems(),
			mcp.Description("Only run these rule IDs")),
		mcp.WithArray("disabled_rules",
			mcp.WithStringItems(),
			mcp.Description("Skip these rule IDs")),
		mcp.WithBoolean("save_report",
			mcp.Description("Save the report to the cache directory (default: false)")),
	), h.HandleValidateArchitecture)

	// Tool 2: detect_cycles - Circular dependency detection
	s.AddTool(mcp.NewTool("detect_cycles",
		mcp.WithDescription("Detect circular dependencies between files and suggest how to break them"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Project root directory to analyze")),
	), h.HandleDetectCycles)

	// Tool 3: detect_architecture - Layout based style detection
	s.AddTool(mcp.NewTool("detect_architecture",
		mcp.WithDescription("Detect the project type and architecture style from the directory layout and package.json"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Project root directory to inspect")),
	), h.HandleDetectArchitecture)
}
