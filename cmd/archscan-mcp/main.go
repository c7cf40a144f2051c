package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ludo-technologies/archscan/internal/version"
	"github.com/ludo-technologies/archscan/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverName = "archscan"

func main() {
	// Set up logging to stderr (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	// Create MCP server with tool capabilities
	server := mcpserver.NewMCPServer(
		serverName,
		version.Short(),
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	// The configuration is discovered from each tool's target unless ARCHSCAN_CONFIG names a file
	deps := mcp.NewDependencies(nil, os.Getenv("ARCHSCAN_CONFIG"))
	mcp.RegisterTools(server, mcp.NewHandlerSet(deps))

	log.Printf("Starting %s MCP server v%s\n", serverName, version.Short())
	log.Println("Registered tools:")
	log.Println("  - validate_architecture: Architecture rule and cycle validation")
	log.Println("  - detect_cycles: Circular dependency detection")
	log.Println("  - detect_architecture: Architecture style detection")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	// Blocks until the server is terminated
	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
