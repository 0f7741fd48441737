// main runs the stdio MCP front for clients such as Claude Desktop.
// Logs go to stderr so they never interfere with the stdio protocol.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mcp-demo/toolserver/internal/config"
	"github.com/mcp-demo/toolserver/internal/mcpfront"
)

func main() {
	var (
		docsDir  string
		loglevel int
	)
	flag.StringVar(&docsDir, "docs-dir", "./resources/docs", "directory the file tool reads from")
	flag.IntVar(
		&loglevel,
		"log-level",
		int(slog.LevelInfo),
		"set the log level 0=info, 4=warn, 8=error and -4=debug",
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(loglevel),
	}))

	cfg := config.Default()
	cfg.DocsDir = docsDir

	logger.Info("MCP server starting on stdio")
	if err := server.ServeStdio(mcpfront.NewServer(cfg, logger)); err != nil {
		log.Fatalf("MCP server failed: %v", err)
	}
}
