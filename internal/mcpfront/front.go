// Package mcpfront exposes the demo tools over the Model Context Protocol
// so stdio clients such as Claude Desktop can call them. The MCP front is
// network-free: every tool answers from the deterministic fallback tables
// or the local document directory.
package mcpfront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mcp-demo/toolserver/internal/config"
	"github.com/mcp-demo/toolserver/internal/fallback"
	"github.com/mcp-demo/toolserver/internal/tools"
)

// Front holds the state shared by the MCP tool handlers.
type Front struct {
	docsDir string
	start   time.Time
	logger  *slog.Logger
}

// NewServer builds the MCP server with the four demo tools registered.
func NewServer(cfg *config.Config, logger *slog.Logger) *server.MCPServer {
	front := &Front{
		docsDir: cfg.DocsDir,
		start:   time.Now(),
		logger:  logger,
	}

	hooks := &server.Hooks{}
	hooks.AddBeforeAny(func(_ context.Context, _ any, method mcp.MCPMethod, _ any) {
		logger.Debug("processing request", "method", method)
	})
	hooks.AddOnError(func(_ context.Context, _ any, method mcp.MCPMethod, _ any, err error) {
		logger.Warn("MCP server error", "method", method, "error", err)
	})

	s := server.NewMCPServer(
		tools.ServerName,
		tools.ServerVersion,
		server.WithHooks(hooks),
		server.WithToolCapabilities(true),
	)

	s.AddTool(mcp.NewTool("weather",
		mcp.WithDescription("Get weather forecast for a city"),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("City name (e.g., Chicago, New York, London)"),
		),
		mcp.WithNumber("days",
			mcp.Description("Number of days to forecast (1-7)"),
			mcp.DefaultNumber(1),
			mcp.Min(1),
			mcp.Max(7),
		),
	), front.weatherTool)

	s.AddTool(mcp.NewTool("crypto",
		mcp.WithDescription("Get current cryptocurrency price"),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Cryptocurrency symbol (btc, eth, sol)"),
			mcp.Enum("btc", "eth", "sol"),
		),
		mcp.WithString("vs",
			mcp.Description("Currency to compare against"),
			mcp.DefaultString("usd"),
		),
	), front.cryptoTool)

	s.AddTool(mcp.NewTool("file",
		mcp.WithDescription("Read and summarize a file from resources"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("File name to read"),
		),
		mcp.WithNumber("max_chars",
			mcp.Description("Maximum characters to return"),
			mcp.DefaultNumber(200),
			mcp.Min(1),
		),
	), front.fileTool)

	s.AddTool(mcp.NewTool("health",
		mcp.WithDescription("Get server health status"),
	), front.healthTool)

	return s
}

// resultJSON renders v as an indented JSON text result.
func resultJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (f *Front) weatherTool(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	city, err := request.RequireString("city")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	days := request.GetInt("days", 1)
	if days < 1 || days > 7 {
		return mcp.NewToolResultError("days must be between 1 and 7"), nil
	}

	daily := make([]tools.ForecastDay, 0, days)
	for _, day := range fallback.Forecast(f.start, days) {
		daily = append(daily, tools.ForecastDay{
			Date:     day.Date,
			TMax:     day.TMax,
			TMin:     day.TMin,
			PrecipMM: day.PrecipMM,
		})
	}
	return resultJSON(tools.WeatherResponse{
		Location: city,
		Daily:    daily,
		Source:   tools.SourceFallback,
	})
}

func (f *Front) cryptoTool(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol := strings.ToLower(request.GetString("symbol", "btc"))
	vs := strings.ToLower(request.GetString("vs", "usd"))

	coinIDs := map[string]string{"btc": "bitcoin", "eth": "ethereum", "sol": "solana"}
	coinID, ok := coinIDs[symbol]
	if !ok {
		return mcp.NewToolResultError("unsupported symbol"), nil
	}

	return resultJSON(tools.CryptoResponse{
		Symbol: symbol,
		VS:     vs,
		Price:  fallback.Price(coinID),
		Source: tools.SourceFallback,
	})
}

func (f *Front) fileTool(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	maxChars := request.GetInt("max_chars", 200)
	if maxChars < 1 {
		return mcp.NewToolResultError("max_chars must be positive"), nil
	}

	path, err := tools.ResolveDocPath(f.docsDir, name)
	if err != nil {
		return mcp.NewToolResultError("name must resolve inside the document directory"), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// a missing document still produces a usable demo answer
			text := "Demo content: This is a sample file summary."
			return resultJSON(tools.FileResponse{Name: name, Chars: len(text), Text: text})
		}
		return mcp.NewToolResultError(fmt.Sprintf("error reading file: %v", err)), nil
	}

	normalized := strings.Join(strings.Fields(string(data)), " ")
	runes := []rune(normalized)
	text := normalized
	if len(runes) > maxChars {
		text = string(runes[:maxChars])
	}
	return resultJSON(tools.FileResponse{Name: name, Chars: len(runes), Text: text})
}

func (f *Front) healthTool(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uptime := time.Since(f.start).Seconds()
	return resultJSON(tools.HealthResponse{
		Name:           tools.ServerName,
		UptimeSec:      math.Round(uptime*1000) / 1000,
		HTTPTimeoutSec: config.UpstreamTimeout.Seconds(),
		Versions: map[string]string{
			"protocol": "MCP",
			"server":   tools.ServerVersion,
			"go":       runtime.Version(),
		},
	})
}
