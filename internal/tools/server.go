// Package tools implements the HTTP tool endpoints the demo assistant calls.
// Each handler validates its request, optionally forwards one upstream call,
// and answers with JSON. There are no retries; fallback substitution is the
// only resilience mechanism.
package tools

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mcp-demo/toolserver/internal/config"
	"github.com/mcp-demo/toolserver/internal/upstream"
)

// ServerName identifies this server in health reports and MCP handshakes.
const ServerName = "mcp-demo"

// ServerVersion is the static version string reported by the health tool.
const ServerVersion = "0.1.0"

// FallbackHeader forces the deterministic demo path when set to 1, true or yes.
const FallbackHeader = "x-demo-fallback"

// Server dispatches the tool endpoints. Handlers share no mutable state;
// the catalog and start timestamp are read-only after construction.
type Server struct {
	cfg     *config.Config
	weather upstream.WeatherClient
	crypto  upstream.CryptoClient
	catalog CatalogResponse
	start   time.Time
	logger  *slog.Logger
}

// NewServer wires the tool handlers to their collaborators.
func NewServer(
	cfg *config.Config,
	weather upstream.WeatherClient,
	crypto upstream.CryptoClient,
	logger *slog.Logger,
) *Server {
	return &Server{
		cfg:     cfg,
		weather: weather,
		crypto:  crypto,
		catalog: buildCatalog(),
		start:   time.Now(),
		logger:  logger,
	}
}

// Routes returns the HTTP handler for the full tool surface, including the
// static demo frontend and the unprefixed compatibility aliases.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /mcp/tools", s.handleCatalog)
	mux.HandleFunc("POST /mcp/weather", s.handleWeather)
	mux.HandleFunc("POST /mcp/crypto", s.handleCrypto)
	mux.HandleFunc("POST /mcp/file", s.handleFile)
	mux.HandleFunc("POST /mcp/invoice_followup", s.handleInvoiceFollowup)
	mux.HandleFunc("GET /mcp/health", s.handleHealth)

	// aliases kept for assistant clients that probe the root paths
	mux.HandleFunc("GET /tools", s.handleCatalog)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.Handle(
		"GET /static/",
		http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))),
	)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})

	return s.withRecovery(s.withCORS(s.withRequestLog(mux)))
}

// fallbackRequested reports whether the per-request demo flag is set.
func fallbackRequested(r *http.Request) bool {
	switch strings.ToLower(r.Header.Get(FallbackHeader)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) sendJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

func (s *Server) sendError(w http.ResponseWriter, statusCode int, message string) {
	s.sendJSON(w, statusCode, map[string]string{"error": message})
}
