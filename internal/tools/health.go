package tools

import (
	"math"
	"net/http"
	"runtime"
	"time"

	"github.com/mcp-demo/toolserver/internal/config"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	uptime := time.Since(s.start).Seconds()
	s.sendJSON(w, http.StatusOK, HealthResponse{
		Name:           ServerName,
		UptimeSec:      math.Round(uptime*1000) / 1000,
		HTTPTimeoutSec: config.UpstreamTimeout.Seconds(),
		Versions: map[string]string{
			"protocol": "MCP",
			"server":   ServerVersion,
			"go":       runtime.Version(),
		},
	})
}
