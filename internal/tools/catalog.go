package tools

import "net/http"

// buildCatalog lists the tool endpoints for discovery. The catalog is
// constructed once at startup and never mutated.
func buildCatalog() CatalogResponse {
	return CatalogResponse{
		Tools: []CatalogEntry{
			{Name: "weather", Path: "/mcp/weather", Method: http.MethodPost, In: "WeatherIn", Out: "WeatherOut"},
			{Name: "crypto", Path: "/mcp/crypto", Method: http.MethodPost, In: "CryptoIn", Out: "CryptoOut"},
			{Name: "file", Path: "/mcp/file", Method: http.MethodPost, In: "FileIn", Out: "FileOut"},
			{Name: "invoice_followup", Path: "/mcp/invoice_followup", Method: http.MethodPost, In: "InvoiceFollowupIn", Out: "InvoiceFollowupOut"},
			{Name: "health", Path: "/mcp/health", Method: http.MethodGet, In: "none", Out: "HealthOut"},
		},
	}
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	s.sendJSON(w, http.StatusOK, s.catalog)
}
