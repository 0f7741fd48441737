package tools

import (
	"net/http"
	"strings"

	"github.com/mcp-demo/toolserver/internal/fallback"
)

// symbolToCoinID maps the supported ticker symbols to price source coin ids.
var symbolToCoinID = map[string]string{
	"btc": "bitcoin",
	"eth": "ethereum",
	"sol": "solana",
}

func (s *Server) handleCrypto(w http.ResponseWriter, r *http.Request) {
	var req CryptoRequest
	if !s.decode(w, r, &req) {
		return
	}

	symbol := strings.ToLower(req.Symbol)
	coinID, ok := symbolToCoinID[symbol]
	if !ok {
		s.sendError(w, http.StatusBadRequest, "unsupported symbol")
		return
	}
	vs := strings.ToLower(req.VS)
	if vs == "" {
		vs = "usd"
	}

	resp := CryptoResponse{Symbol: symbol, VS: vs}
	if fallbackRequested(r) {
		resp.Price = fallback.Price(coinID)
		resp.Source = SourceFallback
		s.sendJSON(w, http.StatusOK, resp)
		return
	}

	price, err := s.crypto.SimplePrice(r.Context(), coinID, vs)
	if err != nil {
		s.logger.Debug("price lookup failed, serving fallback", "error", err)
		resp.Price = fallback.Price(coinID)
		resp.Source = SourceFallback
		s.sendJSON(w, http.StatusOK, resp)
		return
	}

	resp.Price = price
	resp.Source = SourceLive
	s.sendJSON(w, http.StatusOK, resp)
}
