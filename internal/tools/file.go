package tools

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	var req FileRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.MaxChars <= 0 {
		s.sendError(w, http.StatusBadRequest, "max_chars must be positive")
		return
	}

	path, err := ResolveDocPath(s.cfg.DocsDir, req.Name)
	if err != nil {
		s.sendError(w, http.StatusBadRequest, "name must resolve inside the document directory")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.sendError(w, http.StatusNotFound, "file not found")
			return
		}
		s.logger.Error("failed to read document", "name", req.Name, "error", err)
		s.sendError(w, http.StatusInternalServerError, "could not read file")
		return
	}

	// collapse all whitespace runs into single spaces
	normalized := strings.Join(strings.Fields(string(data)), " ")
	runes := []rune(normalized)
	clipped := normalized
	if len(runes) > req.MaxChars {
		clipped = string(runes[:req.MaxChars])
	}

	s.sendJSON(w, http.StatusOK, FileResponse{
		Name:  req.Name,
		Chars: len(runes),
		Text:  clipped,
	})
}

// ResolveDocPath joins name onto root and rejects any resolution escaping it.
// This is the security boundary for the file tool: the path is canonicalized
// before any read, so traversal names like ../secrets.txt never leave root.
func ResolveDocPath(root, name string) (string, error) {
	if name == "" {
		return "", errors.New("empty file name")
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("absolute path %q not allowed", name)
	}

	candidate := filepath.Join(root, name)
	rel, err := filepath.Rel(root, candidate)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", name, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the document directory", name)
	}
	return candidate, nil
}
