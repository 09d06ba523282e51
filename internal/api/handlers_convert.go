package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jmcarver/mdimport/internal/convert"
	"github.com/jmcarver/mdimport/internal/document"
	"github.com/jmcarver/mdimport/internal/frontmatter"
)

// handleConvert converts a markdown body to the editor document tree
// without persisting anything. The request body is raw markdown; the
// response carries the derived title (from front matter, if any) and
// the document content.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	src, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	meta, body := frontmatter.Split(src)
	tokens := s.tokenizer.Tokenize(body)
	tree := convert.ToDocument(tokens)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"title":   meta.Title,
		"blocks":  document.BlockCount(tree),
		"content": tree,
	})
}
