package convert

import (
	"strings"

	"github.com/jmcarver/mdimport/internal/document"
)

// prune removes empty and whitespace-only text leaves from the tree in
// a single post-order pass. Containers whose content becomes empty stay
// in place: the editor tolerates empty containers but not empty text
// leaves.
func prune(n *document.Node) {
	if len(n.Content) == 0 {
		return
	}
	kept := n.Content[:0]
	for i := range n.Content {
		c := &n.Content[i]
		if c.Type == document.TypeText && strings.TrimSpace(c.Text) == "" {
			continue
		}
		prune(c)
		kept = append(kept, *c)
	}
	n.Content = kept
}
