// Package convert turns a flat markdown token stream into the nested
// document tree the block editor consumes. The conversion is a pure
// function: it never fails, never mutates its input and holds no state
// between calls. Malformed token streams degrade to best-effort output.
package convert

import (
	"github.com/jmcarver/mdimport/internal/document"
	"github.com/jmcarver/mdimport/internal/token"
)

// ToDocument converts a token stream into a document tree. The result
// is always a doc node with at least one child: empty or all-whitespace
// input yields a doc holding a single empty paragraph.
func ToDocument(tokens []token.Token) document.Node {
	doc := document.Node{
		Type:    document.TypeDoc,
		Content: buildBlocks(tokens, 0, len(tokens)),
	}
	prune(&doc)
	if len(doc.Content) == 0 {
		return document.EmptyDoc()
	}
	return doc
}

// buildBlocks walks tokens[start:end] once with a cursor, dispatching
// on block-opening token type. Unknown token types are skipped; the
// cursor always moves past whatever span each case consumed.
func buildBlocks(tokens []token.Token, start, end int) []document.Node {
	var blocks []document.Node
	i := start
	for i < end {
		t := tokens[i]
		switch t.Type {
		case "heading_open":
			closeIdx := matchClose(tokens, i, end)
			blocks = append(blocks, document.Node{
				Type:    document.TypeHeading,
				Attrs:   map[string]any{"level": headingLevel(t.Tag)},
				Content: inlineContent(tokens, i+1, closeIdx),
			})
			i = closeIdx + 1

		case "paragraph_open":
			closeIdx := matchClose(tokens, i, end)
			blocks = append(blocks, document.Node{
				Type:    document.TypeParagraph,
				Content: inlineContent(tokens, i+1, closeIdx),
			})
			i = closeIdx + 1

		case "bullet_list_open", "ordered_list_open":
			closeIdx := matchClose(tokens, i, end)
			blocks = append(blocks, buildList(tokens, i, closeIdx))
			i = closeIdx + 1

		case "blockquote_open":
			closeIdx := matchClose(tokens, i, end)
			inner := buildBlocks(tokens, i+1, closeIdx)
			if len(inner) == 0 {
				inner = []document.Node{document.EmptyParagraph()}
			}
			blocks = append(blocks, document.Node{
				Type:    document.TypeBlockquote,
				Content: inner,
			})
			i = closeIdx + 1

		case "fence", "code_block":
			blocks = append(blocks, codeBlock(t))
			i++

		case "hr":
			blocks = append(blocks, document.Node{Type: document.TypeHorizontalRule})
			i++

		case "table_open":
			closeIdx := matchClose(tokens, i, end)
			blocks = append(blocks, buildTable(tokens, i+1, closeIdx))
			i = closeIdx + 1

		default:
			i++
		}
	}
	return blocks
}

// inlineContent finds the inline token inside a block span and extracts
// its children into text and hard-break leaves.
func inlineContent(tokens []token.Token, start, end int) []document.Node {
	for i := start; i < end && i < len(tokens); i++ {
		if tokens[i].Type == "inline" {
			return extractInline(tokens[i].Children)
		}
	}
	return nil
}

func codeBlock(t token.Token) document.Node {
	n := document.Node{Type: document.TypeCodeBlock}
	if t.Info != "" {
		n.Attrs = map[string]any{"language": t.Info}
	}
	if t.Content != "" {
		n.Content = []document.Node{document.TextNode(t.Content)}
	}
	return n
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 1
}
