package convert

import (
	"strings"

	"github.com/jmcarver/mdimport/internal/document"
	"github.com/jmcarver/mdimport/internal/token"
)

// markFor maps an inline opening token type to the mark its span
// applies. Link marks are built from the open token's href attribute
// and handled separately.
var markFor = map[string]string{
	"strong_open": document.MarkBold,
	"em_open":     document.MarkItalic,
	"s_open":      document.MarkStrike,
}

// extractInline flattens an inline token's children into an ordered
// sequence of text and hard-break leaves. Marks accumulate one level
// deep: text inside a formatting span carries that span's mark, but a
// span nested inside another span does not compose both marks.
func extractInline(children []token.Token) []document.Node {
	var out []document.Node
	i := 0
	for i < len(children) {
		c := children[i]
		switch c.Type {
		case "text":
			if strings.TrimSpace(c.Content) != "" {
				out = append(out, document.TextNode(c.Content))
			}
			i++

		case "strong_open", "em_open", "s_open":
			closeIdx := findInlineClose(children, i)
			mark := document.Mark{Type: markFor[c.Type]}
			out = append(out, markedText(children[i+1:closeIdx], mark)...)
			i = closeIdx + 1

		case "link_open":
			closeIdx := findInlineClose(children, i)
			mark := document.LinkMark(c.Attrs["href"])
			out = append(out, markedText(children[i+1:closeIdx], mark)...)
			i = closeIdx + 1

		case "code_inline":
			if strings.TrimSpace(c.Content) != "" {
				out = append(out, document.TextNode(c.Content, document.Mark{Type: document.MarkCode}))
			}
			i++

		case "hardbreak":
			out = append(out, document.Node{Type: document.TypeHardBreak})
			i++

		case "softbreak":
			// Soft breaks collapse to a single space rather than
			// being kept as line boundaries.
			out = append(out, document.TextNode(" "))
			i++

		default:
			i++
		}
	}
	return out
}

// markedText re-emits the text children of a formatting span with the
// span's mark attached. Blank text children are dropped.
func markedText(inner []token.Token, mark document.Mark) []document.Node {
	var out []document.Node
	for _, c := range inner {
		if c.Type == "text" && strings.TrimSpace(c.Content) != "" {
			out = append(out, document.TextNode(c.Content, mark))
		}
	}
	return out
}

// findInlineClose locates the close token of an inline formatting span.
// Inline spans of mixed families never nest ambiguously within the
// scanned window, so a plain forward scan for the matching close type
// is enough. Falls back to the end of the children slice when the
// stream is malformed.
func findInlineClose(children []token.Token, open int) int {
	closeType := children[open].CloseType()
	for i := open + 1; i < len(children); i++ {
		if children[i].Type == closeType {
			return i
		}
	}
	return len(children)
}
