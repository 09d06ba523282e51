package document

// Node is a single node of the editor document tree, in the JSON shape
// the block editor consumes: a type tag plus optional attrs, child
// content, text and marks. Block nodes carry Content; text leaves carry
// Text and optionally Marks.
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark is an inline formatting annotation attached to a text leaf.
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Node types.
const (
	TypeDoc            = "doc"
	TypeParagraph      = "paragraph"
	TypeHeading        = "heading"
	TypeBulletList     = "bulletList"
	TypeOrderedList    = "orderedList"
	TypeListItem       = "listItem"
	TypeBlockquote     = "blockquote"
	TypeCodeBlock      = "codeBlock"
	TypeHorizontalRule = "horizontalRule"
	TypeTable          = "table"
	TypeTableRow       = "tableRow"
	TypeTableCell      = "tableCell"
	TypeText           = "text"
	TypeHardBreak      = "hardBreak"
)

// Mark types.
const (
	MarkBold   = "bold"
	MarkItalic = "italic"
	MarkStrike = "strike"
	MarkCode   = "code"
	MarkLink   = "link"
)

// EmptyParagraph returns a paragraph with no content. It is the
// structural filler used wherever the editor requires a non-empty
// container but the source had nothing to put in it.
func EmptyParagraph() Node {
	return Node{Type: TypeParagraph}
}

// EmptyDoc returns the minimal valid document: a doc holding a single
// empty paragraph. The editor rejects documents with empty root
// content, so this is the fallback for empty or all-whitespace input.
func EmptyDoc() Node {
	return Node{Type: TypeDoc, Content: []Node{EmptyParagraph()}}
}

// TextNode returns a plain text leaf.
func TextNode(text string, marks ...Mark) Node {
	return Node{Type: TypeText, Text: text, Marks: marks}
}

// LinkMark returns a link mark pointing at href.
func LinkMark(href string) Mark {
	return Mark{Type: MarkLink, Attrs: map[string]any{"href": href}}
}

// BlockCount returns the number of block-level nodes in the document,
// counting every node that is not a text or hard-break leaf.
func BlockCount(n Node) int {
	count := 0
	var walk func(Node)
	walk = func(n Node) {
		if n.Type != TypeText && n.Type != TypeHardBreak && n.Type != TypeDoc {
			count++
		}
		for _, c := range n.Content {
			walk(c)
		}
	}
	walk(n)
	return count
}
