package document

import (
	"encoding/json"
	"testing"
)

func TestNodeJSONShape(t *testing.T) {
	n := Node{
		Type: TypeParagraph,
		Content: []Node{
			TextNode("hi", Mark{Type: MarkBold}),
		},
	}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"type":"paragraph","content":[{"type":"text","marks":[{"type":"bold"}],"text":"hi"}]}`
	if string(data) != want {
		t.Errorf("unexpected JSON:\nwant %s\ngot  %s", want, data)
	}
}

func TestEmptyDoc(t *testing.T) {
	doc := EmptyDoc()
	if doc.Type != TypeDoc || len(doc.Content) != 1 {
		t.Fatalf("unexpected empty doc: %+v", doc)
	}
	if doc.Content[0].Type != TypeParagraph || len(doc.Content[0].Content) != 0 {
		t.Errorf("expected single empty paragraph, got %+v", doc.Content[0])
	}
}

func TestLinkMark(t *testing.T) {
	m := LinkMark("https://example.com")
	if m.Type != MarkLink || m.Attrs["href"] != "https://example.com" {
		t.Errorf("unexpected link mark: %+v", m)
	}
}

func TestBlockCount(t *testing.T) {
	doc := Node{Type: TypeDoc, Content: []Node{
		{Type: TypeHeading, Content: []Node{TextNode("h")}},
		{Type: TypeBulletList, Content: []Node{
			{Type: TypeListItem, Content: []Node{EmptyParagraph()}},
		}},
	}}
	// heading + bulletList + listItem + paragraph = 4 blocks.
	if got := BlockCount(doc); got != 4 {
		t.Errorf("expected 4 blocks, got %d", got)
	}
}
