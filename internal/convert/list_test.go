package convert

import (
	"testing"

	"github.com/jmcarver/mdimport/internal/document"
	"github.com/jmcarver/mdimport/internal/token"
)

func listItem(text string) []token.Token {
	toks := []token.Token{open("list_item", "li")}
	toks = append(toks, paragraph(text)...)
	return append(toks, closed("list_item", "li"))
}

func TestBulletList_ThreeItems(t *testing.T) {
	tokens := []token.Token{open("bullet_list", "ul")}
	for _, s := range []string{"a", "b", "c"} {
		tokens = append(tokens, listItem(s)...)
	}
	tokens = append(tokens, closed("bullet_list", "ul"))

	doc := ToDocument(tokens)
	if len(doc.Content) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Content))
	}
	list := doc.Content[0]
	if list.Type != document.TypeBulletList {
		t.Fatalf("expected bulletList, got %q", list.Type)
	}
	if len(list.Content) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Content))
	}
	for i, want := range []string{"a", "b", "c"} {
		item := list.Content[i]
		if item.Type != document.TypeListItem {
			t.Fatalf("item %d: expected listItem, got %q", i, item.Type)
		}
		if len(item.Content) != 1 || item.Content[0].Type != document.TypeParagraph {
			t.Fatalf("item %d: expected exactly one paragraph, got %+v", i, item.Content)
		}
		para := item.Content[0]
		if len(para.Content) != 1 || para.Content[0].Text != want {
			t.Errorf("item %d: expected text %q, got %+v", i, want, para.Content)
		}
	}
}

func TestOrderedList_Type(t *testing.T) {
	tokens := []token.Token{open("ordered_list", "ol")}
	tokens = append(tokens, listItem("first")...)
	tokens = append(tokens, closed("ordered_list", "ol"))

	doc := ToDocument(tokens)
	if doc.Content[0].Type != document.TypeOrderedList {
		t.Errorf("expected orderedList, got %q", doc.Content[0].Type)
	}
}

func TestList_EmptyItemGetsParagraph(t *testing.T) {
	tokens := []token.Token{
		open("bullet_list", "ul"),
		open("list_item", "li"),
		closed("list_item", "li"),
		closed("bullet_list", "ul"),
	}
	doc := ToDocument(tokens)
	item := doc.Content[0].Content[0]
	if len(item.Content) != 1 || item.Content[0].Type != document.TypeParagraph {
		t.Errorf("expected fallback empty paragraph in item, got %+v", item.Content)
	}
}

func TestList_NestedListStaysInsideItem(t *testing.T) {
	// One outer item holding a paragraph and a nested list with two
	// items. The outer list must see exactly one top-level item.
	inner := []token.Token{open("bullet_list", "ul")}
	inner = append(inner, listItem("x")...)
	inner = append(inner, listItem("y")...)
	inner = append(inner, closed("bullet_list", "ul"))

	tokens := []token.Token{open("bullet_list", "ul"), open("list_item", "li")}
	tokens = append(tokens, paragraph("outer")...)
	tokens = append(tokens, inner...)
	tokens = append(tokens, closed("list_item", "li"), closed("bullet_list", "ul"))

	doc := ToDocument(tokens)
	outer := doc.Content[0]
	if len(outer.Content) != 1 {
		t.Fatalf("expected 1 top-level item, got %d", len(outer.Content))
	}
	item := outer.Content[0]
	if len(item.Content) != 2 {
		t.Fatalf("expected paragraph + nested list in item, got %+v", item.Content)
	}
	nested := item.Content[1]
	if nested.Type != document.TypeBulletList || len(nested.Content) != 2 {
		t.Errorf("expected nested bulletList with 2 items, got %+v", nested)
	}
}
