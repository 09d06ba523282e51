package convert

import (
	"github.com/jmcarver/mdimport/internal/document"
	"github.com/jmcarver/mdimport/internal/token"
)

// buildList converts the list span opened at open (closing before end)
// into a bulletList or orderedList node. Only items at the top nesting
// level are iterated here; items of nested lists are consumed by the
// recursive buildBlocks call on each item body.
func buildList(tokens []token.Token, open, end int) document.Node {
	listType := document.TypeBulletList
	if tokens[open].Type == "ordered_list_open" {
		listType = document.TypeOrderedList
	}

	var items []document.Node
	i := open + 1
	for i < end {
		if tokens[i].Type != "list_item_open" {
			i++
			continue
		}
		closeIdx := matchClose(tokens, i, end)
		content := buildBlocks(tokens, i+1, closeIdx)
		if len(content) == 0 {
			// The editor requires every list item to hold at least
			// one block.
			content = []document.Node{document.EmptyParagraph()}
		}
		items = append(items, document.Node{
			Type:    document.TypeListItem,
			Content: content,
		})
		i = closeIdx + 1
	}

	return document.Node{Type: listType, Content: items}
}
