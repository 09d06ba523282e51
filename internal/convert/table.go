package convert

import (
	"github.com/jmcarver/mdimport/internal/document"
	"github.com/jmcarver/mdimport/internal/token"
)

// buildTable converts a table span (exclusive of table_open/close) into
// a table node: thead/tbody sections split into rows, rows into cells,
// each cell's inline content wrapped in a paragraph. Cells inherit the
// header flag from their section, not from their individual tag.
func buildTable(tokens []token.Token, start, end int) document.Node {
	var rows []document.Node
	i := start
	for i < end {
		switch tokens[i].Type {
		case "thead_open":
			closeIdx := matchClose(tokens, i, end)
			rows = append(rows, buildRows(tokens, i+1, closeIdx, true)...)
			i = closeIdx + 1
		case "tbody_open":
			closeIdx := matchClose(tokens, i, end)
			rows = append(rows, buildRows(tokens, i+1, closeIdx, false)...)
			i = closeIdx + 1
		default:
			i++
		}
	}
	return document.Node{Type: document.TypeTable, Content: rows}
}

func buildRows(tokens []token.Token, start, end int, header bool) []document.Node {
	var rows []document.Node
	i := start
	for i < end {
		if tokens[i].Type != "tr_open" {
			i++
			continue
		}
		closeIdx := matchClose(tokens, i, end)
		rows = append(rows, document.Node{
			Type:    document.TypeTableRow,
			Content: buildCells(tokens, i+1, closeIdx, header),
		})
		i = closeIdx + 1
	}
	return rows
}

func buildCells(tokens []token.Token, start, end int, header bool) []document.Node {
	var cells []document.Node
	i := start
	for i < end {
		if tokens[i].Type != "th_open" && tokens[i].Type != "td_open" {
			i++
			continue
		}
		closeIdx := matchClose(tokens, i, end)
		para := document.Node{
			Type:    document.TypeParagraph,
			Content: inlineContent(tokens, i+1, closeIdx),
		}
		cells = append(cells, document.Node{
			Type:    document.TypeTableCell,
			Attrs:   map[string]any{"header": header},
			Content: []document.Node{para},
		})
		i = closeIdx + 1
	}
	return cells
}
