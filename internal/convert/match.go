package convert

import "github.com/jmcarver/mdimport/internal/token"

// matchClose returns the index of the token closing the span opened at
// open, scanning no further than end (exclusive). A depth counter
// handles same-type nesting, e.g. a bullet list inside a bullet list.
// If the stream is malformed and no close is found, end is returned:
// the rest of the span is treated as belonging to the open token rather
// than failing the conversion.
func matchClose(tokens []token.Token, open, end int) int {
	openType := tokens[open].Type
	closeType := tokens[open].CloseType()
	depth := 1
	for i := open + 1; i < end; i++ {
		switch tokens[i].Type {
		case openType:
			depth++
		case closeType:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return end
}
