// Package markdown implements the tokenizer side of the import
// pipeline: goldmark-parsed markdown flattened into the token stream
// the conversion core consumes.
package markdown

import (
	"path/filepath"
	"strings"
)

// SupportedExtensions lists file extensions this service can import.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".txt":      true,
}

// IsSupportedExtension checks if a filename has an importable extension.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// TitleFromFilename derives a document title from a filename by
// stripping the directory and the markdown extension.
func TitleFromFilename(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if SupportedExtensions[strings.ToLower(ext)] {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." {
		return "Untitled"
	}
	return base
}
