// Package frontmatter splits YAML front matter from markdown source
// and extracts document metadata from it.
package frontmatter

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Meta is the recognized front-matter metadata.
type Meta struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

var delimiter = []byte("---")

// Split separates leading YAML front matter from the document body.
// The front-matter block must start on the first line and be closed by
// a second delimiter line. Malformed or missing front matter leaves the
// source untouched and returns empty metadata; the import never fails
// on bad metadata.
func Split(src []byte) (Meta, []byte) {
	var meta Meta

	lines := bytes.SplitAfter(src, []byte("\n"))
	if len(lines) < 2 || !isDelimiter(lines[0]) {
		return meta, src
	}

	for i := 1; i < len(lines); i++ {
		if !isDelimiter(lines[i]) {
			continue
		}
		block := bytes.Join(lines[1:i], nil)
		body := bytes.Join(lines[i+1:], nil)
		if err := yaml.Unmarshal(block, &meta); err != nil {
			return Meta{}, src
		}
		return meta, body
	}
	return meta, src
}

func isDelimiter(line []byte) bool {
	return bytes.Equal(bytes.TrimRight(line, "\r\n"), delimiter)
}
