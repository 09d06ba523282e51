package frontmatter

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit_TitleAndBody(t *testing.T) {
	src := []byte("---\ntitle: My Notes\ntags:\n  - a\n  - b\n---\n# Heading\n\nBody.\n")
	meta, body := Split(src)

	if meta.Title != "My Notes" {
		t.Errorf("expected title %q, got %q", "My Notes", meta.Title)
	}
	if !reflect.DeepEqual(meta.Tags, []string{"a", "b"}) {
		t.Errorf("expected tags [a b], got %v", meta.Tags)
	}
	if !strings.HasPrefix(string(body), "# Heading") {
		t.Errorf("expected front matter stripped, body starts with %q", string(body)[:20])
	}
}

func TestSplit_NoFrontMatter(t *testing.T) {
	src := []byte("# Just markdown\n")
	meta, body := Split(src)
	if meta.Title != "" {
		t.Errorf("expected empty title, got %q", meta.Title)
	}
	if string(body) != string(src) {
		t.Errorf("expected body unchanged")
	}
}

func TestSplit_UnterminatedFrontMatter(t *testing.T) {
	src := []byte("---\ntitle: oops\n\nno closing delimiter\n")
	meta, body := Split(src)
	if meta.Title != "" {
		t.Errorf("expected no metadata from unterminated block, got %q", meta.Title)
	}
	if string(body) != string(src) {
		t.Errorf("expected source returned untouched")
	}
}

func TestSplit_MalformedYAMLLeavesSource(t *testing.T) {
	src := []byte("---\ntitle: [unclosed\n---\nbody\n")
	meta, body := Split(src)
	if meta.Title != "" {
		t.Errorf("expected empty metadata on malformed yaml, got %q", meta.Title)
	}
	if string(body) != string(src) {
		t.Errorf("expected source returned untouched on malformed yaml")
	}
}

func TestSplit_DelimiterNotOnFirstLine(t *testing.T) {
	src := []byte("intro\n---\ntitle: nope\n---\n")
	meta, body := Split(src)
	if meta.Title != "" {
		t.Errorf("expected mid-document delimiters ignored, got title %q", meta.Title)
	}
	if string(body) != string(src) {
		t.Errorf("expected body unchanged")
	}
}

func TestSplit_CRLF(t *testing.T) {
	src := []byte("---\r\ntitle: Windows\r\n---\r\nbody\r\n")
	meta, body := Split(src)
	if meta.Title != "Windows" {
		t.Errorf("expected title %q, got %q", "Windows", meta.Title)
	}
	if strings.Contains(string(body), "title:") {
		t.Errorf("expected front matter stripped, got %q", string(body))
	}
}
