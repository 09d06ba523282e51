package markdown

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	gmtext "github.com/yuin/goldmark/text"
	"golang.org/x/net/html"

	"github.com/jmcarver/mdimport/internal/token"
)

// Tokenizer produces the flat token stream consumed by the conversion
// core, using goldmark to parse the markdown source. It satisfies
// token.Tokenizer.
type Tokenizer struct {
	md   goldmark.Markdown
	opts token.Options
}

// New builds a tokenizer for the given options. Tables and
// strikethrough are always recognized; bare-URL autolinking and
// typographic substitutions follow the options.
func New(opts token.Options) *Tokenizer {
	exts := []goldmark.Extender{
		extension.Table,
		extension.Strikethrough,
	}
	if opts.AutolinkBareURLs {
		exts = append(exts, extension.Linkify)
	}
	if opts.TypographicSubstitutions {
		exts = append(exts, extension.Typographer)
	}
	return &Tokenizer{
		md:   goldmark.New(goldmark.WithExtensions(exts...)),
		opts: opts,
	}
}

// NewDefault builds a tokenizer with the standard import options.
func NewDefault() *Tokenizer {
	return New(token.Defaults())
}

// Tokenize parses src and returns its token stream. The stream is in
// document order; structural tokens come in open/close pairs and inline
// containers carry their inline tokens as children.
func (t *Tokenizer) Tokenize(src []byte) []token.Token {
	root := t.md.Parser().Parse(gmtext.NewReader(src))
	e := &emitter{src: src, allowHTML: t.opts.AllowRawHTML}
	e.blocks(root)
	return e.out
}

// emitter walks the goldmark AST and flattens it into tokens.
type emitter struct {
	src       []byte
	allowHTML bool
	out       []token.Token
}

func (e *emitter) emit(t token.Token) {
	e.out = append(e.out, t)
}

func (e *emitter) open(typ, tag string) {
	e.emit(token.Token{Type: typ + "_open", Tag: tag, Nesting: token.NestingOpen})
}

func (e *emitter) close(typ, tag string) {
	e.emit(token.Token{Type: typ + "_close", Tag: tag, Nesting: token.NestingClose})
}

func (e *emitter) blocks(parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		e.block(n)
	}
}

func (e *emitter) block(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		tag := "h" + strconv.Itoa(n.Level)
		e.open("heading", tag)
		e.inline(n)
		e.close("heading", tag)

	case *ast.Paragraph:
		e.open("paragraph", "p")
		e.inline(n)
		e.close("paragraph", "p")

	case *ast.TextBlock:
		// Tight list items hold their text in a TextBlock; the
		// downstream builder treats it like any paragraph.
		e.open("paragraph", "p")
		e.inline(n)
		e.close("paragraph", "p")

	case *ast.List:
		typ, tag := "bullet_list", "ul"
		if n.IsOrdered() {
			typ, tag = "ordered_list", "ol"
		}
		e.open(typ, tag)
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			e.open("list_item", "li")
			e.blocks(item)
			e.close("list_item", "li")
		}
		e.close(typ, tag)

	case *ast.Blockquote:
		e.open("blockquote", "blockquote")
		e.blocks(n)
		e.close("blockquote", "blockquote")

	case *ast.FencedCodeBlock:
		e.emit(token.Token{
			Type:    "fence",
			Tag:     "code",
			Content: string(e.lines(n)),
			Info:    string(n.Language(e.src)),
		})

	case *ast.CodeBlock:
		e.emit(token.Token{
			Type:    "code_block",
			Tag:     "code",
			Content: string(e.lines(n)),
		})

	case *ast.ThematicBreak:
		e.emit(token.Token{Type: "hr", Tag: "hr"})

	case *extast.Table:
		e.table(n)

	case *ast.HTMLBlock:
		raw := e.lines(n)
		if n.HasClosure() {
			raw = append(raw, n.ClosureLine.Value(e.src)...)
		}
		if e.allowHTML {
			e.emit(token.Token{Type: "html_block", Content: string(raw)})
			return
		}
		// Raw markup is not allowed: keep only its text content.
		if text := stripTags(string(raw)); strings.TrimSpace(text) != "" {
			e.open("paragraph", "p")
			e.emit(token.Token{Type: "inline", Children: []token.Token{
				{Type: "text", Content: strings.TrimSpace(text)},
			}})
			e.close("paragraph", "p")
		}
	}
}

// inline emits the inline container token for a block node.
func (e *emitter) inline(parent ast.Node) {
	e.emit(token.Token{Type: "inline", Children: e.inlineChildren(parent)})
}

func (e *emitter) inlineChildren(parent ast.Node) []token.Token {
	var out []token.Token
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, e.inlineTokens(c)...)
	}
	return out
}

func (e *emitter) inlineTokens(n ast.Node) []token.Token {
	switch n := n.(type) {
	case *ast.Text:
		var toks []token.Token
		if v := string(n.Segment.Value(e.src)); v != "" {
			toks = append(toks, token.Token{Type: "text", Content: v})
		}
		if n.HardLineBreak() {
			toks = append(toks, token.Token{Type: "hardbreak", Tag: "br"})
		} else if n.SoftLineBreak() {
			toks = append(toks, token.Token{Type: "softbreak"})
		}
		return toks

	case *ast.String:
		// Typographer substitutions arrive as String nodes.
		return []token.Token{{Type: "text", Content: string(n.Value)}}

	case *ast.Emphasis:
		typ, tag := "em", "em"
		if n.Level == 2 {
			typ, tag = "strong", "strong"
		}
		return e.span(typ, tag, nil, n)

	case *extast.Strikethrough:
		return e.span("s", "s", nil, n)

	case *ast.Link:
		attrs := map[string]string{"href": string(n.Destination)}
		return e.span("link", "a", attrs, n)

	case *ast.AutoLink:
		url := string(n.URL(e.src))
		href := url
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
			href = "mailto:" + url
		}
		return []token.Token{
			{Type: "link_open", Tag: "a", Nesting: token.NestingOpen, Attrs: map[string]string{"href": href}},
			{Type: "text", Content: string(n.Label(e.src))},
			{Type: "link_close", Tag: "a", Nesting: token.NestingClose},
		}

	case *ast.CodeSpan:
		return []token.Token{{Type: "code_inline", Tag: "code", Content: e.textOf(n)}}

	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(e.src))
		}
		if e.allowHTML {
			return []token.Token{{Type: "html_inline", Content: buf.String()}}
		}
		if text := stripTags(buf.String()); strings.TrimSpace(text) != "" {
			return []token.Token{{Type: "text", Content: text}}
		}
		return nil

	case *ast.Image:
		// The target document model has no image node; keep the alt
		// text so it survives the import as plain text.
		if alt := e.textOf(n); strings.TrimSpace(alt) != "" {
			return []token.Token{{Type: "text", Content: alt}}
		}
		return nil
	}
	return nil
}

// span emits open token, the flattened children, then the close token.
func (e *emitter) span(typ, tag string, attrs map[string]string, n ast.Node) []token.Token {
	toks := []token.Token{{Type: typ + "_open", Tag: tag, Nesting: token.NestingOpen, Attrs: attrs}}
	toks = append(toks, e.inlineChildren(n)...)
	return append(toks, token.Token{Type: typ + "_close", Tag: tag, Nesting: token.NestingClose})
}

func (e *emitter) table(t *extast.Table) {
	e.open("table", "table")
	bodyOpen := false
	for sec := t.FirstChild(); sec != nil; sec = sec.NextSibling() {
		switch sec := sec.(type) {
		case *extast.TableHeader:
			e.open("thead", "thead")
			e.row(sec, "th")
			e.close("thead", "thead")
		case *extast.TableRow:
			if !bodyOpen {
				e.open("tbody", "tbody")
				bodyOpen = true
			}
			e.row(sec, "td")
		}
	}
	if bodyOpen {
		e.close("tbody", "tbody")
	}
	e.close("table", "table")
}

func (e *emitter) row(row ast.Node, cellTag string) {
	e.open("tr", "tr")
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if cell, ok := c.(*extast.TableCell); ok {
			e.open(cellTag, cellTag)
			e.inline(cell)
			e.close(cellTag, cellTag)
		}
	}
	e.close("tr", "tr")
}

// lines concatenates the source lines covered by a block node.
func (e *emitter) lines(n ast.Node) []byte {
	var buf bytes.Buffer
	l := n.Lines()
	for i := 0; i < l.Len(); i++ {
		seg := l.At(i)
		buf.Write(seg.Value(e.src))
	}
	return buf.Bytes()
}

// textOf collects the plain text of a node's descendants.
func (e *emitter) textOf(n ast.Node) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch n := n.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(e.src))
		case *ast.String:
			buf.Write(n.Value)
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// stripTags reduces an HTML fragment to its text content.
func stripTags(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String()
}
