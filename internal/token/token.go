package token

// Nesting describes how a token relates to the document structure: an
// opener, a closer, or a self-contained token with no matching partner.
type Nesting int8

const (
	NestingSelf  Nesting = 0
	NestingOpen  Nesting = 1
	NestingClose Nesting = -1
)

// Token is one atomic unit of the flat tokenized document stream.
// Structural tokens come in Open/Close pairs of the same type family
// (e.g. "bullet_list_open" / "bullet_list_close"); inline containers
// carry their inline-level tokens in Children. Tokens are built once
// per conversion and consumed by index, never mutated.
type Token struct {
	Type     string            // e.g. "heading_open", "inline", "fence"
	Tag      string            // html-ish tag name, e.g. "h2", "ul", "td"
	Nesting  Nesting
	Content  string            // text payload for content-bearing tokens
	Info     string            // fence info string (language hint)
	Attrs    map[string]string // e.g. {"href": "..."} on link_open
	Children []Token           // inline-level tokens of an "inline" token
}

// Options are the recognized tokenizer options. The zero value is not
// useful; use Defaults.
type Options struct {
	// AllowRawHTML keeps raw embedded HTML as-is. When false (the
	// default) raw HTML is reduced to its text content.
	AllowRawHTML bool
	// AutolinkBareURLs turns bare URLs in text into links.
	AutolinkBareURLs bool
	// TypographicSubstitutions enables smart quotes, dashes and
	// ellipses.
	TypographicSubstitutions bool
}

// Defaults returns the standard import options.
func Defaults() Options {
	return Options{
		AllowRawHTML:             false,
		AutolinkBareURLs:         true,
		TypographicSubstitutions: true,
	}
}

// Tokenizer turns markdown source into a flat token stream. The
// conversion core depends only on this contract, not on a specific
// implementation.
type Tokenizer interface {
	Tokenize(src []byte) []Token
}

// Open reports whether a token opens a structural span.
func (t Token) Open() bool { return t.Nesting == NestingOpen }

// CloseType returns the type name of the token that closes t's span,
// e.g. "bullet_list_open" -> "bullet_list_close".
func (t Token) CloseType() string {
	const suffix = "_open"
	if n := len(t.Type) - len(suffix); n > 0 && t.Type[n:] == suffix {
		return t.Type[:n] + "_close"
	}
	return t.Type + "_close"
}
