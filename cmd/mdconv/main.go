// mdconv is a developer CLI that converts a markdown file to the
// editor document JSON, using the same tokenizer and converter as the
// import service.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmcarver/mdimport/internal/convert"
	"github.com/jmcarver/mdimport/internal/frontmatter"
	"github.com/jmcarver/mdimport/internal/markdown"
	"github.com/jmcarver/mdimport/internal/token"
)

var (
	flagCompact  bool
	flagTitle    string
	flagRawHTML  bool
	flagNoSmart  bool
	flagNoLinkfy bool
)

var rootCmd = &cobra.Command{
	Use:   "mdconv <file.md>",
	Short: "Convert a markdown file to editor document JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.Flags().BoolVar(&flagCompact, "compact", false, "emit compact JSON instead of indented")
	rootCmd.Flags().StringVar(&flagTitle, "title", "", "override the document title")
	rootCmd.Flags().BoolVar(&flagRawHTML, "allow-raw-html", false, "keep raw embedded HTML")
	rootCmd.Flags().BoolVar(&flagNoSmart, "no-typography", false, "disable typographic substitutions")
	rootCmd.Flags().BoolVar(&flagNoLinkfy, "no-autolink", false, "disable bare URL autolinking")
}

func runConvert(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	meta, body := frontmatter.Split(src)
	title := flagTitle
	if title == "" {
		title = meta.Title
	}
	if title == "" {
		title = markdown.TitleFromFilename(filename)
	}

	tokenizer := markdown.New(token.Options{
		AllowRawHTML:             flagRawHTML,
		AutolinkBareURLs:         !flagNoLinkfy,
		TypographicSubstitutions: !flagNoSmart,
	})
	tree := convert.ToDocument(tokenizer.Tokenize(body))

	out := map[string]any{
		"title":   title,
		"content": tree,
	}

	enc := json.NewEncoder(os.Stdout)
	if !flagCompact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
