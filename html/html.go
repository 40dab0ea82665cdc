// Package html renders styled diff documents as a standalone HTML page.
package html

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/prettydiff"
)

// Compile-time interface verification.
var _ prettydiff.Backend = (*Backend)(nil)

// escaper rewrites the three characters that are unsafe inside a <pre>
// block. Quotes stay literal; diff content never lands in an attribute.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Backend renders HTML.
type Backend struct{}

// New creates an HTML backend.
func New() *Backend {
	return &Backend{}
}

// Apply escapes text and wraps it in the markup for a rule. Refined text
// already carries its inner markup and is passed through unescaped.
func (b *Backend) Apply(text string, r prettydiff.Rule, refined bool) string {
	var sb strings.Builder
	sb.WriteString(b.styled(escaper.Replace(r.Prefix.Text), r.Prefix.Styles))
	if refined {
		sb.WriteString(text)
	} else {
		sb.WriteString(b.styled(escaper.Replace(text), r.Styles))
	}
	sb.WriteString(b.styled(escaper.Replace(r.Suffix.Text), r.Suffix.Styles))
	return sb.String()
}

// Render writes a full HTML document: shell, the two header lines with file
// modification timestamps, then the hunks inside a <pre>.
func (b *Backend) Render(w io.Writer, doc *prettydiff.Document) error {
	const head = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: monospace; }
pre { margin: 0; }
</style>
</head>
<body>
<pre>
`
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}
	old := b.Apply(doc.OldFile+timestamp(doc.OldFile), doc.Rules.HeaderOld, false)
	neu := b.Apply(doc.NewFile+timestamp(doc.NewFile), doc.Rules.HeaderNew, false)
	if _, err := fmt.Fprintln(w, old); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, neu); err != nil {
		return err
	}
	if err := prettydiff.RenderHunks(w, doc, b); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</pre>\n</body>\n</html>\n")
	return err
}

// timestamp returns the modification time of path for the header line, or
// the empty string when the path does not name a readable file.
func timestamp(path string) string {
	fi, err := os.Stat(path)
	if err != nil {
		return ""
	}
	return "  " + fi.ModTime().Format("2006-01-02 15:04:05")
}

func (b *Backend) styled(text string, styles []prettydiff.Style) string {
	if len(styles) == 0 || text == "" {
		return text
	}
	open, close := "", ""
	for _, s := range styles {
		o, c := tags(s)
		open += o
		close = c + close
	}
	return open + text + close
}

// tags returns the opening and closing markup for one style. Dim, Inverse,
// and Reset have no HTML equivalent here and render as plain text.
func tags(s prettydiff.Style) (string, string) {
	switch s.Kind {
	case prettydiff.Bold:
		return "<b>", "</b>"
	case prettydiff.Underline:
		return "<u>", "</u>"
	case prettydiff.Emph:
		return "<em>", "</em>"
	case prettydiff.Blink:
		return `<span style="text-decoration:blink">`, "</span>"
	case prettydiff.Hide:
		return "<!-- ", " -->"
	case prettydiff.Foreground:
		return fmt.Sprintf(`<span style="color:%s">`, cssColor(s.Color)), "</span>"
	case prettydiff.Background:
		return fmt.Sprintf(`<span style="background-color:%s">`, cssColor(s.Color)), "</span>"
	default:
		return "", ""
	}
}

func cssColor(c prettydiff.Color) string {
	if c.Kind == prettydiff.Default {
		return "inherit"
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
