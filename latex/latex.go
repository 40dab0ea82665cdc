// Package latex renders styled diff documents as a standalone LaTeX
// document built around the alltt verbatim environment, with one macro per
// named rule so the styling can be retuned in the preamble.
package latex

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/prettydiff"
)

// Compile-time interface verification.
var _ prettydiff.Backend = (*Backend)(nil)

// escaper rewrites the characters that stay special inside alltt, plus
// underscore and dollar for robustness and hyphen as a braced group so no
// dash ligature forms. Replacement happens in a single pass, so generated
// backslashes and braces are never re-escaped. The backslash form ends in
// an empty group so a following space survives.
var escaper = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"{", `\{`,
	"}", `\}`,
	"_", `\_`,
	"$", `\$`,
	"-", `{-}`,
)

// Backend renders LaTeX.
type Backend struct{}

// New creates a LaTeX backend.
func New() *Backend {
	return &Backend{}
}

// Apply escapes text and wraps it in the macro for a rule. Refined text
// already carries its inner macros and is passed through unescaped.
func (b *Backend) Apply(text string, r prettydiff.Rule, refined bool) string {
	var sb strings.Builder
	sb.WriteString(inline(escaper.Replace(r.Prefix.Text), r.Prefix.Styles))
	switch {
	case refined:
		sb.WriteString(text)
	case len(r.Styles) == 0:
		sb.WriteString(escaper.Replace(text))
	default:
		if text != "" {
			fmt.Fprintf(&sb, `\%s{%s}`, macroName(r.Name), escaper.Replace(text))
		}
	}
	sb.WriteString(inline(escaper.Replace(r.Suffix.Text), r.Suffix.Styles))
	return sb.String()
}

// Render writes a full LaTeX document: preamble with one macro definition
// per styled rule, the two header lines, then the hunks inside alltt.
func (b *Backend) Render(w io.Writer, doc *prettydiff.Document) error {
	var sb strings.Builder
	sb.WriteString("\\documentclass{article}\n")
	sb.WriteString("\\usepackage{color}\n")
	sb.WriteString("\\usepackage{alltt}\n")
	for _, r := range doc.Rules.All() {
		if len(r.Styles) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\\newcommand{\\%s}[1]{%s}\n", macroName(r.Name), macroBody(r.Styles))
	}
	sb.WriteString("\\begin{document}\n")
	sb.WriteString("\\begin{alltt}\n")
	sb.WriteString(b.Apply(doc.OldFile, doc.Rules.HeaderOld, false))
	sb.WriteString("\n")
	sb.WriteString(b.Apply(doc.NewFile, doc.Rules.HeaderNew, false))
	sb.WriteString("\n")
	if err := prettydiff.RenderHunks(&sb, doc, b); err != nil {
		return err
	}
	sb.WriteString("\\end{alltt}\n")
	sb.WriteString("\\end{document}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// macroName converts a kebab-case rule name into a LaTeX control word, so
// "word-old" defines \pdiffWordOld.
func macroName(name string) string {
	var sb strings.Builder
	sb.WriteString("pdiff")
	up := true
	for _, c := range name {
		if c == '-' {
			up = true
			continue
		}
		if up {
			sb.WriteString(strings.ToUpper(string(c)))
			up = false
			continue
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// macroBody nests the commands for a style list around the #1 argument.
func macroBody(styles []prettydiff.Style) string {
	body := "#1"
	for i := len(styles) - 1; i >= 0; i-- {
		body = wrap(styles[i], body)
	}
	return body
}

// inline styles already-escaped annex text directly, without going through
// a named macro.
func inline(text string, styles []prettydiff.Style) string {
	if text == "" {
		return ""
	}
	for i := len(styles) - 1; i >= 0; i-- {
		text = wrap(styles[i], text)
	}
	return text
}

// wrap applies one style command around body. Blink, Dim, Inverse, Hide,
// and Reset have no typeset equivalent and leave the body unchanged.
func wrap(s prettydiff.Style, body string) string {
	switch s.Kind {
	case prettydiff.Bold:
		return `\textbf{` + body + `}`
	case prettydiff.Underline:
		return `\underline{` + body + `}`
	case prettydiff.Emph:
		return `\emph{` + body + `}`
	case prettydiff.Foreground:
		return `\textcolor` + colorSpec(s.Color) + `{` + body + `}`
	case prettydiff.Background:
		return `\colorbox` + colorSpec(s.Color) + `{` + body + `}`
	default:
		return body
	}
}

// colorSpec renders a color as the model and argument part of a color
// command, keeping CMYK values continuous and palette entries as rgb.
func colorSpec(c prettydiff.Color) string {
	if c.Kind == prettydiff.ColorCMYK {
		return fmt.Sprintf("[cmyk]{%.3g,%.3g,%.3g,%.3g}", c.C, c.M, c.Y, c.K)
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("[rgb]{%.3g,%.3g,%.3g}", float64(r)/255, float64(g)/255, float64(b)/255)
}
