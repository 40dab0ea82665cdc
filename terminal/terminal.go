// Package terminal renders styled diff documents as ANSI escape sequences
// using termenv.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/fwojciec/prettydiff"
)

// Compile-time interface verification.
var _ prettydiff.Backend = (*Backend)(nil)

// Backend renders for terminals. CMYK colors degrade to truecolor RGB
// through the configured termenv profile.
type Backend struct {
	profile termenv.Profile
}

// New creates a terminal backend with the truecolor profile.
func New() *Backend {
	return &Backend{profile: termenv.TrueColor}
}

// NewWithProfile creates a terminal backend with a specific termenv profile,
// letting callers degrade to the 16- or 256-color palettes.
func NewWithProfile(p termenv.Profile) *Backend {
	return &Backend{profile: p}
}

// Apply renders text under a rule. A refined body keeps the word-level
// sequences it already carries and is only guarded by a reset so the rule's
// line style cannot fight the inner styling.
func (b *Backend) Apply(text string, r prettydiff.Rule, refined bool) string {
	if text == "" && r.Prefix.Text == "" && r.Suffix.Text == "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(b.styled(r.Prefix.Text, r.Prefix.Styles))
	if refined {
		sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
		sb.WriteString(text)
	} else {
		sb.WriteString(b.styled(text, r.Styles))
	}
	sb.WriteString(b.styled(r.Suffix.Text, r.Suffix.Styles))
	return sb.String()
}

// Render writes the two header lines and the hunks.
func (b *Backend) Render(w io.Writer, doc *prettydiff.Document) error {
	if _, err := fmt.Fprintln(w, b.Apply(doc.OldFile, doc.Rules.HeaderOld, false)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, b.Apply(doc.NewFile, doc.Rules.HeaderNew, false)); err != nil {
		return err
	}
	return prettydiff.RenderHunks(w, doc, b)
}

// styled wraps text in the escape sequences for the style list. An empty
// style list renders verbatim; a non-empty one always leads with a reset so
// no styling bleeds through from a previous fragment.
func (b *Backend) styled(text string, styles []prettydiff.Style) string {
	if len(styles) == 0 || text == "" {
		return text
	}
	seqs := []string{termenv.ResetSeq}
	for _, s := range styles {
		if q := b.sequence(s); q != "" {
			seqs = append(seqs, q)
		}
	}
	return termenv.CSI + strings.Join(seqs, ";") + "m" + text + termenv.CSI + termenv.ResetSeq + "m"
}

func (b *Backend) sequence(s prettydiff.Style) string {
	switch s.Kind {
	case prettydiff.Bold:
		return termenv.BoldSeq
	case prettydiff.Underline:
		return termenv.UnderlineSeq
	case prettydiff.Emph:
		return termenv.ItalicSeq
	case prettydiff.Blink:
		return termenv.BlinkSeq
	case prettydiff.Dim:
		return termenv.FaintSeq
	case prettydiff.Inverse:
		return termenv.ReverseSeq
	case prettydiff.Hide:
		return "8"
	case prettydiff.Reset:
		return termenv.ResetSeq
	case prettydiff.Foreground:
		return b.color(s.Color).Sequence(false)
	case prettydiff.Background:
		return b.color(s.Color).Sequence(true)
	default:
		return ""
	}
}

// color maps an abstract color to a termenv color. Default maps to no
// sequence at all, leaving the terminal's own colors in place.
func (b *Backend) color(c prettydiff.Color) termenv.Color {
	switch c.Kind {
	case prettydiff.Default:
		return termenv.NoColor{}
	case prettydiff.Gray:
		return termenv.ANSIBrightBlack
	case prettydiff.ColorCMYK:
		r, g, bl := c.RGB()
		return b.profile.Color(fmt.Sprintf("#%02x%02x%02x", r, g, bl))
	}
	if c.Kind >= prettydiff.Black && c.Kind <= prettydiff.BrightWhite {
		return termenv.ANSIColor(int(c.Kind - prettydiff.Black))
	}
	return termenv.NoColor{}
}
