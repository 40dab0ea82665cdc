// Package plain renders diff documents as unstyled text: annex text is
// kept, every style list is ignored.
package plain

import (
	"fmt"
	"io"

	"github.com/fwojciec/prettydiff"
)

// Compile-time interface verification.
var _ prettydiff.Backend = (*Backend)(nil)

// Backend renders plain text.
type Backend struct{}

// New creates a plain-text backend.
func New() *Backend {
	return &Backend{}
}

// Apply glues the rule's prefix and suffix text around the body verbatim.
func (b *Backend) Apply(text string, r prettydiff.Rule, refined bool) string {
	return r.Prefix.Text + text + r.Suffix.Text
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
