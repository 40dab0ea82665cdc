// Package mock provides function-field mock implementations of the
// prettydiff interfaces for tests.
package mock

import (
	"io"

	"github.com/fwojciec/prettydiff"
)

// Compile-time interface verification.
var (
	_ prettydiff.Parser      = (*Parser)(nil)
	_ prettydiff.LineDiffer  = (*LineDiffer)(nil)
	_ prettydiff.TokenDiffer = (*TokenDiffer)(nil)
	_ prettydiff.Backend     = (*Backend)(nil)
)

// Parser is a mock implementation of prettydiff.Parser.
type Parser struct {
	ParseFn func(r io.Reader) ([]prettydiff.FileDiff, error)
}

func (p *Parser) Parse(r io.Reader) ([]prettydiff.FileDiff, error) {
	return p.ParseFn(r)
}

// LineDiffer is a mock implementation of prettydiff.LineDiffer.
type LineDiffer struct {
	DiffLinesFn func(mine, other []string, keepWhitespace bool, context int) []prettydiff.Hunk[string]
}

func (d *LineDiffer) DiffLines(mine, other []string, keepWhitespace bool, context int) []prettydiff.Hunk[string] {
	return d.DiffLinesFn(mine, other, keepWhitespace, context)
}

// TokenDiffer is a mock implementation of prettydiff.TokenDiffer.
type TokenDiffer struct {
	DiffTokensFn func(mine, other []prettydiff.Token, keepWhitespace bool) []prettydiff.Range[prettydiff.Token]
}

func (d *TokenDiffer) DiffTokens(mine, other []prettydiff.Token, keepWhitespace bool) []prettydiff.Range[prettydiff.Token] {
	return d.DiffTokensFn(mine, other, keepWhitespace)
}

// Backend is a mock implementation of prettydiff.Backend.
type Backend struct {
	ApplyFn  func(text string, r prettydiff.Rule, refined bool) string
	RenderFn func(w io.Writer, doc *prettydiff.Document) error
}

func (b *Backend) Apply(text string, r prettydiff.Rule, refined bool) string {
	return b.ApplyFn(text, r, refined)
}

func (b *Backend) Render(w io.Writer, doc *prettydiff.Document) error {
	return b.RenderFn(w, doc)
}
