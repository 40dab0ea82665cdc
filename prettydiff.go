// Package prettydiff provides domain types for rendering line-level diffs
// as styled documents. Changed line pairs are re-diffed at word granularity,
// reconstructed into styled display lines, optionally wrapped to a display
// width, and emitted through one of several backends (terminal, HTML, LaTeX,
// plain text).
package prettydiff

import (
	"errors"
	"fmt"
	"io"
)

// ErrInternal marks a pipeline-invariant violation: a range kind reached a
// stage that must never see it. Such errors indicate a bug upstream, not bad
// input, and abort the render.
var ErrInternal = errors.New("internal pipeline error")

// TokenDiffer computes word-level differences between two token streams.
// The returned ranges cover both streams in order; hunk boundaries are not
// meaningful at token granularity, so the result is a flat list.
type TokenDiffer interface {
	DiffTokens(mine, other []Token, keepWhitespace bool) []Range[Token]
}

// LineDiffer computes line-level differences between two files, windowed
// into hunks with the given number of context lines. A negative context
// returns a single hunk covering both files whole.
type LineDiffer interface {
	DiffLines(mine, other []string, keepWhitespace bool, context int) []Hunk[string]
}

// Parser reads an existing diff (a unified patch) into file diffs that can
// be refined and rendered like a freshly computed one.
type Parser interface {
	Parse(r io.Reader) ([]FileDiff, error)
}

// Backend renders styled fragments and whole documents for one output
// format. Apply renders text under a rule: prefix annex, body, suffix annex,
// each through the backend's style-to-markup mapping. When refined is true
// the body already carries word-level markup from a nested Apply, so the
// backend must pass it through untouched apart from neutralizing the rule's
// own body styles.
type Backend interface {
	Apply(text string, r Rule, refined bool) string
	Render(w io.Writer, doc *Document) error
}

// Document is one file pair's refined hunks plus everything a backend needs
// to render them.
type Document struct {
	OldFile string
	NewFile string
	Rules   Rules
	Hunks   []Hunk[string]
}

// Options are the caller-supplied rendering flags.
type Options struct {
	// KeepWhitespace makes comparison whitespace-sensitive. Display always
	// preserves whitespace; this only controls whether whitespace changes
	// count as changes.
	KeepWhitespace bool

	// ProduceUnifiedLines merges a changed line pair into one display line
	// with inline old/new markup when the change allows it.
	ProduceUnifiedLines bool

	// SplitLongLines wraps refined lines to the terminal width.
	SplitLongLines bool

	// TerminalWidth supplies the display width when SplitLongLines is set.
	// Callers should memoize it; the pipeline treats it as stable for the
	// lifetime of one render. Nil means 80.
	TerminalWidth func() int
}

// Width returns the configured terminal width, defaulting to 80.
func (o Options) Width() int {
	if o.TerminalWidth == nil {
		return 80
	}
	return o.TerminalWidth()
}

// RenderHunks writes a document's hunks through a backend: a styled header
// per hunk followed by its lines, each line styled by the rule for its
// range kind and flushed as it is produced. Backends call this between
// their own document prologue and epilogue.
func RenderHunks(w io.Writer, doc *Document, b Backend) error {
	line := func(text string, r Rule, refined bool) error {
		_, err := fmt.Fprintln(w, b.Apply(text, r, refined))
		return err
	}
	for _, h := range doc.Hunks {
		header := fmt.Sprintf("-%d,%d +%d,%d", h.MineStart, h.MineSize, h.OtherStart, h.OtherSize)
		if err := line(header, doc.Rules.HunkHeader, false); err != nil {
			return err
		}
		for _, r := range h.Ranges {
			switch r.Kind {
			case Same:
				for _, p := range r.Pairs {
					if err := line(p[1], doc.Rules.LineSame, r.Refined); err != nil {
						return err
					}
				}
			case Old:
				for _, s := range r.Mine {
					if err := line(s, doc.Rules.LineOld, r.Refined); err != nil {
						return err
					}
				}
			case New:
				for _, s := range r.Other {
					if err := line(s, doc.Rules.LineNew, r.Refined); err != nil {
						return err
					}
				}
			case Unified:
				for _, s := range r.Mine {
					if err := line(s, doc.Rules.LineUnified, r.Refined); err != nil {
						return err
					}
				}
			case Replace:
				for _, s := range r.Mine {
					if err := line(s, doc.Rules.LineOld, r.Refined); err != nil {
						return err
					}
				}
				for _, s := range r.Other {
					if err := line(s, doc.Rules.LineNew, r.Refined); err != nil {
						return err
					}
				}
			default:
				return fmt.Errorf("render: %s range in hunk: %w", r.Kind, ErrInternal)
			}
		}
	}
	return nil
}
