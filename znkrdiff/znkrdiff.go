// Package znkrdiff implements the diff oracle on znkr.io/diff.
package znkrdiff

import (
	"strings"
	"unicode"

	"znkr.io/diff"

	"github.com/fwojciec/prettydiff"
)

// Compile-time interface verification.
var (
	_ prettydiff.LineDiffer  = (*Differ)(nil)
	_ prettydiff.TokenDiffer = (*Differ)(nil)
)

// Differ computes line- and token-level diffs using Myers' algorithm as
// implemented by znkr.io/diff. Custom comparison (whitespace insensitivity)
// is handled by diffing comparison keys and mapping the edit script back to
// the original elements by position.
type Differ struct{}

// New creates a new Differ.
func New() *Differ {
	return &Differ{}
}

// DiffTokens diffs two token streams and returns a flat, ordered range
// list. Deletion and insertion runs stay separate Old and New ranges so the
// unified-line heuristic can recombine them per display line.
func (d *Differ) DiffTokens(mine, other []prettydiff.Token, keepWhitespace bool) []prettydiff.Range[prettydiff.Token] {
	edits := diff.Edits(tokenKeys(mine, keepWhitespace), tokenKeys(other, keepWhitespace))

	var ranges []prettydiff.Range[prettydiff.Token]
	var pairs [][2]prettydiff.Token
	var olds, news []prettydiff.Token

	flushChanges := func() {
		if len(olds) > 0 {
			ranges = append(ranges, prettydiff.OldRange(olds))
			olds = nil
		}
		if len(news) > 0 {
			ranges = append(ranges, prettydiff.NewRange(news))
			news = nil
		}
	}
	flushSame := func() {
		if len(pairs) > 0 {
			ranges = append(ranges, prettydiff.SameRange(pairs))
			pairs = nil
		}
	}

	i, j := 0, 0
	for _, e := range edits {
		switch e.Op {
		case diff.Match:
			flushChanges()
			pairs = append(pairs, [2]prettydiff.Token{mine[i], other[j]})
			i++
			j++
		case diff.Delete:
			flushSame()
			olds = append(olds, mine[i])
			i++
		case diff.Insert:
			flushSame()
			news = append(news, other[j])
			j++
		}
	}
	flushSame()
	flushChanges()
	return ranges
}

// DiffLines diffs two files line by line and windows the result into
// context hunks. Adjacent deletion and insertion runs merge into Replace
// ranges, which are the refinement targets downstream.
func (d *Differ) DiffLines(mine, other []string, keepWhitespace bool, context int) []prettydiff.Hunk[string] {
	edits := diff.Edits(lineKeys(mine, keepWhitespace), lineKeys(other, keepWhitespace))

	var ranges []prettydiff.Range[string]
	var pairs [][2]string
	var dels, ins []string

	flushChanges := func() {
		switch {
		case len(dels) > 0 && len(ins) > 0:
			ranges = append(ranges, prettydiff.ReplaceRange(dels, ins))
		case len(dels) > 0:
			ranges = append(ranges, prettydiff.OldRange(dels))
		case len(ins) > 0:
			ranges = append(ranges, prettydiff.NewRange(ins))
		}
		dels, ins = nil, nil
	}
	flushSame := func() {
		if len(pairs) > 0 {
			ranges = append(ranges, prettydiff.SameRange(pairs))
			pairs = nil
		}
	}

	i, j := 0, 0
	for _, e := range edits {
		switch e.Op {
		case diff.Match:
			flushChanges()
			pairs = append(pairs, [2]string{mine[i], other[j]})
			i++
			j++
		case diff.Delete:
			flushSame()
			dels = append(dels, mine[i])
			i++
		case diff.Insert:
			flushSame()
			ins = append(ins, other[j])
			j++
		}
	}
	flushSame()
	flushChanges()

	return prettydiff.WindowRanges(ranges, context)
}

// tokenKeys renders tokens to their comparison text. Under insensitive
// comparison a Newline compares as a single space, the same as any other
// whitespace run; under sensitive comparison it compares by its literal
// break count and carried text so a line break never equals a space.
func tokenKeys(toks []prettydiff.Token, keepWhitespace bool) []string {
	keys := make([]string, len(toks))
	for i, t := range toks {
		if t.Kind == prettydiff.Newline {
			if keepWhitespace {
				keys[i] = strings.Repeat("\n", t.Count) + t.Whitespace
			} else {
				keys[i] = " "
			}
			continue
		}
		if keepWhitespace {
			keys[i] = t.Text
		} else {
			keys[i] = prettydiff.CollapseWhitespace(t.Text)
		}
	}
	return keys
}

// lineKeys renders lines to their comparison text.
func lineKeys(lines []string, keepWhitespace bool) []string {
	if keepWhitespace {
		return lines
	}
	keys := make([]string, len(lines))
	for i, s := range lines {
		keys[i] = prettydiff.CollapseWhitespace(strings.TrimRightFunc(s, unicode.IsSpace))
	}
	return keys
}
