// Package sergidiff implements the diff oracle on sergi/go-diff. Elements
// are encoded as unique runes keyed by their comparison text, diffed with
// diffmatchpatch, and decoded back by position, the same rune-encoding
// technique diffmatchpatch uses for its own line mode.
package sergidiff

import (
	"strings"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fwojciec/prettydiff"
)

// Compile-time interface verification.
var (
	_ prettydiff.LineDiffer  = (*Differ)(nil)
	_ prettydiff.TokenDiffer = (*Differ)(nil)
)

// Differ computes line- and token-level diffs using diffmatchpatch.
type Differ struct{}

// New creates a new Differ.
func New() *Differ {
	return &Differ{}
}

// DiffTokens diffs two token streams and returns a flat, ordered range
// list. As with the default oracle, deletion and insertion runs stay
// separate Old and New ranges.
func (d *Differ) DiffTokens(mine, other []prettydiff.Token, keepWhitespace bool) []prettydiff.Range[prettydiff.Token] {
	ops := runeOps(tokenKeys(mine, keepWhitespace), tokenKeys(other, keepWhitespace))

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
	for _, op := range ops {
		switch op {
		case diffmatchpatch.DiffEqual:
			flushChanges()
			pairs = append(pairs, [2]prettydiff.Token{mine[i], other[j]})
			i++
			j++
		case diffmatchpatch.DiffDelete:
			flushSame()
			olds = append(olds, mine[i])
			i++
		case diffmatchpatch.DiffInsert:
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
// context hunks.
func (d *Differ) DiffLines(mine, other []string, keepWhitespace bool, context int) []prettydiff.Hunk[string] {
	ops := runeOps(lineKeys(mine, keepWhitespace), lineKeys(other, keepWhitespace))

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
	for _, op := range ops {
		switch op {
		case diffmatchpatch.DiffEqual:
			flushChanges()
			pairs = append(pairs, [2]string{mine[i], other[j]})
			i++
			j++
		case diffmatchpatch.DiffDelete:
			flushSame()
			dels = append(dels, mine[i])
			i++
		case diffmatchpatch.DiffInsert:
			flushSame()
			ins = append(ins, other[j])
			j++
		}
	}
	flushSame()
	flushChanges()

	return prettydiff.WindowRanges(ranges, context)
}

// runeOps encodes both key sequences as runes, diffs them, and flattens the
// result to one operation per element.
func runeOps(mineKeys, otherKeys []string) []diffmatchpatch.Operation {
	table := make(map[string]rune)
	rm := encode(mineKeys, table)
	ro := encode(otherKeys, table)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(rm, ro, false))

	var ops []diffmatchpatch.Operation
	for _, df := range diffs {
		for range df.Text {
			ops = append(ops, df.Type)
		}
	}
	return ops
}

func encode(keys []string, table map[string]rune) []rune {
	out := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := table[k]
		if !ok {
			// Private-use plane keeps encodings printable-safe and far from
			// surrogate ranges.
			r = rune(0xF0000 + len(table))
			table[k] = r
		}
		out[i] = r
	}
	return out
}

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
