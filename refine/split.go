package refine

import (
	"github.com/mattn/go-runewidth"

	"github.com/fwojciec/prettydiff"
)

// minWidth is the floor for the effective wrap width; anything narrower
// renders unreadably and is treated as this instead.
const minWidth = 20

// effectiveWidth converts a terminal width into the wrap limit, reserving
// two columns for the line-rule prefix.
func effectiveWidth(terminal int) int {
	return max(minWidth, terminal-2)
}

// splitter breaks a flat token range list into ordered groups, each group
// rendering as one physical display line no wider than max. Words are never
// split: a group boundary is only ever inserted between tokens, and a single
// word longer than max passes through whole.
type splitter struct {
	max      int
	lenSoFar int

	groups [][]prettydiff.Range[prettydiff.Token]
	group  []prettydiff.Range[prettydiff.Token]
	pairs  [][2]prettydiff.Token
}

// splitRanges wraps ranges at the given display width. Concatenating the
// rendered content of all returned groups equals the unsplit rendering.
func splitRanges(ranges []prettydiff.Range[prettydiff.Token], width int) [][]prettydiff.Range[prettydiff.Token] {
	s := &splitter{max: width}
	for _, r := range ranges {
		if r.Kind == prettydiff.Same {
			s.same(r)
			continue
		}
		s.passthrough(r)
	}
	s.flushPairs()
	s.closeGroup()
	if len(s.groups) == 0 {
		return [][]prettydiff.Range[prettydiff.Token]{nil}
	}
	return s.groups
}

// same accumulates Same pairs greedily. A natural Newline closes the current
// range and resets the width without breaking the group; a Word that would
// exceed the limit closes the group behind a synthesized Newline pair so the
// collapser ends the physical line there.
func (s *splitter) same(r prettydiff.Range[prettydiff.Token]) {
	for _, p := range r.Pairs {
		t := p[1]
		if t.Kind == prettydiff.Newline {
			s.pairs = append(s.pairs, p)
			s.flushPairs()
			if t.Count > 0 {
				s.lenSoFar = runewidth.StringWidth(t.Whitespace)
			} else {
				s.lenSoFar += runewidth.StringWidth(t.Whitespace)
			}
			continue
		}
		w := runewidth.StringWidth(t.Display())
		if s.lenSoFar > 0 && s.lenSoFar+w > s.max {
			s.flushPairs()
			s.breakGroup()
		}
		s.pairs = append(s.pairs, p)
		s.lenSoFar += w
	}
	s.flushPairs()
}

// passthrough forwards a changed range whole. Old, New, and (defensively)
// Replace and Unified ranges are never split internally; they only update
// the running width for subsequent Same accounting, a Replace by the wider
// of its two sides.
func (s *splitter) passthrough(r prettydiff.Range[prettydiff.Token]) {
	s.flushPairs()
	s.group = append(s.group, r)
	switch r.Kind {
	case prettydiff.Old:
		s.lenSoFar = advanceWidth(s.lenSoFar, r.Mine)
	case prettydiff.New:
		s.lenSoFar = advanceWidth(s.lenSoFar, r.Other)
	case prettydiff.Replace:
		s.lenSoFar = max(advanceWidth(s.lenSoFar, r.Mine), advanceWidth(s.lenSoFar, r.Other))
	case prettydiff.Unified:
		s.lenSoFar = advanceWidth(s.lenSoFar, r.Mine)
	}
}

// breakGroup ends the current physical line: a synthesized Same break of one
// paired Newline token, then a group boundary.
func (s *splitter) breakGroup() {
	nl := prettydiff.NewlineToken(1, "")
	s.group = append(s.group, prettydiff.SameRange([][2]prettydiff.Token{{nl, nl}}))
	s.closeGroup()
	s.lenSoFar = 0
}

func (s *splitter) flushPairs() {
	if len(s.pairs) > 0 {
		s.group = append(s.group, prettydiff.SameRange(s.pairs))
		s.pairs = nil
	}
}

func (s *splitter) closeGroup() {
	if len(s.group) > 0 {
		s.groups = append(s.groups, s.group)
		s.group = nil
	}
}

// advanceWidth walks a token run and returns the display width after it: a
// line-breaking Newline resets the count to its carried indentation, words
// and separators accumulate.
func advanceWidth(width int, toks []prettydiff.Token) int {
	for _, t := range toks {
		if t.Kind == prettydiff.Newline && t.Count > 0 {
			width = runewidth.StringWidth(t.Whitespace)
			continue
		}
		width += runewidth.StringWidth(t.Display())
	}
	return width
}
