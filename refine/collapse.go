package refine

import (
	"fmt"
	"strings"

	"github.com/fwojciec/prettydiff"
)

// collapseKind selects which side of Same pairs a collapse projects and
// which one-sided ranges it includes.
type collapseKind int

const (
	oldOnly collapseKind = iota
	newOnly
	unified
)

// collapser replays a token range list and reconstructs fully styled display
// lines: an accumulating text segment, the styled segments of the current
// line, and the finished lines, threaded explicitly instead of hiding in
// callback captures.
type collapser struct {
	kind    collapseKind
	rules   prettydiff.Rules
	backend prettydiff.Backend

	class   prettydiff.RangeKind
	segment strings.Builder
	line    strings.Builder
	lines   []string
	pending bool
}

// collapse reconstructs the display lines for one range group. Only Same,
// Old, and New ranges are valid here; anything else means a stage upstream
// leaked a range kind it should have consumed, which is fatal.
func collapse(ranges []prettydiff.Range[prettydiff.Token], kind collapseKind, rules prettydiff.Rules, backend prettydiff.Backend) ([]string, error) {
	c := &collapser{kind: kind, rules: rules, backend: backend, class: prettydiff.Same}
	for _, r := range ranges {
		switch r.Kind {
		case prettydiff.Same:
			c.setClass(prettydiff.Same)
			for _, p := range r.Pairs {
				if kind == oldOnly {
					c.token(p[0])
				} else {
					c.token(p[1])
				}
			}
		case prettydiff.Old:
			if kind == newOnly {
				continue
			}
			c.setClass(prettydiff.Old)
			for _, t := range r.Mine {
				c.token(t)
			}
		case prettydiff.New:
			if kind == oldOnly {
				continue
			}
			c.setClass(prettydiff.New)
			for _, t := range r.Other {
				c.token(t)
			}
		default:
			return nil, fmt.Errorf("collapse: %s range in token input: %w", r.Kind, prettydiff.ErrInternal)
		}
	}
	c.finish()
	return c.lines, nil
}

func (c *collapser) setClass(k prettydiff.RangeKind) {
	if k != c.class {
		c.finishSegment()
		c.class = k
	}
}

func (c *collapser) token(t prettydiff.Token) {
	if t.Kind == prettydiff.Word {
		c.segment.WriteString(t.Text)
		c.pending = true
		return
	}
	for n := 0; n < t.Count; n++ {
		c.finishSegment()
		c.finishLine()
	}
	if t.Whitespace != "" {
		c.segment.WriteString(t.Whitespace)
		c.pending = true
	}
}

// finishSegment styles the buffered segment text under the rule for the
// current classification and appends it to the current line.
func (c *collapser) finishSegment() {
	text := c.segment.String()
	c.segment.Reset()
	if text == "" {
		return
	}
	c.line.WriteString(c.backend.Apply(text, c.rule(), false))
}

func (c *collapser) finishLine() {
	c.lines = append(c.lines, c.line.String())
	c.line.Reset()
	c.pending = false
}

// finish flushes a trailing open segment. An entirely empty input still
// produces the single-empty-line sentinel so callers can detect the
// empty-file case.
func (c *collapser) finish() {
	if c.pending || len(c.lines) == 0 {
		c.finishSegment()
		c.finishLine()
	}
}

func (c *collapser) rule() prettydiff.Rule {
	switch c.class {
	case prettydiff.Old:
		return c.rules.WordOld
	case prettydiff.New:
		return c.rules.WordNew
	default:
		switch c.kind {
		case oldOnly:
			return c.rules.WordSameOld
		case newOnly:
			return c.rules.WordSameNew
		default:
			return c.rules.WordSameUnified
		}
	}
}
