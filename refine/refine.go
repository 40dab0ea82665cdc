// Package refine implements word-level refinement of line diffs: changed
// line pairs are tokenized, re-diffed at word granularity, optionally
// wrapped to a display width, and reconstructed into styled display lines,
// merging a pair into one unified line when the change allows it.
package refine

import (
	"fmt"
	"strings"

	"github.com/fwojciec/prettydiff"
	"github.com/fwojciec/prettydiff/tokenize"
)

// Refiner refines the Replace ranges of line-level hunks into styled line
// ranges using a token differ, a rule table, and a rendering backend. It is
// stateless across calls; one Refiner may serve many documents.
type Refiner struct {
	differ  prettydiff.TokenDiffer
	rules   prettydiff.Rules
	backend prettydiff.Backend
	opts    prettydiff.Options
}

// New creates a Refiner.
func New(differ prettydiff.TokenDiffer, rules prettydiff.Rules, backend prettydiff.Backend, opts prettydiff.Options) *Refiner {
	return &Refiner{differ: differ, rules: rules, backend: backend, opts: opts}
}

// Hunks refines every Replace range in the given hunks. Same, Old, and New
// ranges pass through untouched for line-level styling at render time.
// Unified must not appear in oracle output; it is produced, never consumed,
// by this stage.
func (rf *Refiner) Hunks(hunks []prettydiff.Hunk[string]) ([]prettydiff.Hunk[string], error) {
	out := make([]prettydiff.Hunk[string], 0, len(hunks))
	for _, h := range hunks {
		refined := h
		refined.Ranges = make([]prettydiff.Range[string], 0, len(h.Ranges))
		for _, r := range h.Ranges {
			switch r.Kind {
			case prettydiff.Same, prettydiff.Old, prettydiff.New:
				refined.Ranges = append(refined.Ranges, r)
			case prettydiff.Replace:
				rs, err := rf.replace(r)
				if err != nil {
					return nil, err
				}
				refined.Ranges = append(refined.Ranges, rs...)
			default:
				return nil, fmt.Errorf("refine: %s range in hunk input: %w", r.Kind, prettydiff.ErrInternal)
			}
		}
		out = append(out, refined)
	}
	return out, nil
}

// replace runs the refinement pipeline for one changed line block:
// tokenize, sub-diff, split, then one styled range per display group.
func (rf *Refiner) replace(r prettydiff.Range[string]) ([]prettydiff.Range[string], error) {
	oldToks := tokenize.Block(r.Mine, rf.opts.KeepWhitespace)
	newToks := tokenize.Block(r.Other, rf.opts.KeepWhitespace)
	ranges := rf.differ.DiffTokens(oldToks, newToks, rf.opts.KeepWhitespace)

	groups := [][]prettydiff.Range[prettydiff.Token]{ranges}
	if rf.opts.SplitLongLines {
		groups = splitRanges(ranges, effectiveWidth(rf.opts.Width()))
	}

	out := make([]prettydiff.Range[string], 0, len(groups))
	for _, g := range groups {
		rr, err := rf.group(g)
		if err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, nil
}

// group turns one display group into a styled line range, deciding between
// a trivial same, a single unified line, or paired old/new lines.
func (rf *Refiner) group(g []prettydiff.Range[prettydiff.Token]) (prettydiff.Range[string], error) {
	var zero prettydiff.Range[string]
	info := inspect(g)

	if info.hasReplace {
		// Defensive: the oracles never emit token-level Replace, but a
		// custom differ might. Render both sides separately.
		return rf.replacePair(g)
	}

	if !info.oldChanged && !info.newChanged {
		lines, err := collapse(g, newOnly, rf.rules, rf.backend)
		if err != nil {
			return zero, err
		}
		pairs := make([][2]string, len(lines))
		for i, s := range lines {
			pairs[i] = [2]string{s, s}
		}
		return prettydiff.Range[string]{Kind: prettydiff.Same, Pairs: pairs, Refined: true}, nil
	}

	oldLines, err := collapse(g, oldOnly, rf.rules, rf.backend)
	if err != nil {
		return zero, err
	}
	newLines, err := collapse(g, newOnly, rf.rules, rf.backend)
	if err != nil {
		return zero, err
	}

	// An empty side means content was added to or removed from an empty
	// file; suppress the orphan blank line instead of rendering it.
	switch {
	case emptySentinel(oldLines) && !emptySentinel(newLines):
		return prettydiff.Range[string]{Kind: prettydiff.Replace, Other: newLines, Refined: true}, nil
	case emptySentinel(newLines) && !emptySentinel(oldLines):
		return prettydiff.Range[string]{Kind: prettydiff.Replace, Mine: oldLines, Refined: true}, nil
	}

	if rf.opts.ProduceUnifiedLines && !info.whitespaceOnly && !info.multiline {
		lines, err := collapse(g, unified, rf.rules, rf.backend)
		if err != nil {
			return zero, err
		}
		return prettydiff.Range[string]{Kind: prettydiff.Unified, Mine: lines, Refined: true}, nil
	}

	return prettydiff.Range[string]{Kind: prettydiff.Replace, Mine: oldLines, Other: newLines, Refined: true}, nil
}

func (rf *Refiner) replacePair(g []prettydiff.Range[prettydiff.Token]) (prettydiff.Range[string], error) {
	var zero prettydiff.Range[string]
	flat := make([]prettydiff.Range[prettydiff.Token], 0, len(g))
	for _, r := range g {
		if r.Kind == prettydiff.Replace {
			flat = append(flat, prettydiff.OldRange(r.Mine), prettydiff.NewRange(r.Other))
			continue
		}
		flat = append(flat, r)
	}
	oldLines, err := collapse(flat, oldOnly, rf.rules, rf.backend)
	if err != nil {
		return zero, err
	}
	newLines, err := collapse(flat, newOnly, rf.rules, rf.backend)
	if err != nil {
		return zero, err
	}
	return prettydiff.Range[string]{Kind: prettydiff.Replace, Mine: oldLines, Other: newLines, Refined: true}, nil
}

// emptySentinel reports whether a collapsed side is the single empty line
// that an empty token stream produces.
func emptySentinel(lines []string) bool {
	return len(lines) == 1 && lines[0] == ""
}

// groupInfo summarizes a display group for the unified-line decision.
type groupInfo struct {
	oldChanged     bool
	newChanged     bool
	whitespaceOnly bool
	multiline      bool
	hasReplace     bool
}

// inspect reports which sides of a group changed, whether every changed
// token is whitespace, and whether a change crosses a line boundary.
func inspect(g []prettydiff.Range[prettydiff.Token]) groupInfo {
	info := groupInfo{whitespaceOnly: true}
	changed := func(toks []prettydiff.Token) {
		for _, t := range toks {
			if t.Kind == prettydiff.Newline && t.Count > 0 {
				info.multiline = true
			}
			if strings.TrimSpace(t.Display()) != "" {
				info.whitespaceOnly = false
			}
		}
	}
	for _, r := range g {
		switch r.Kind {
		case prettydiff.Old:
			info.oldChanged = true
			changed(r.Mine)
		case prettydiff.New:
			info.newChanged = true
			changed(r.Other)
		case prettydiff.Replace:
			info.oldChanged = true
			info.newChanged = true
			info.hasReplace = true
			changed(r.Mine)
			changed(r.Other)
		}
	}
	return info
}
