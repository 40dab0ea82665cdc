// Package gitdiff implements patch parsing using bluekeyes/go-gitdiff:
// an existing unified or git diff is parsed into line-level hunks so the
// refinement pipeline can re-render it with word-level highlighting.
package gitdiff

import (
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/fwojciec/prettydiff"
)

// Compile-time interface verification.
var _ prettydiff.Parser = (*Parser)(nil)

// Parser parses unified diff content using go-gitdiff.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads patch content and returns one FileDiff per changed text file.
// Binary files carry no reconstructable lines and are skipped.
func (p *Parser) Parse(r io.Reader) ([]prettydiff.FileDiff, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	diffs := make([]prettydiff.FileDiff, 0, len(files))
	for _, f := range files {
		if f.IsBinary {
			continue
		}
		diffs = append(diffs, convertFile(f))
	}
	return diffs, nil
}

func convertFile(f *gitdiff.File) prettydiff.FileDiff {
	fd := prettydiff.FileDiff{
		OldFile: f.OldName,
		NewFile: f.NewName,
		Hunks:   make([]prettydiff.Hunk[string], 0, len(f.TextFragments)),
	}
	for _, frag := range f.TextFragments {
		fd.Hunks = append(fd.Hunks, convertFragment(frag))
	}
	return fd
}

// convertFragment turns one patch fragment into a hunk, merging each
// adjacent delete/add run into a single Replace range so the refiner sees
// changed line pairs together.
func convertFragment(frag *gitdiff.TextFragment) prettydiff.Hunk[string] {
	h := prettydiff.Hunk[string]{
		MineStart:  int(frag.OldPosition),
		MineSize:   int(frag.OldLines),
		OtherStart: int(frag.NewPosition),
		OtherSize:  int(frag.NewLines),
	}

	var pairs [][2]string
	var dels, ins []string

	flushChanges := func() {
		switch {
		case len(dels) > 0 && len(ins) > 0:
			h.Ranges = append(h.Ranges, prettydiff.ReplaceRange(dels, ins))
		case len(dels) > 0:
			h.Ranges = append(h.Ranges, prettydiff.OldRange(dels))
		case len(ins) > 0:
			h.Ranges = append(h.Ranges, prettydiff.NewRange(ins))
		}
		dels, ins = nil, nil
	}
	flushSame := func() {
		if len(pairs) > 0 {
			h.Ranges = append(h.Ranges, prettydiff.SameRange(pairs))
			pairs = nil
		}
	}

	for _, l := range frag.Lines {
		text := strings.TrimSuffix(l.Line, "\n")
		switch l.Op {
		case gitdiff.OpContext:
			flushChanges()
			pairs = append(pairs, [2]string{text, text})
		case gitdiff.OpDelete:
			flushSame()
			dels = append(dels, text)
		case gitdiff.OpAdd:
			flushSame()
			ins = append(ins, text)
		}
	}
	flushSame()
	flushChanges()

	return h
}
