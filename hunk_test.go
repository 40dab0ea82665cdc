package prettydiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/prettydiff"
)

func pairs(lines ...string) [][2]string {
	out := make([][2]string, len(lines))
	for i, s := range lines {
		out[i] = [2]string{s, s}
	}
	return out
}

func TestWindowRanges_WholeFile(t *testing.T) {
	t.Parallel()

	ranges := []prettydiff.Range[string]{
		prettydiff.SameRange(pairs("a", "b")),
		prettydiff.ReplaceRange([]string{"x"}, []string{"y", "z"}),
		prettydiff.SameRange(pairs("c")),
	}

	hunks := prettydiff.WindowRanges(ranges, -1)

	require.Len(t, hunks, 1)
	h := hunks[0]
	assert.Equal(t, 1, h.MineStart)
	assert.Equal(t, 4, h.MineSize)
	assert.Equal(t, 1, h.OtherStart)
	assert.Equal(t, 5, h.OtherSize)
	assert.Equal(t, ranges, h.Ranges)
}

func TestWindowRanges_SplitsDistantChanges(t *testing.T) {
	t.Parallel()

	ranges := []prettydiff.Range[string]{
		prettydiff.OldRange([]string{"first"}),
		prettydiff.SameRange(pairs("a", "b", "c", "d", "e", "f", "g", "h")),
		prettydiff.NewRange([]string{"last"}),
	}

	hunks := prettydiff.WindowRanges(ranges, 2)

	require.Len(t, hunks, 2)

	first := hunks[0]
	assert.Equal(t, 1, first.MineStart)
	assert.Equal(t, 3, first.MineSize, "one removed line plus two trailing context lines")
	assert.Equal(t, 1, first.OtherStart)
	assert.Equal(t, 2, first.OtherSize)
	require.Len(t, first.Ranges, 2)
	assert.Equal(t, pairs("a", "b"), first.Ranges[1].Pairs)

	second := hunks[1]
	assert.Equal(t, 8, second.MineStart)
	assert.Equal(t, 2, second.MineSize)
	assert.Equal(t, 7, second.OtherStart)
	assert.Equal(t, 3, second.OtherSize)
	require.Len(t, second.Ranges, 2)
	assert.Equal(t, pairs("g", "h"), second.Ranges[0].Pairs)
}

func TestWindowRanges_AbsorbsNearChanges(t *testing.T) {
	t.Parallel()

	ranges := []prettydiff.Range[string]{
		prettydiff.OldRange([]string{"first"}),
		prettydiff.SameRange(pairs("a", "b", "c")),
		prettydiff.NewRange([]string{"last"}),
	}

	hunks := prettydiff.WindowRanges(ranges, 2)

	require.Len(t, hunks, 1, "changes closer than twice the context share a hunk")
	h := hunks[0]
	assert.Equal(t, 1, h.MineStart)
	assert.Equal(t, 4, h.MineSize)
	assert.Equal(t, 4, h.OtherSize)
	require.Len(t, h.Ranges, 3)
}

func TestWindowRanges_ZeroContext(t *testing.T) {
	t.Parallel()

	ranges := []prettydiff.Range[string]{
		prettydiff.SameRange(pairs("a")),
		prettydiff.ReplaceRange([]string{"x"}, []string{"y"}),
		prettydiff.SameRange(pairs("b")),
	}

	hunks := prettydiff.WindowRanges(ranges, 0)

	require.Len(t, hunks, 1)
	h := hunks[0]
	assert.Equal(t, 2, h.MineStart)
	assert.Equal(t, 1, h.MineSize)
	assert.Equal(t, 2, h.OtherStart)
	assert.Equal(t, 1, h.OtherSize)
	require.Len(t, h.Ranges, 1)
	assert.Equal(t, prettydiff.Replace, h.Ranges[0].Kind)
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", prettydiff.CollapseWhitespace("a \t b"))
	assert.Equal(t, " a b ", prettydiff.CollapseWhitespace("  a  b  "))
	assert.Equal(t, "ab", prettydiff.CollapseWhitespace("ab"))
	assert.Equal(t, " ", prettydiff.CollapseWhitespace(" \t\n "))
}
