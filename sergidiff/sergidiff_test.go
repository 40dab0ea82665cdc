package sergidiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/prettydiff"
	"github.com/fwojciec/prettydiff/sergidiff"
	"github.com/fwojciec/prettydiff/tokenize"
)

func TestDiffTokens_SingleWordChange(t *testing.T) {
	t.Parallel()

	d := sergidiff.New()
	mine := tokenize.Block([]string{"x = 1"}, false)
	other := tokenize.Block([]string{"x = 2"}, false)

	ranges := d.DiffTokens(mine, other, false)

	require.Len(t, ranges, 4)
	assert.Equal(t, prettydiff.Same, ranges[0].Kind)
	assert.Len(t, ranges[0].Pairs, 5)
	assert.Equal(t, prettydiff.Old, ranges[1].Kind)
	assert.Equal(t, []prettydiff.Token{prettydiff.WordToken("1")}, ranges[1].Mine)
	assert.Equal(t, prettydiff.New, ranges[2].Kind)
	assert.Equal(t, []prettydiff.Token{prettydiff.WordToken("2")}, ranges[2].Other)
	assert.Equal(t, prettydiff.Same, ranges[3].Kind)
	assert.Len(t, ranges[3].Pairs, 1)
}

func TestDiffTokens_Equal(t *testing.T) {
	t.Parallel()

	d := sergidiff.New()
	toks := tokenize.Block([]string{"same text"}, false)

	ranges := d.DiffTokens(toks, toks, false)

	require.Len(t, ranges, 1)
	assert.Equal(t, prettydiff.Same, ranges[0].Kind)
	assert.Len(t, ranges[0].Pairs, len(toks))
}

func TestDiffLines_Context(t *testing.T) {
	t.Parallel()

	d := sergidiff.New()
	mine := []string{"a", "b", "c", "x", "d", "e", "f"}
	other := []string{"a", "b", "c", "y", "d", "e", "f"}

	hunks := d.DiffLines(mine, other, false, 1)

	require.Len(t, hunks, 1)
	h := hunks[0]
	assert.Equal(t, 3, h.MineStart)
	assert.Equal(t, 3, h.MineSize)
	require.Len(t, h.Ranges, 3)
	assert.Equal(t, prettydiff.Replace, h.Ranges[1].Kind)
	assert.Equal(t, []string{"x"}, h.Ranges[1].Mine)
	assert.Equal(t, []string{"y"}, h.Ranges[1].Other)
}

func TestDiffLines_WhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	d := sergidiff.New()

	hunks := d.DiffLines([]string{"a  b "}, []string{"a b"}, false, -1)

	require.Len(t, hunks, 1)
	require.Len(t, hunks[0].Ranges, 1)
	assert.Equal(t, prettydiff.Same, hunks[0].Ranges[0].Kind)
}
