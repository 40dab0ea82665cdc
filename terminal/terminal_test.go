package terminal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/prettydiff"
	"github.com/fwojciec/prettydiff/terminal"
)

func TestApply_Unstyled(t *testing.T) {
	t.Parallel()

	b := terminal.New()
	rules := prettydiff.DefaultRules()

	assert.Equal(t, " |abc", b.Apply("abc", rules.LineSame, false),
		"a rule without styles renders verbatim")
}

func TestApply_Styled(t *testing.T) {
	t.Parallel()

	b := terminal.New()
	rules := prettydiff.DefaultRules()

	got := b.Apply("x", rules.WordOld, false)

	assert.Equal(t, "\x1b[0;1;31mx\x1b[0m", got,
		"bold red body leads with a reset and ends with one")
}

func TestApply_RefinedResetPrefix(t *testing.T) {
	t.Parallel()

	b := terminal.New()
	rules := prettydiff.DefaultRules()

	got := b.Apply("body", rules.LineOld, true)

	assert.Equal(t, "\x1b[0;31m-|\x1b[0m\x1b[0mbody", got,
		"refined bodies get a reset instead of the rule's body style")
}

func TestApply_BackgroundAndCMYK(t *testing.T) {
	t.Parallel()

	b := terminal.New()
	bg := prettydiff.Rule{Styles: []prettydiff.Style{prettydiff.Bg(prettydiff.Named(prettydiff.Blue))}}
	cmyk := prettydiff.Rule{Styles: []prettydiff.Style{prettydiff.Fg(prettydiff.CMYK(0, 1, 1, 0))}}

	assert.Equal(t, "\x1b[0;44mx\x1b[0m", b.Apply("x", bg, false))
	assert.Equal(t, "\x1b[0;38;2;255;0;0mx\x1b[0m", b.Apply("x", cmyk, false),
		"pure cyan-free CMYK converts to truecolor red")
}

func TestRender(t *testing.T) {
	t.Parallel()

	b := terminal.New()
	doc := &prettydiff.Document{
		OldFile: "old.txt",
		NewFile: "new.txt",
		Rules:   prettydiff.DefaultRules(),
		Hunks: []prettydiff.Hunk[string]{{
			MineStart: 1, MineSize: 1, OtherStart: 1, OtherSize: 1,
			Ranges: []prettydiff.Range[string]{
				prettydiff.OldRange([]string{"gone"}),
			},
		}},
	}

	var sb strings.Builder
	err := b.Render(&sb, doc)

	require.NoError(t, err)
	out := sb.String()
	assert.Contains(t, out, "old.txt")
	assert.Contains(t, out, "new.txt")
	assert.Contains(t, out, "\x1b[0;31mgone\x1b[0m", "removed line body styled by the old-line rule")
}
