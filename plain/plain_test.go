package plain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/prettydiff"
	"github.com/fwojciec/prettydiff/plain"
)

func TestApply(t *testing.T) {
	t.Parallel()

	b := plain.New()
	rules := prettydiff.DefaultRules()

	assert.Equal(t, " |abc", b.Apply("abc", rules.LineSame, false))
	assert.Equal(t, "-|gone", b.Apply("gone", rules.LineOld, false))
	assert.Equal(t, "x", b.Apply("x", rules.WordOld, false), "styles are dropped, not rendered")
}

func TestRender(t *testing.T) {
	t.Parallel()

	b := plain.New()
	doc := &prettydiff.Document{
		OldFile: "old.txt",
		NewFile: "new.txt",
		Rules:   prettydiff.DefaultRules(),
		Hunks: []prettydiff.Hunk[string]{{
			MineStart: 1, MineSize: 1, OtherStart: 1, OtherSize: 1,
			Ranges: []prettydiff.Range[string]{{
				Kind:    prettydiff.Replace,
				Mine:    []string{"foo = 1"},
				Other:   []string{"foo = 2"},
				Refined: true,
			}},
		}},
	}

	var sb strings.Builder
	err := b.Render(&sb, doc)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "------ old.txt", lines[0])
	assert.Equal(t, "++++++ new.txt", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "@|-1,1 +1,1 ==="), "hunk header: %q", lines[2])
	assert.Equal(t, "-|foo = 1", lines[3])
	assert.Equal(t, "+|foo = 2", lines[4])
}

func TestRender_UnifiedLine(t *testing.T) {
	t.Parallel()

	b := plain.New()
	doc := &prettydiff.Document{
		OldFile: "old.txt",
		NewFile: "new.txt",
		Rules:   prettydiff.DefaultRules(),
		Hunks: []prettydiff.Hunk[string]{{
			MineStart: 1, MineSize: 1, OtherStart: 1, OtherSize: 1,
			Ranges: []prettydiff.Range[string]{
				prettydiff.UnifiedRange([]string{"foo = 12"}),
			},
		}},
	}

	var sb strings.Builder
	err := b.Render(&sb, doc)

	require.NoError(t, err)
	assert.Contains(t, sb.String(), "!|foo = 12\n")
}
