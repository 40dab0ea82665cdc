package latex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/prettydiff"
	"github.com/fwojciec/prettydiff/latex"
)

func TestApply_Escaping(t *testing.T) {
	t.Parallel()

	b := latex.New()
	rules := prettydiff.DefaultRules()

	got := b.Apply(`a\b{c}_d$e-f`, rules.LineSame, false)

	assert.Equal(t, ` |a\textbackslash{}b\{c\}\_d\$e{-}f`, got)
}

func TestApply_Macro(t *testing.T) {
	t.Parallel()

	b := latex.New()
	rules := prettydiff.DefaultRules()

	assert.Equal(t, `\pdiffWordOld{x}`, b.Apply("x", rules.WordOld, false))
}

func TestApply_MacroEscapesBody(t *testing.T) {
	t.Parallel()

	b := latex.New()
	rules := prettydiff.DefaultRules()

	got := b.Apply(`{x}`, rules.WordNew, false)

	assert.Equal(t, `\pdiffWordNew{\{x\}}`, got,
		"content braces must not close the macro argument")
}

func TestApply_RefinedPassthrough(t *testing.T) {
	t.Parallel()

	b := latex.New()
	rules := prettydiff.DefaultRules()

	got := b.Apply(`\pdiffWordOld{x}`, rules.LineOld, true)

	assert.True(t, strings.HasSuffix(got, `\pdiffWordOld{x}`),
		"refined bodies keep their macros unescaped")
}

func TestRender_Document(t *testing.T) {
	t.Parallel()

	b := latex.New()
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
	assert.True(t, strings.HasPrefix(out, "\\documentclass{article}\n"))
	assert.Contains(t, out, "\\usepackage{alltt}")
	assert.Contains(t, out,
		`\newcommand{\pdiffWordOld}[1]{\textbf{\textcolor[rgb]{0.667,0,0}{#1}}}`)
	assert.Contains(t, out,
		`\newcommand{\pdiffLineNew}[1]{\textcolor[rgb]{0,0.667,0}{#1}}`)
	assert.Contains(t, out, "\\begin{alltt}\n")
	assert.Contains(t, out, `\pdiffLineOld{gone}`)
	assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))
}
