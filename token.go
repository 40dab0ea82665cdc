package prettydiff

import (
	"strings"
	"unicode"
)

// TokenKind identifies the variant of a Token.
type TokenKind int

// Token kinds.
const (
	Word TokenKind = iota
	Newline
)

// Token is the atomic unit of word-level refinement: either a Word carrying
// literal text, or a Newline boundary marker. A Newline's Count is the number
// of line breaks it represents (0 marks the start-of-stream boundary), and
// Whitespace preserves the exact separator text so rendering stays
// byte-faithful; an empty Whitespace means the marker is synthetic.
type Token struct {
	Kind       TokenKind
	Text       string // Word: the literal text
	Count      int    // Newline: number of line breaks
	Whitespace string // Newline: literal separator text, if any
}

// WordToken returns a Word token.
func WordToken(text string) Token {
	return Token{Kind: Word, Text: text}
}

// NewlineToken returns a Newline token with count line breaks and the given
// carried whitespace.
func NewlineToken(count int, whitespace string) Token {
	return Token{Kind: Newline, Count: count, Whitespace: whitespace}
}

// Display returns the text the token contributes to rendered output.
// Concatenating Display over a token stream reproduces the tokenized input.
func (t Token) Display() string {
	if t.Kind == Word {
		return t.Text
	}
	return t.Whitespace
}

// CollapseWhitespace reduces every run of whitespace in s to a single space.
// Comparison under whitespace-insensitive diffing normalizes both operands
// with this before lexical comparison.
func CollapseWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inRun = true
			continue
		}
		if inRun {
			sb.WriteByte(' ')
			inRun = false
		}
		sb.WriteRune(r)
	}
	if inRun {
		sb.WriteByte(' ')
	}
	return sb.String()
}
