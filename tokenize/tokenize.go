// Package tokenize splits lines of text into exact, reversible streams of
// Word and Newline tokens for word-level diff refinement. Concatenating the
// Display text of every token in a stream reproduces the tokenized input.
package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/prettydiff"
)

// Line splits one line of text (no trailing newline) into tokens using a
// hand-written scanner. Delimiters (quotes, brackets, operator and
// punctuation characters) become single-character Word tokens; whitespace
// runs inside the line become Word tokens of their own; the remaining spans
// become multi-character Word tokens.
//
// The stream starts with a Newline boundary marker whose count is 0 and
// whose whitespace is the line's leading indentation, and ends with a
// Newline(1) marker. A line with no words yields the empty stream. When
// keepWhitespace is false, trailing whitespace is stripped before splitting;
// embedded whitespace is preserved for display and only normalized later for
// comparison.
func Line(s string, keepWhitespace bool) []prettydiff.Token {
	if !keepWhitespace {
		s = strings.TrimRightFunc(s, unicode.IsSpace)
	}

	toks := make([]prettydiff.Token, 0, len(s)/4+2)

	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	toks = append(toks, prettydiff.NewlineToken(0, s[:i]))

	hasWord := false
	for i < len(s) {
		start := i
		switch c := s[i]; {
		case isSpace(c):
			for i < len(s) && isSpace(s[i]) {
				i++
			}
		case isDelimiter(c):
			i++
		default:
			for i < len(s) && !isSpace(s[i]) && !isDelimiter(s[i]) {
				_, size := utf8.DecodeRuneInString(s[i:])
				i += size
			}
		}
		toks = append(toks, prettydiff.WordToken(s[start:i]))
		hasWord = true
	}

	if !hasWord {
		return nil
	}
	return append(toks, prettydiff.NewlineToken(1, ""))
}

// Block tokenizes a block of lines into one stream. Adjacent Newline tokens
// at line boundaries merge by summing counts and prepending the more recent
// whitespace text, so blank lines accumulate into the preceding marker's
// count instead of producing empty streams.
func Block(lines []string, keepWhitespace bool) []prettydiff.Token {
	var toks []prettydiff.Token
	for _, line := range lines {
		lt := Line(line, keepWhitespace)
		if len(lt) == 0 {
			toks = appendMerged(toks, prettydiff.NewlineToken(1, ""))
			continue
		}
		for _, t := range lt {
			toks = appendMerged(toks, t)
		}
	}
	return toks
}

func appendMerged(toks []prettydiff.Token, t prettydiff.Token) []prettydiff.Token {
	if n := len(toks); n > 0 && t.Kind == prettydiff.Newline && toks[n-1].Kind == prettydiff.Newline {
		toks[n-1].Count += t.Count
		toks[n-1].Whitespace = t.Whitespace + toks[n-1].Whitespace
		return toks
	}
	return append(toks, t)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isDelimiter(c byte) bool {
	switch c {
	case '"', '\'', '`',
		'(', ')', '[', ']', '{', '}', '<', '>',
		',', '.', ';', ':', '?', '!',
		'=', '+', '-', '*', '/', '%', '&', '|', '^', '~', '@', '#', '$':
		return true
	}
	return false
}
