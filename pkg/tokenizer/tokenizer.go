/*
Package tokenizer extracts candidate words from raw text and decides which
tokens are worth spell-checking.

Tokens are maximal runs of ASCII letters with an optional inner apostrophe
group (contractions like "don't"). Positions are always measured against the
original text, before any normalization. Classification handles the usual
noise found in prose and logs: URLs, email addresses, bare numbers, and
tokens too short to meaningfully check.
*/
package tokenizer

import (
	"regexp"
	"strings"

	"mvdan.cc/xurls/v2"
)

// Token is a single word occurrence with its byte offset in the source text.
type Token struct {
	Word   string
	Offset int
}

// LineToken is a word occurrence located by line and column, both 1-based.
// Column is the byte offset within the line plus one.
type LineToken struct {
	Word   string
	Line   int
	Column int
}

var (
	wordPattern   = regexp.MustCompile(`[a-zA-Z]+(?:'[a-zA-Z]+)?`)
	numberPattern = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?$`)
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)

	// Relaxed also matches scheme-less forms like "www.example.com" and
	// bare "host.tld", which whitespace-split input hands us whole.
	urlPattern = xurls.Relaxed()
)

// Tokenizer splits text into word tokens and filters the ones that should
// not be checked. The zero value checks case-insensitively with no length,
// URL, email or number rules; only the residual-character rule applies.
// Use New for the usual defaults.
type Tokenizer struct {
	CaseSensitive bool
	IgnoreURLs    bool
	IgnoreEmails  bool
	IgnoreNumbers bool
	MinWordLength int
}

// New returns a Tokenizer with the default ignore rules enabled and the
// minimum checkable word length set to 3.
func New() *Tokenizer {
	return &Tokenizer{
		IgnoreURLs:    true,
		IgnoreEmails:  true,
		IgnoreNumbers: true,
		MinWordLength: 3,
	}
}

// Extract returns every word token in text with its byte offset, in text
// order. Bytes that do not fit the word pattern are skipped; malformed or
// non-ASCII input never fails.
func (t *Tokenizer) Extract(text string) []Token {
	locs := wordPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(locs))
	for _, loc := range locs {
		tokens = append(tokens, Token{Word: text[loc[0]:loc[1]], Offset: loc[0]})
	}
	return tokens
}

// ExtractWithLines returns every word token located by line and column.
// A rolling scan advances the line counter past each newline at or before
// the match position, so emitted tokens stay in text order.
func (t *Tokenizer) ExtractWithLines(text string) []LineToken {
	locs := wordPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	tokens := make([]LineToken, 0, len(locs))
	line := 1
	lineStart := 0
	scanned := 0
	for _, loc := range locs {
		for i := scanned; i < loc[0]; i++ {
			if text[i] == '\n' {
				line++
				lineStart = i + 1
			}
		}
		scanned = loc[0]
		tokens = append(tokens, LineToken{
			Word:   text[loc[0]:loc[1]],
			Line:   line,
			Column: loc[0] - lineStart + 1,
		})
	}
	return tokens
}

// Normalize strips every character outside [a-zA-Z'] and, unless the
// tokenizer is case-sensitive, lowercases the rest.
func (t *Tokenizer) Normalize(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= 'a' && c <= 'z' || c == '\'':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			if t.CaseSensitive {
				b.WriteByte(c)
			} else {
				b.WriteByte(c + 'a' - 'A')
			}
		}
	}
	return b.String()
}

// ShouldIgnore reports whether token should be excluded from checking.
// Rules are evaluated in order: minimum length, URL, email, number, and
// finally any residual character outside [a-z'] after stripping.
func (t *Tokenizer) ShouldIgnore(token string) bool {
	norm := t.Normalize(token)
	if len(norm) < t.MinWordLength {
		return true
	}
	if t.IgnoreURLs && isURL(token) {
		return true
	}
	if t.IgnoreEmails && emailPattern.MatchString(token) {
		return true
	}
	if t.IgnoreNumbers && numberPattern.MatchString(token) {
		return true
	}
	// Rule 5 inspects the original token: after discounting common
	// punctuation, any residual byte outside [a-z'] (digits, control
	// bytes, non-ASCII) marks the token as junk rather than letting
	// normalization silently strip it into a different word.
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '\'' {
			continue
		}
		if isStrippablePunct(c) {
			continue
		}
		return true
	}
	return false
}

// isStrippablePunct reports whether c is punctuation or whitespace that
// normalization discards without changing what word the token reads as.
func isStrippablePunct(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n',
		'.', ',', ';', ':', '!', '?', '"', '`',
		'(', ')', '[', ']', '{', '}', '<', '>',
		'-', '_', '/', '\\', '&', '*', '#', '@', '%', '$', '^', '+', '=', '|', '~':
		return true
	}
	return false
}

// isURL reports whether the whole token reads as a URL, not merely
// contains one.
func isURL(token string) bool {
	return urlPattern.FindString(token) == token
}
