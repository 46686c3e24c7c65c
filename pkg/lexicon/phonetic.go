package lexicon

import "strings"

// phoneticDigit maps a lowercase letter to its Soundex group digit, or 0
// for letters that produce no digit (vowels, h, w, y) and apostrophes.
func phoneticDigit(c byte) byte {
	switch c {
	case 'b', 'f', 'p', 'v':
		return '1'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return '2'
	case 'd', 't':
		return '3'
	case 'l':
		return '4'
	case 'm', 'n':
		return '5'
	case 'r':
		return '6'
	}
	return 0
}

// PhoneticCode returns word's 4-character phonetic code: the uppercased
// first letter followed by three digits in '0'..'6', zero-padded.
//
// Unlike textbook Soundex, letters that produce no digit are skipped
// without resetting run collapsing, so "Robert" and "Rupert" both code
// to "R163". Returns "" for an empty word.
func PhoneticCode(word string) string {
	if word == "" {
		return ""
	}
	w := strings.ToLower(word)

	code := make([]byte, 0, 4)
	first := w[0]
	if first >= 'a' && first <= 'z' {
		code = append(code, first-'a'+'A')
	} else {
		code = append(code, first)
	}

	last := code[0]
	for i := 1; i < len(w) && len(code) < 4; i++ {
		d := phoneticDigit(w[i])
		if d == 0 {
			continue
		}
		if d == last {
			continue
		}
		code = append(code, d)
		last = d
	}
	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}
