package tokenizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	tok := New()

	got := tok.Extract("Hello, world! It's fine.")
	want := []Token{
		{Word: "Hello", Offset: 0},
		{Word: "world", Offset: 7},
		{Word: "It's", Offset: 14},
		{Word: "fine", Offset: 19},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSkipsNonWords(t *testing.T) {
	tok := New()

	if got := tok.Extract("123 456 !!!"); got != nil {
		t.Errorf("Extract on non-words = %v, want nil", got)
	}
	if got := tok.Extract(""); got != nil {
		t.Errorf("Extract(\"\") = %v, want nil", got)
	}
	// Non-ASCII bytes fall outside the word pattern without failing.
	got := tok.Extract("caf\xc3\xa9 au lait")
	if len(got) == 0 {
		t.Fatal("Extract on mixed input returned nothing")
	}
	if got[0].Word != "caf" {
		t.Errorf("Extract first token = %q, want %q", got[0].Word, "caf")
	}
}

func TestExtractWithLines(t *testing.T) {
	tok := New()

	got := tok.ExtractWithLines("Hello, world!\nFoo bar.")
	want := []LineToken{
		{Word: "Hello", Line: 1, Column: 1},
		{Word: "world", Line: 1, Column: 8},
		{Word: "Foo", Line: 2, Column: 1},
		{Word: "bar", Line: 2, Column: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractWithLines mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractWithLinesBlankLines(t *testing.T) {
	tok := New()

	got := tok.ExtractWithLines("one\n\n\n  two")
	want := []LineToken{
		{Word: "one", Line: 1, Column: 1},
		{Word: "two", Line: 4, Column: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ExtractWithLines mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	tok := New()
	cases := []struct {
		in   string
		want string
	}{
		{"Hello", "hello"},
		{"don't", "don't"},
		{"word!", "word"},
		{"(parens)", "parens"},
		{"MiXeD", "mixed"},
		{"123abc", "abc"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := tok.Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeCaseSensitive(t *testing.T) {
	tok := New()
	tok.CaseSensitive = true
	if got := tok.Normalize("Hello!"); got != "Hello" {
		t.Errorf("Normalize(Hello!) = %q in case-sensitive mode, want Hello", got)
	}
}

func TestShouldIgnore(t *testing.T) {
	tok := New()
	cases := []struct {
		token string
		want  bool
	}{
		{"hello", false},
		{"don't", false},
		{"it", true}, // too short after normalization
		{"a", true},
		{"https://example.com/page", true},
		{"www.example.com", true},
		{"example.com", true},
		{"user@example.com", true},
		{"42", true},
		{"3.14", true},
		{"word", false},
		// Residual junk: digits embedded in letters are not stripped
		// punctuation, so the token is ignored rather than checked as
		// the word normalization would leave behind.
		{"wo3rd", true},
		{"abc123def", true},
		{"word!", false},
		{"(hello)", false},
	}
	for _, tc := range cases {
		if got := tok.ShouldIgnore(tc.token); got != tc.want {
			t.Errorf("ShouldIgnore(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestShouldIgnoreToggles(t *testing.T) {
	tok := New()
	tok.IgnoreURLs = false
	tok.IgnoreNumbers = false
	tok.IgnoreEmails = false

	if tok.ShouldIgnore("wwwexamplecom") {
		t.Error("plain alphabetic token ignored with toggles off")
	}
	if !tok.ShouldIgnore("42") {
		// numbers normalize to empty, caught by the length rule
		t.Error("ShouldIgnore(42) = false, want true via length rule")
	}
}

func TestShouldIgnoreResidualJunk(t *testing.T) {
	tok := New()
	tok.IgnoreURLs = false
	tok.IgnoreEmails = false
	tok.IgnoreNumbers = false

	// Even with rules 2-4 disabled, embedded digits and non-ASCII bytes
	// trip the residual-character rule; stripped punctuation does not.
	cases := []struct {
		token string
		want  bool
	}{
		{"wo3rd", true},
		{"caf\xc3\xa9", true},
		{"hello...", false},
		{"don't!", false},
	}
	for _, tc := range cases {
		if got := tok.ShouldIgnore(tc.token); got != tc.want {
			t.Errorf("ShouldIgnore(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestShouldIgnoreDoesNotMisclassifyWords(t *testing.T) {
	tok := New()
	// Pure alphabetic tokens must never trip the URL/email/number rules.
	for _, w := range []string{"com", "org", "net", "www", "http", "dot"} {
		if tok.ShouldIgnore(w) {
			t.Errorf("ShouldIgnore(%q) = true, want false", w)
		}
	}
}
