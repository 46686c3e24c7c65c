package lexicon

import "testing"

func TestPhoneticCode(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"robert", "R163"},
		{"Robert", "R163"},
		{"rupert", "R163"},
		{"the", "T000"},
		{"teh", "T000"},
		{"tea", "T000"},
		{"ten", "T500"},
		{"a", "A000"},
		{"don't", "D530"},
		// Runs of the same digit collapse even across skipped letters:
		// the vowels between the sibilants do not reset the run.
		{"sasas", "S200"},
		{"accent", "A253"},
		{"cake", "C200"},
	}
	for _, tc := range cases {
		if got := PhoneticCode(tc.word); got != tc.want {
			t.Errorf("PhoneticCode(%q) = %q, want %q", tc.word, got, tc.want)
		}
	}
}

func TestPhoneticCodeShape(t *testing.T) {
	words := []string{"a", "ab", "xylophone", "rhythm", "straightforward", "llama", "queue"}
	for _, w := range words {
		code := PhoneticCode(w)
		if len(code) != 4 {
			t.Fatalf("PhoneticCode(%q) = %q, want length 4", w, code)
		}
		if code[0] < 'A' || code[0] > 'Z' {
			t.Errorf("PhoneticCode(%q) first char = %c, want A-Z", w, code[0])
		}
		for i := 1; i < 4; i++ {
			if code[i] < '0' || code[i] > '6' {
				t.Errorf("PhoneticCode(%q)[%d] = %c, want 0-6", w, i, code[i])
			}
		}
	}
}

func TestPhoneticCodeEmpty(t *testing.T) {
	if got := PhoneticCode(""); got != "" {
		t.Errorf("PhoneticCode(\"\") = %q, want empty", got)
	}
}
