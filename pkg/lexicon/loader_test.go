package lexicon

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeDict(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.dict")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeDict(t, "the:100\ntea:5\n\nten:10\nplain\n")

	lex := New()
	if err := lex.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if got := lex.Size(); got != 4 {
		t.Fatalf("Size() = %d, want 4", got)
	}
	if got := lex.Frequency("the"); got != 100 {
		t.Errorf("Frequency(the) = %d, want 100", got)
	}
	if got := lex.Frequency("plain"); got != 1 {
		t.Errorf("Frequency(plain) = %d, want default 1", got)
	}
}

func TestLoadFromFileStripsWhitespace(t *testing.T) {
	path := writeDict(t, "  apple : 3 \r\nBanana:2\r\n")

	lex := New()
	if err := lex.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if got := lex.Frequency("apple"); got != 3 {
		t.Errorf("Frequency(apple) = %d, want 3", got)
	}
	if !lex.Contains("banana") {
		t.Error("words should be lowercased on load")
	}
}

func TestLoadFromFileSkipsMalformedLines(t *testing.T) {
	path := writeDict(t, "good:2\nbad:notanumber\nworse:-1\nfine\n")

	lex := New()
	if err := lex.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	want := []string{"fine", "good"}
	got := lex.AllWords()
	sort.Strings(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded words mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFileClearsExistingState(t *testing.T) {
	lex := New()
	lex.Add("stale", 9)

	path := writeDict(t, "fresh:1\n")
	if err := lex.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if lex.Contains("stale") {
		t.Error("LoadFromFile must clear prior contents")
	}
	if !lex.Contains("fresh") {
		t.Error("Contains(fresh) = false after load")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	lex := New()
	if err := lex.LoadFromFile(filepath.Join(t.TempDir(), "nope.dict")); err == nil {
		t.Error("LoadFromFile on missing file = nil, want error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	lex := New()
	lex.Add("apple", 3)
	lex.Add("banana", 1)

	path := filepath.Join(t.TempDir(), "out.dict")
	if err := lex.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded := New()
	if err := loaded.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if got := loaded.Size(); got != 2 {
		t.Fatalf("Size() = %d after round trip, want 2", got)
	}
	for _, w := range lex.AllWords() {
		if loaded.Frequency(w) != lex.Frequency(w) {
			t.Errorf("Frequency(%q) = %d after round trip, want %d", w, loaded.Frequency(w), lex.Frequency(w))
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	lex := New()
	lex.Add("apple", 3)
	lex.Add("banana", 1)
	lex.Add("don't", 12)

	path := filepath.Join(t.TempDir(), "snapshot.bin")
	if err := lex.SaveBinary(path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}

	loaded := New()
	loaded.Add("stale", 1)
	if err := loaded.LoadBinary(path); err != nil {
		t.Fatalf("LoadBinary: %v", err)
	}

	wantWords := lex.AllWords()
	gotWords := loaded.AllWords()
	sort.Strings(wantWords)
	sort.Strings(gotWords)
	if diff := cmp.Diff(wantWords, gotWords); diff != "" {
		t.Fatalf("binary round trip words mismatch (-want +got):\n%s", diff)
	}
	for _, w := range wantWords {
		if loaded.Frequency(w) != lex.Frequency(w) {
			t.Errorf("Frequency(%q) = %d after round trip, want %d", w, loaded.Frequency(w), lex.Frequency(w))
		}
	}
	// Derived indexes are rebuilt, not just the map.
	if got := loaded.WordsWithPrefix("app", 5); len(got) != 1 || got[0] != "apple" {
		t.Errorf("WordsWithPrefix(app) after LoadBinary = %v, want [apple]", got)
	}
	if got := loaded.PhoneticMatches("apple"); len(got) == 0 {
		t.Error("PhoneticMatches(apple) empty after LoadBinary")
	}
}

func TestLoadBinaryMissing(t *testing.T) {
	lex := New()
	if err := lex.LoadBinary(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Error("LoadBinary on missing file = nil, want error")
	}
}
