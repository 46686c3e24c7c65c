/*
Package lexicon maintains the reference word set behind the spell checker.

Three cooperating structures answer every lookup the suggestion engine
needs: a frequency map as the canonical word store (its key set is the
exact-membership set), a Patricia radix trie for ordered prefix
enumeration, and phonetic buckets keyed by a Soundex-like code for
sounds-alike lookup. The structures agree on their key set at all times:
a word is stored iff it has a frequency entry, terminates a trie path,
and appears in exactly one phonetic bucket.

Stored words are lowercase ASCII letters with optional inner apostrophes.
A Lexicon is not safe for concurrent use; callers serialize access.
*/
package lexicon

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Lexicon is the reference word set with per-word frequencies.
type Lexicon struct {
	freqs    map[string]uint32
	trie     *patricia.Trie
	phonetic map[string][]string
}

// New returns an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{
		freqs:    make(map[string]uint32),
		trie:     patricia.NewTrie(),
		phonetic: make(map[string][]string),
	}
}

// normalizeKey maps a caller-supplied word to its canonical stored form.
// Every lookup and mutation goes through it so the four indexes agree on
// keys regardless of caller padding or case.
func normalizeKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// validWord reports whether w is a storable word: non-empty, lowercase
// letters and apostrophes only.
func validWord(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		c := w[i]
		if (c < 'a' || c > 'z') && c != '\'' {
			return false
		}
	}
	return true
}

// Add inserts word with the given frequency, lowercasing it first.
// Re-adding an existing word updates its frequency in the map and trie
// without duplicating the phonetic-bucket entry or changing Size.
// Words containing characters outside [a-z'] are dropped with a warning.
func (l *Lexicon) Add(word string, freq uint32) {
	w := normalizeKey(word)
	if !validWord(w) {
		log.Warnf("lexicon: dropping invalid word %q", word)
		return
	}
	if freq == 0 {
		freq = 1
	}
	if _, ok := l.freqs[w]; ok {
		l.freqs[w] = freq
		l.trie.Set(patricia.Prefix(w), freq)
		return
	}
	l.freqs[w] = freq
	l.trie.Insert(patricia.Prefix(w), freq)
	code := PhoneticCode(w)
	l.phonetic[code] = append(l.phonetic[code], w)
}

// Remove deletes word from every index and reports whether it was present.
// A bucket emptied by the removal is deleted outright.
func (l *Lexicon) Remove(word string) bool {
	w := normalizeKey(word)
	if _, ok := l.freqs[w]; !ok {
		return false
	}
	delete(l.freqs, w)
	l.trie.Delete(patricia.Prefix(w))

	code := PhoneticCode(w)
	bucket := l.phonetic[code]
	for i, bw := range bucket {
		if bw == w {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(l.phonetic, code)
	} else {
		l.phonetic[code] = bucket
	}
	return true
}

// Contains reports whether word is stored, after key normalization.
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.freqs[normalizeKey(word)]
	return ok
}

// Frequency returns word's stored frequency, or 0 if absent.
func (l *Lexicon) Frequency(word string) uint32 {
	return l.freqs[normalizeKey(word)]
}

// Size returns the number of stored words.
func (l *Lexicon) Size() int {
	return len(l.freqs)
}

// AllWords returns a copy of the stored word set in unspecified order.
func (l *Lexicon) AllWords() []string {
	words := make([]string, 0, len(l.freqs))
	for w := range l.freqs {
		words = append(words, w)
	}
	return words
}

// Clear removes every word and resets all indexes.
func (l *Lexicon) Clear() {
	l.freqs = make(map[string]uint32)
	l.trie = patricia.NewTrie()
	l.phonetic = make(map[string][]string)
}

type prefixHit struct {
	word string
	freq uint32
}

// errEnough aborts a trie visit once max terminals have been collected.
var errEnough = errors.New("enough terminals collected")

// WordsWithPrefix returns up to max stored words sharing prefix, ordered
// by frequency descending with lexicographic order breaking ties. A prefix
// absent from the trie yields an empty result.
func (l *Lexicon) WordsWithPrefix(prefix string, max int) []string {
	if max <= 0 {
		return nil
	}
	p := strings.ToLower(prefix)

	var hits []prefixHit
	err := l.trie.VisitSubtree(patricia.Prefix(p), func(key patricia.Prefix, item patricia.Item) error {
		freq, _ := item.(uint32)
		hits = append(hits, prefixHit{word: string(key), freq: freq})
		if len(hits) >= max {
			return errEnough
		}
		return nil
	})
	if err != nil && err != errEnough {
		log.Errorf("lexicon: prefix visit failed: %v", err)
		return nil
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].freq != hits[j].freq {
			return hits[i].freq > hits[j].freq
		}
		return hits[i].word < hits[j].word
	})

	words := make([]string, len(hits))
	for i, h := range hits {
		words[i] = h.word
	}
	return words
}

// PhoneticMatches returns the stored words sharing word's phonetic code.
// The result is a copy; mutating it does not affect the index.
func (l *Lexicon) PhoneticMatches(word string) []string {
	code := PhoneticCode(strings.ToLower(word))
	bucket := l.phonetic[code]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]string, len(bucket))
	copy(out, bucket)
	return out
}

// ApproxMemory estimates the resident bytes held by the word store and its
// derived indexes. The per-entry constants cover map buckets, trie nodes,
// and bucket slice headers; the word text itself is counted once per index
// that keys on it.
func (l *Lexicon) ApproxMemory() uint64 {
	var bytes uint64
	for w := range l.freqs {
		bytes += uint64(3*len(w)) + 112
	}
	bytes += uint64(len(l.phonetic)) * 56
	return bytes
}
