/*
Package suggest generates and ranks correction candidates for misspelled
words.

Candidates come from several complementary strategies: single-edit
variants (deletions, insertions, substitutions, adjacent transpositions)
kept only when the lexicon knows them, two-word splits, phonetic bucket
matches, and frequency-ranked prefix completions. The pooled candidates
are scored by a fused formula combining edit distance, corpus frequency,
length ratio and shared prefix, then returned best-first.

A Suggester holds a read-only view of a Lexicon for the duration of its
calls; it never mutates it.
*/
package suggest

import (
	"math"
	"sort"
	"strings"

	"github.com/spellward/spellward/pkg/lexicon"
)

// Suggestion is a ranked correction candidate.
type Suggestion struct {
	Word  string
	Score float64
}

// Params holds the candidate-generation bounds and scoring weights.
type Params struct {
	MaxEditDistance    int
	MaxSuggestions     int
	EditDistanceWeight float64
	FrequencyWeight    float64
	PhoneticWeight     float64
	PrefixWeight       float64
}

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		MaxEditDistance:    2,
		MaxSuggestions:     10,
		EditDistanceWeight: 1.0,
		FrequencyWeight:    0.5,
		PhoneticWeight:     0.3,
		PrefixWeight:       0.2,
	}
}

// Suggester produces ranked corrections against a borrowed Lexicon.
type Suggester struct {
	lex    *lexicon.Lexicon
	params Params
}

// New returns a Suggester reading from lex.
func New(lex *lexicon.Lexicon, params Params) *Suggester {
	return &Suggester{lex: lex, params: params}
}

// pool accumulates candidates, deduplicating while preserving insertion
// order so that equal scores rank in generation order.
type pool struct {
	words []string
	seen  map[string]struct{}
}

func newPool(input string) *pool {
	return &pool{seen: map[string]struct{}{input: {}}}
}

func (p *pool) add(word string) {
	if _, dup := p.seen[word]; dup {
		return
	}
	p.seen[word] = struct{}{}
	p.words = append(p.words, word)
}

// Suggest returns up to MaxSuggestions ranked corrections for word.
// Returns nil for an empty word or a Suggester without a lexicon.
func (s *Suggester) Suggest(word string) []Suggestion {
	if s == nil || s.lex == nil || word == "" {
		return nil
	}
	w := strings.ToLower(word)

	cands := newPool(w)
	s.editCandidates(w, cands)
	s.splitCandidates(w, cands)
	for _, m := range s.lex.PhoneticMatches(w) {
		cands.add(m)
	}
	s.prefixCandidates(w, cands)

	ranked := make([]Suggestion, 0, len(cands.words))
	for _, c := range cands.words {
		ranked = append(ranked, Suggestion{Word: c, Score: s.score(w, c)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > s.params.MaxSuggestions {
		ranked = ranked[:s.params.MaxSuggestions]
	}
	return ranked
}

// editCandidates adds every single-edit variant of w that the lexicon
// contains: deletions, adjacent transpositions, substitutions and
// insertions over a-z.
func (s *Suggester) editCandidates(w string, cands *pool) {
	n := len(w)

	for i := 0; i < n; i++ {
		if c := w[:i] + w[i+1:]; s.lex.Contains(c) {
			cands.add(c)
		}
	}

	for i := 0; i < n-1; i++ {
		c := w[:i] + string(w[i+1]) + string(w[i]) + w[i+2:]
		if s.lex.Contains(c) {
			cands.add(c)
		}
	}

	for i := 0; i < n; i++ {
		for ch := byte('a'); ch <= 'z'; ch++ {
			if ch == w[i] {
				continue
			}
			if c := w[:i] + string(ch) + w[i+1:]; s.lex.Contains(c) {
				cands.add(c)
			}
		}
	}

	for i := 0; i <= n; i++ {
		for ch := byte('a'); ch <= 'z'; ch++ {
			if c := w[:i] + string(ch) + w[i:]; s.lex.Contains(c) {
				cands.add(c)
			}
		}
	}
}

// splitCandidates adds "left right" for every split point where both
// halves are lexicon words.
func (s *Suggester) splitCandidates(w string, cands *pool) {
	for i := 1; i < len(w); i++ {
		if s.lex.Contains(w[:i]) && s.lex.Contains(w[i:]) {
			cands.add(w[:i] + " " + w[i:])
		}
	}
}

// prefixCandidatesPerLength bounds each words_with_prefix call; the union
// over lengths still feeds the full pool.
const prefixCandidatesPerLength = 20

// prefixCandidates adds frequency-ranked completions of w's prefixes,
// from the three-letter prefix (or shorter word) up to w itself.
func (s *Suggester) prefixCandidates(w string, cands *pool) {
	start := 3
	if len(w) < start {
		start = len(w)
	}
	for l := start; l <= len(w); l++ {
		for _, m := range s.lex.WordsWithPrefix(w[:l], prefixCandidatesPerLength) {
			cands.add(m)
		}
	}
}

// score fuses the ranking signals for candidate c against input w.
// The length-ratio term carries a fixed 0.10 factor.
func (s *Suggester) score(w, c string) float64 {
	editScore := 1.0 / float64(1+Levenshtein(w, c))
	freqScore := math.Log(1+float64(s.lex.Frequency(c))) / 10

	lw, lc := len(w), len(c)
	shorter, longer := lw, lc
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	lengthRatio := float64(shorter) / float64(longer)

	prefixScore := float64(commonPrefixLen(w, c)) / float64(len(w))

	return s.params.EditDistanceWeight*editScore +
		s.params.FrequencyWeight*freqScore +
		0.10*lengthRatio +
		s.params.PrefixWeight*prefixScore
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// SuggestWithinDistance returns lexicon words within Damerau-Levenshtein
// distance maxDist of word, ordered by distance ascending then frequency
// descending, capped at MaxSuggestions. Unlike Suggest, this path honors
// an explicit edit-distance bound.
func (s *Suggester) SuggestWithinDistance(word string, maxDist int) []Suggestion {
	if s == nil || s.lex == nil || word == "" || maxDist < 0 {
		return nil
	}
	w := strings.ToLower(word)

	type hit struct {
		word string
		dist int
		freq uint32
	}
	var hits []hit
	for _, cand := range s.lex.AllWords() {
		lenDiff := len(cand) - len(w)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > maxDist {
			continue
		}
		if d := DamerauLevenshtein(w, cand); d <= maxDist {
			hits = append(hits, hit{word: cand, dist: d, freq: s.lex.Frequency(cand)})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		if hits[i].freq != hits[j].freq {
			return hits[i].freq > hits[j].freq
		}
		return hits[i].word < hits[j].word
	})
	if len(hits) > s.params.MaxSuggestions {
		hits = hits[:s.params.MaxSuggestions]
	}

	out := make([]Suggestion, len(hits))
	for i, h := range hits {
		out[i] = Suggestion{Word: h.word, Score: 1.0 / float64(1+h.dist)}
	}
	return out
}
