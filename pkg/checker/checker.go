/*
Package checker is the single entry point for spell-checking callers.

A Checker owns a Lexicon and a Tokenizer, holds the global options, and
runs the suggestion engine against the lexicon on demand. Misspelling
reports preserve text order and original token spelling; positions are
measured against the input before normalization.
*/
package checker

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spellward/spellward/pkg/lexicon"
	"github.com/spellward/spellward/pkg/suggest"
	"github.com/spellward/spellward/pkg/tokenizer"
)

// Options holds every knob the checker and its components honor. External
// configuration loaders construct one and hand it to New.
type Options struct {
	DictionaryPath string
	CaseSensitive  bool
	IgnoreNumbers  bool
	IgnoreURLs     bool
	IgnoreEmails   bool
	MinWordLength  int
	MaxSuggestions int
	Suggest        suggest.Params
	CacheEnabled   bool
	CacheSize      int
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		DictionaryPath: "dictionaries/en_US.dict",
		IgnoreNumbers:  true,
		IgnoreURLs:     true,
		IgnoreEmails:   true,
		MinWordLength:  3,
		MaxSuggestions: 10,
		Suggest:        suggest.DefaultParams(),
		CacheEnabled:   true,
		CacheSize:      1000,
	}
}

// Misspelling is an unrecognized token with its byte offset in the text.
type Misspelling struct {
	Word   string
	Offset int
}

// LineMisspelling is an unrecognized token located by line and column.
type LineMisspelling struct {
	Word   string
	Line   int
	Column int
}

// Checker coordinates the tokenizer, lexicon and suggestion engine.
type Checker struct {
	opts  Options
	lex   *lexicon.Lexicon
	tok   *tokenizer.Tokenizer
	cache *suggest.Cache
}

// New returns a Checker with an empty lexicon configured by opts.
func New(opts Options) *Checker {
	c := &Checker{lex: lexicon.New()}
	c.applyOptions(opts)
	return c
}

func (c *Checker) applyOptions(opts Options) {
	opts.Suggest.MaxSuggestions = opts.MaxSuggestions
	c.opts = opts
	c.tok = &tokenizer.Tokenizer{
		CaseSensitive: opts.CaseSensitive,
		IgnoreURLs:    opts.IgnoreURLs,
		IgnoreEmails:  opts.IgnoreEmails,
		IgnoreNumbers: opts.IgnoreNumbers,
		MinWordLength: opts.MinWordLength,
	}
	if opts.CacheEnabled {
		c.cache = suggest.NewCache(opts.CacheSize)
	} else {
		c.cache = nil
	}
}

// Options returns the current configuration.
func (c *Checker) Options() Options {
	return c.opts
}

// SetOptions replaces the configuration, rebuilding the tokenizer and
// dropping any cached suggestions.
func (c *Checker) SetOptions(opts Options) {
	c.applyOptions(opts)
}

// IsCorrect reports whether word is spelled correctly. Ignored tokens and
// empty input count as correct. In case-insensitive mode a miss is retried
// with the lowercase form.
func (c *Checker) IsCorrect(word string) bool {
	if word == "" {
		return true
	}
	if c.tok.ShouldIgnore(word) {
		return true
	}
	w := c.tok.Normalize(word)
	if w == "" {
		return true
	}
	// Stored words are lowercase and Lexicon.Contains folds case, so in
	// case-sensitive mode a token with any uppercase letter cannot match.
	if c.opts.CaseSensitive && w != strings.ToLower(w) {
		return false
	}
	if c.lex.Contains(w) {
		return true
	}
	if !c.opts.CaseSensitive && c.lex.Contains(strings.ToLower(w)) {
		return true
	}
	return false
}

// Suggestions returns up to MaxSuggestions ranked corrections for word.
func (c *Checker) Suggestions(word string) []string {
	w := c.tok.Normalize(word)
	if w == "" {
		return nil
	}

	var ranked []suggest.Suggestion
	if c.cache != nil {
		if cached, ok := c.cache.Get(w); ok {
			return suggestionWords(cached, c.opts.MaxSuggestions)
		}
	}
	ranked = suggest.New(c.lex, c.opts.Suggest).Suggest(w)
	if c.cache != nil {
		c.cache.Put(w, ranked)
	}
	return suggestionWords(ranked, c.opts.MaxSuggestions)
}

func suggestionWords(sugs []suggest.Suggestion, max int) []string {
	if len(sugs) > max {
		sugs = sugs[:max]
	}
	words := make([]string, len(sugs))
	for i, s := range sugs {
		words[i] = s.Word
	}
	return words
}

// CheckText returns every misspelled token in text with its byte offset,
// in text order.
func (c *Checker) CheckText(text string) []Misspelling {
	var misses []Misspelling
	for _, tok := range c.tok.Extract(text) {
		if !c.IsCorrect(tok.Word) {
			misses = append(misses, Misspelling{Word: tok.Word, Offset: tok.Offset})
		}
	}
	return misses
}

// CheckFile reads path and returns every misspelled token located by line
// and column, in text order. A read failure yields an empty list and the
// error.
func (c *Checker) CheckFile(path string) ([]LineMisspelling, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("checker: reading %s: %v", path, err)
		return nil, err
	}
	var misses []LineMisspelling
	for _, tok := range c.tok.ExtractWithLines(string(data)) {
		if !c.IsCorrect(tok.Word) {
			misses = append(misses, LineMisspelling{Word: tok.Word, Line: tok.Line, Column: tok.Column})
		}
	}
	return misses, nil
}

// AddWord inserts word into the lexicon with frequency 1.
func (c *Checker) AddWord(word string) {
	c.lex.Add(word, 1)
	c.purgeCache()
}

// RemoveWord deletes word from the lexicon, reporting whether it was
// present.
func (c *Checker) RemoveWord(word string) bool {
	removed := c.lex.Remove(word)
	if removed {
		c.purgeCache()
	}
	return removed
}

// LoadDictionary replaces the lexicon contents from a text dictionary.
func (c *Checker) LoadDictionary(path string) error {
	err := c.lex.LoadFromFile(path)
	c.purgeCache()
	return err
}

// SaveDictionary writes the lexicon to a text dictionary.
func (c *Checker) SaveDictionary(path string) error {
	return c.lex.SaveToFile(path)
}

// LoadBinaryDictionary replaces the lexicon contents from a msgpack
// snapshot.
func (c *Checker) LoadBinaryDictionary(path string) error {
	err := c.lex.LoadBinary(path)
	c.purgeCache()
	return err
}

// SaveBinaryDictionary writes the lexicon to a msgpack snapshot.
func (c *Checker) SaveBinaryDictionary(path string) error {
	return c.lex.SaveBinary(path)
}

// Stats returns the stored word count and an estimate of the lexicon's
// resident memory in bytes.
func (c *Checker) Stats() (words int, memory uint64) {
	return c.lex.Size(), c.lex.ApproxMemory()
}

func (c *Checker) purgeCache() {
	if c.cache != nil {
		c.cache.Purge()
	}
}
