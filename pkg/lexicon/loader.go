package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

// LoadFromFile clears the lexicon and loads entries from a text dictionary
// at path. Each non-empty line is either "word" (frequency 1) or
// "word:frequency"; whitespace inside a line is stripped before splitting
// on the first colon. Lines with a malformed frequency are skipped with a
// warning. The returned error is non-nil only when the file cannot be
// opened or read.
func (l *Lexicon) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		log.Errorf("lexicon: opening dictionary %s: %v", path, err)
		return err
	}
	defer file.Close()

	l.Clear()

	sc := bufio.NewScanner(file)
	lineNo := 0
	loaded := 0
	for sc.Scan() {
		lineNo++
		line := stripSpace(sc.Text())
		if line == "" {
			continue
		}
		word, freqStr, hasFreq := strings.Cut(line, ":")
		freq := uint32(1)
		if hasFreq {
			n, err := strconv.ParseUint(freqStr, 10, 32)
			if err != nil {
				log.Warnf("lexicon: %s:%d: malformed frequency %q, line skipped", path, lineNo, freqStr)
				continue
			}
			freq = uint32(n)
		}
		l.Add(word, freq)
		loaded++
	}
	if err := sc.Err(); err != nil {
		log.Errorf("lexicon: reading dictionary %s: %v", path, err)
		return err
	}
	log.Debugf("lexicon: loaded %d entries from %s", loaded, path)
	return nil
}

// SaveToFile writes every entry as "word:frequency\n". Entry order follows
// the frequency map's iteration order, stable only within a single run.
func (l *Lexicon) SaveToFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		log.Errorf("lexicon: creating dictionary %s: %v", path, err)
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for word, freq := range l.freqs {
		if _, err := fmt.Fprintf(w, "%s:%d\n", word, freq); err != nil {
			return err
		}
	}
	return w.Flush()
}

// stripSpace removes every whitespace rune from s, covering spaces, tabs
// and stray carriage returns from CRLF dictionaries.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
