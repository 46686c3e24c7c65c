package lexicon

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshot is the on-disk shape of a binary dictionary: the canonical
// word-to-frequency map. The derived indexes are rebuilt on load.
type snapshot struct {
	Words map[string]uint32 `msgpack:"words"`
}

// SaveBinary writes a msgpack snapshot of the lexicon to path. Binary
// snapshots load faster than text dictionaries and round-trip exactly.
func (l *Lexicon) SaveBinary(path string) error {
	file, err := os.Create(path)
	if err != nil {
		log.Errorf("lexicon: creating snapshot %s: %v", path, err)
		return err
	}
	defer file.Close()

	if err := msgpack.NewEncoder(file).Encode(snapshot{Words: l.freqs}); err != nil {
		log.Errorf("lexicon: encoding snapshot %s: %v", path, err)
		return err
	}
	return nil
}

// LoadBinary clears the lexicon and restores it from a msgpack snapshot
// written by SaveBinary.
func (l *Lexicon) LoadBinary(path string) error {
	file, err := os.Open(path)
	if err != nil {
		log.Errorf("lexicon: opening snapshot %s: %v", path, err)
		return err
	}
	defer file.Close()

	var snap snapshot
	if err := msgpack.NewDecoder(file).Decode(&snap); err != nil {
		log.Errorf("lexicon: decoding snapshot %s: %v", path, err)
		return err
	}

	l.Clear()
	for word, freq := range snap.Words {
		l.Add(word, freq)
	}
	log.Debugf("lexicon: restored %d entries from %s", l.Size(), path)
	return nil
}
