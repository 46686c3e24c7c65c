// Package cli implements the interactive shell for checking words and
// mutating the lexicon without restarting the process.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spellward/spellward/internal/logger"
	"github.com/spellward/spellward/internal/utils"
	"github.com/spellward/spellward/pkg/checker"
)

var log = logger.New("repl")

// InputHandler processes user input from stdin: bare words are checked,
// and a handful of commands mutate or inspect the lexicon. A failed
// command never exits the loop; it re-prompts.
type InputHandler struct {
	chk *checker.Checker
	in  io.Reader
	out io.Writer
}

// NewInputHandler returns a handler reading stdin and writing stdout.
func NewInputHandler(chk *checker.Checker) *InputHandler {
	return &InputHandler{chk: chk, in: os.Stdin, out: os.Stdout}
}

// Start begins the interface loop. It prompts, reads a line, and hands
// the trimmed input to handleInput. The loop ends on EOF, a read error,
// or the quit command.
func (h *InputHandler) Start() error {
	fmt.Fprintln(h.out, "spellward interactive mode")
	fmt.Fprintln(h.out, "type a word to check it, or 'help' for commands")

	reader := bufio.NewReader(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !h.handleInput(line) {
			return nil
		}
	}
}

// handleInput processes one line and reports whether the loop continues.
func (h *InputHandler) handleInput(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return false
	case "help":
		h.printHelp()
	case "stats":
		words, memory := h.chk.Stats()
		fmt.Fprintf(h.out, "words: %s, memory: %s KB\n",
			utils.FormatWithCommas(words), utils.FormatWithCommas(int(memory/1024)))
	case "add":
		if len(fields) < 2 {
			log.Error("usage: add <word>")
			return true
		}
		h.chk.AddWord(fields[1])
		fmt.Fprintf(h.out, "added %q\n", strings.ToLower(fields[1]))
	case "remove":
		if len(fields) < 2 {
			log.Error("usage: remove <word>")
			return true
		}
		if h.chk.RemoveWord(fields[1]) {
			fmt.Fprintf(h.out, "removed %q\n", strings.ToLower(fields[1]))
		} else {
			fmt.Fprintf(h.out, "%q not in dictionary\n", strings.ToLower(fields[1]))
		}
	default:
		h.checkWord(fields[0])
	}
	return true
}

func (h *InputHandler) checkWord(word string) {
	if h.chk.IsCorrect(word) {
		fmt.Fprintf(h.out, "%q is spelled correctly.\n", word)
		return
	}
	suggestions := h.chk.Suggestions(word)
	if len(suggestions) == 0 {
		fmt.Fprintf(h.out, "%q is misspelled; no suggestions.\n", word)
		return
	}
	fmt.Fprintf(h.out, "%q is misspelled. Suggestions: %s\n", word, strings.Join(suggestions, ", "))
}

func (h *InputHandler) printHelp() {
	fmt.Fprintln(h.out, "commands:")
	fmt.Fprintln(h.out, "  <word>          check spelling of a word")
	fmt.Fprintln(h.out, "  add <word>      add a word to the dictionary")
	fmt.Fprintln(h.out, "  remove <word>   remove a word from the dictionary")
	fmt.Fprintln(h.out, "  stats           show dictionary statistics")
	fmt.Fprintln(h.out, "  help            show this help")
	fmt.Fprintln(h.out, "  quit / exit     leave interactive mode")
}
