/*
Package main implements the spellward command line interface.

Spellward checks words, files, or an interactive stream against a
reference dictionary and suggests corrections for unrecognized words.
Dictionaries are plain text "word:frequency" files; configuration lives
in an optional TOML file whose settings individual flags override.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spellward/spellward/internal/cli"
	"github.com/spellward/spellward/internal/utils"
	"github.com/spellward/spellward/pkg/checker"
	"github.com/spellward/spellward/pkg/config"
)

const (
	Version = "0.1.0"
	AppName = "spellward"
)

// reportedSuggestions caps how many corrections a file report prints per
// misspelling.
const reportedSuggestions = 3

// sigHandler exits normally on interrupt so half-written output is not
// followed by a stack trace.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// cliFlags carries every parsed flag value; pairs of short and long names
// share one field.
type cliFlags struct {
	dictionary    string
	word          string
	addWord       string
	removeWord    string
	configFile    string
	suggestions   int
	interactive   bool
	caseSensitive bool
	ignoreNumbers bool
	ignoreURLs    bool
	showStats     bool
	showVersion   bool
	verbose       bool
}

func main() {
	sigHandler()

	var f cliFlags
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printUsage(fs) }

	fs.StringVar(&f.dictionary, "d", "", "Dictionary file path")
	fs.StringVar(&f.dictionary, "dictionary", "", "Dictionary file path")
	fs.StringVar(&f.word, "w", "", "Check a single word")
	fs.StringVar(&f.word, "word", "", "Check a single word")
	fs.StringVar(&f.addWord, "a", "", "Add a word to the dictionary")
	fs.StringVar(&f.addWord, "add", "", "Add a word to the dictionary")
	fs.StringVar(&f.removeWord, "r", "", "Remove a word from the dictionary")
	fs.StringVar(&f.removeWord, "remove", "", "Remove a word from the dictionary")
	fs.StringVar(&f.configFile, "config", "", "Path to a TOML config file")
	fs.IntVar(&f.suggestions, "s", 0, "Maximum number of suggestions")
	fs.IntVar(&f.suggestions, "suggestions", 0, "Maximum number of suggestions")
	fs.BoolVar(&f.interactive, "i", false, "Interactive mode")
	fs.BoolVar(&f.interactive, "interactive", false, "Interactive mode")
	fs.BoolVar(&f.caseSensitive, "c", false, "Case-sensitive checking")
	fs.BoolVar(&f.caseSensitive, "case-sensitive", false, "Case-sensitive checking")
	fs.BoolVar(&f.ignoreNumbers, "ignore-numbers", true, "Ignore numeric tokens")
	fs.BoolVar(&f.ignoreURLs, "ignore-urls", true, "Ignore URL tokens")
	fs.BoolVar(&f.showStats, "stats", false, "Print dictionary statistics")
	fs.BoolVar(&f.showVersion, "version", false, "Show current version")
	fs.BoolVar(&f.verbose, "v", false, "Toggle verbose mode")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if f.showVersion {
		printVersion()
		os.Exit(0)
	}

	if f.verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	opts := loadOptions(fs, &f)
	chk := checker.New(opts)

	if opts.DictionaryPath != "" {
		if !utils.FileExists(opts.DictionaryPath) {
			fmt.Fprintf(os.Stderr, "spellward: dictionary %s not found, starting empty\n", opts.DictionaryPath)
		} else if err := chk.LoadDictionary(opts.DictionaryPath); err != nil {
			fmt.Fprintf(os.Stderr, "spellward: cannot load dictionary %s: %v\n", opts.DictionaryPath, err)
		}
	}

	mutated := false
	if f.addWord != "" {
		chk.AddWord(f.addWord)
		fmt.Printf("Added %q to dictionary.\n", strings.ToLower(f.addWord))
		mutated = true
	}
	if f.removeWord != "" {
		if chk.RemoveWord(f.removeWord) {
			fmt.Printf("Removed %q from dictionary.\n", strings.ToLower(f.removeWord))
			mutated = true
		} else {
			fmt.Fprintf(os.Stderr, "spellward: %q not in dictionary\n", strings.ToLower(f.removeWord))
		}
	}
	if mutated && opts.DictionaryPath != "" {
		if err := utils.EnsureParentDir(opts.DictionaryPath); err == nil {
			err = chk.SaveDictionary(opts.DictionaryPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "spellward: cannot save dictionary: %v\n", err)
			}
		}
	}

	if f.showStats {
		words, memory := chk.Stats()
		fmt.Printf("Dictionary: %s words, %s KB\n",
			utils.FormatWithCommas(words), utils.FormatWithCommas(int(memory/1024)))
	}

	ran := mutated || f.showStats

	if f.word != "" {
		checkWord(chk, f.word)
		ran = true
	}

	if f.interactive {
		handler := cli.NewInputHandler(chk)
		if err := handler.Start(); err != nil {
			log.Fatalf("interactive mode: %v", err)
		}
		return
	}

	if fs.NArg() > 0 {
		checkFile(chk, fs.Arg(0))
		return
	}

	if !ran {
		fs.Usage()
	}
}

// loadOptions resolves the effective options: config file (or defaults),
// then explicit flag overrides.
func loadOptions(fs *flag.FlagSet, f *cliFlags) checker.Options {
	var cfg *config.Config
	if f.configFile != "" {
		loaded, err := config.InitConfig(f.configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spellward: cannot read config %s: %v\n", f.configFile, err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	opts := cfg.CheckerOptions()
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d", "dictionary":
			opts.DictionaryPath = f.dictionary
		case "c", "case-sensitive":
			opts.CaseSensitive = f.caseSensitive
		case "ignore-numbers":
			opts.IgnoreNumbers = f.ignoreNumbers
		case "ignore-urls":
			opts.IgnoreURLs = f.ignoreURLs
		case "s", "suggestions":
			opts.MaxSuggestions = f.suggestions
		}
	})
	return opts
}

func checkWord(chk *checker.Checker, word string) {
	if chk.IsCorrect(word) {
		fmt.Printf("%q is spelled correctly.\n", word)
		return
	}
	suggestions := chk.Suggestions(word)
	fmt.Printf("Word: %q - Suggestions: %s\n", word, strings.Join(suggestions, ", "))
}

func checkFile(chk *checker.Checker, path string) {
	misses, err := chk.CheckFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spellward: cannot check %s: %v\n", path, err)
		return
	}
	if len(misses) == 0 {
		fmt.Println("No spelling errors found!")
		return
	}
	for _, m := range misses {
		suggestions := chk.Suggestions(m.Word)
		if len(suggestions) > reportedSuggestions {
			suggestions = suggestions[:reportedSuggestions]
		}
		fmt.Printf("Line %4d, Column %3d: %q -> %s\n",
			m.Line, m.Column, m.Word, strings.Join(suggestions, ", "))
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("[spellward] dictionary-backed spell checking")
	logger.Print("", "version", Version)
	logger.Print("use --help to see available options")
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [FILE]\n\n", AppName)
	fmt.Fprintf(os.Stderr, "Check FILE for spelling errors, or use the flags below.\n\n")
	fmt.Fprintf(os.Stderr, "flags:\n")
	fs.PrintDefaults()
}
