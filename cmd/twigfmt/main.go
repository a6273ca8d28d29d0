package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kissumisha/ultimate-twig/config"
	"github.com/kissumisha/ultimate-twig/pkg/twig/complete"
	"github.com/kissumisha/ultimate-twig/pkg/twig/formatter"
	"github.com/kissumisha/ultimate-twig/pkg/twig/repl"
)

// Version is set at compile time via -ldflags
var Version = "0.4.1"

var (
	// Display flags
	helpFlag        = flag.Bool("h", false, "Show help message")
	helpLongFlag    = flag.Bool("help", false, "Show help message")
	versionFlag     = flag.Bool("V", false, "Show version information")
	versionLongFlag = flag.Bool("version", false, "Show version information")

	// Formatting flags
	writeFlag  = flag.Bool("w", false, "Write result to source file instead of stdout")
	diffFlag   = flag.Bool("d", false, "Display diffs instead of rewriting files")
	listFlag   = flag.Bool("l", false, "List files whose formatting differs")
	checkFlag  = flag.Bool("check", false, "Report unbalanced blocks and tags without formatting")
	indentFlag = flag.Int("indent", 0, "Indent width in spaces (overrides config)")
	tabsFlag   = flag.Bool("tabs", false, "Indent with tabs (overrides config)")
	blanksFlag = flag.Bool("keep-blanks", true, "Preserve blank lines")
)

func main() {
	// Check for subcommands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "describe":
			describeCommand(os.Args[2:])
			return
		case "repl":
			repl.Start(os.Stdin, os.Stdout, Version)
			return
		case "watch":
			watchCommand(os.Args[2:])
			return
		}
	}

	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		os.Exit(0)
	}

	if *versionFlag || *versionLongFlag {
		fmt.Printf("twigfmt version %s\n", Version)
		os.Exit(0)
	}

	files := flag.Args()

	if *checkFlag {
		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --check requires at least one file")
			os.Exit(2)
		}
		os.Exit(checkFiles(files))
	}

	if len(files) == 0 {
		// Filter stdin to stdout
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		opts := optionsFor("")
		fmt.Print(formatter.Format(string(source), opts))
		return
	}

	exitCode := 0
	for _, filename := range files {
		if err := formatFile(filename, *writeFlag, *diffFlag, *listFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", filename, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

// optionsFor resolves formatter options for a file: config file first,
// then explicit CLI flags on top. An empty filename (stdin) uses the
// working directory's config.
func optionsFor(filename string) formatter.Options {
	lookup := filename
	if lookup == "" {
		lookup = "."
	}

	cfg, err := config.LoadForFile(lookup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.Defaults()
	}
	opts := cfg.Options()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "indent":
			opts.IndentSize = *indentFlag
			opts.UseTabs = false
		case "tabs":
			opts.UseTabs = *tabsFlag
		case "keep-blanks":
			opts.PreserveBlankLines = *blanksFlag
		}
	})
	return opts
}

// formatFile formats a single template file
func formatFile(filename string, write, diff, list bool) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	source := string(content)
	formatted := formatter.Format(source, optionsFor(filename))

	// Ensure file ends with newline
	if formatted != "" && !strings.HasSuffix(formatted, "\n") {
		formatted += "\n"
	}

	changed := formatted != source

	if list {
		if changed {
			fmt.Println(filename)
		}
		return nil
	}

	if diff {
		if changed {
			showDiff(filename, source, formatted)
		}
		return nil
	}

	if write {
		if changed {
			if err := os.WriteFile(filename, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}
		}
		return nil
	}

	fmt.Print(formatted)
	return nil
}

// checkFiles reports unbalanced template blocks and markup tags in one
// or more files without writing output
func checkFiles(files []string) int {
	hasFindings := false

	for _, filename := range files {
		content, err := os.ReadFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", filename, err)
			return 2 // File error
		}

		stats := formatter.Check(string(content), optionsFor(filename))
		if stats.OpenBlocks > 0 {
			fmt.Fprintf(os.Stderr, "%s: %d template block(s) left open\n", filename, stats.OpenBlocks)
			hasFindings = true
		}
		if stats.OpenTags > 0 {
			fmt.Fprintf(os.Stderr, "%s: %d markup tag(s) left open\n", filename, stats.OpenTags)
			hasFindings = true
		}
		if stats.ExcessClosers > 0 {
			fmt.Fprintf(os.Stderr, "%s: %d closer(s) with nothing to close\n", filename, stats.ExcessClosers)
			hasFindings = true
		}
	}

	if hasFindings {
		return 1
	}
	return 0
}

// showDiff displays a simple diff between original and formatted content
func showDiff(filename, original, formatted string) {
	fmt.Printf("diff %s\n", filename)

	origLines := strings.Split(original, "\n")
	fmtLines := strings.Split(formatted, "\n")

	// Simple line-by-line diff (not a full unified diff, but useful)
	maxLines := max(len(fmtLines), len(origLines))

	for i := 0; i < maxLines; i++ {
		origLine := ""
		fmtLine := ""
		if i < len(origLines) {
			origLine = origLines[i]
		}
		if i < len(fmtLines) {
			fmtLine = fmtLines[i]
		}

		if origLine != fmtLine {
			if origLine != "" {
				fmt.Printf("-%d: %s\n", i+1, origLine)
			}
			if fmtLine != "" {
				fmt.Printf("+%d: %s\n", i+1, fmtLine)
			}
		}
	}
}

// describeCommand implements the 'twigfmt describe <topic>' subcommand
func describeCommand(args []string) {
	jsonOutput := false
	var topic string

	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		} else if !strings.HasPrefix(arg, "-") {
			topic = arg
		}
	}

	if topic == "" {
		fmt.Fprintf(os.Stderr, `Usage: twigfmt describe [--json] <topic>

Topics:
  %s

Examples:
  twigfmt describe tags
  twigfmt describe filters
  twigfmt describe --json css
`, strings.Join(complete.VocabularyNames(), "\n  "))
		os.Exit(1)
	}

	list, ok := complete.Vocabulary(topic)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown topic %q (try: %s)\n",
			topic, strings.Join(complete.VocabularyNames(), ", "))
		os.Exit(1)
	}

	if jsonOutput {
		data, err := json.MarshalIndent(map[string][]string{topic: list}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	} else {
		for _, entry := range list {
			fmt.Println(entry)
		}
	}
}

func printHelp() {
	fmt.Printf(`twigfmt - Twig template formatter version %s

Usage:
  twigfmt [options] <file>...
  twigfmt [options] < input.twig
  twigfmt describe <topic>
  twigfmt watch <dir>
  twigfmt repl

Commands:
  describe <topic>      Dump a completion vocabulary (tags, filters, ...)
  watch <dir>           Watch a directory and reformat templates on change
  repl                  Interactive formatting session

Display Options:
  -h, --help            Show this help message
  -V, --version         Show version information

Formatting Options:
  -w                    Write result to source file instead of stdout
  -d                    Display diffs instead of rewriting files
  -l                    List files whose formatting differs from twigfmt's
  --check               Report unbalanced blocks/tags without formatting
  --indent N            Indent width in spaces (default 4, or .twigfmt.yml)
  --tabs                Indent with tabs
  --keep-blanks=false   Drop blank lines from the output

Configuration:
  Settings are read from .twigfmt.yml next to the file (or any parent
  directory); command-line flags take precedence.

Examples:
  twigfmt page.html.twig            Print formatted output to stdout
  twigfmt -w page.html.twig         Format file in place
  twigfmt -l templates/*.twig       List files that need formatting
  twigfmt -d page.html.twig         Show what would change
  twigfmt --check page.html.twig    Check block/tag balance
  twigfmt --indent 2 page.twig      Two-space indentation
  twigfmt describe tags             List the known Twig tags
  twigfmt watch templates           Reformat templates as they change
`, Version)
}
