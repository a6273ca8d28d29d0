// Package repl provides an interactive formatting session: paste
// template lines, and once the buffered input is balanced (or on a
// blank line) the formatted block is printed back. Tab completion
// draws on the static Twig vocabularies.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/kissumisha/ultimate-twig/pkg/twig/complete"
	"github.com/kissumisha/ultimate-twig/pkg/twig/formatter"
)

const PROMPT = ">> "
const CONTINUATION_PROMPT = ".. "

// Start runs the interactive session with line editing, history, and
// tab completion until EOF or an exit command.
func Start(in io.Reader, out io.Writer, version string) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeLine)

	historyFile := filepath.Join(os.TempDir(), ".twigfmt_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	opts := formatter.DefaultOptions()

	fmt.Fprintf(out, "twigfmt v%s interactive\n", version)
	fmt.Fprintln(out, "Paste template lines; a blank line formats the buffer")
	fmt.Fprintln(out, "Type ':help' for commands, 'exit' or Ctrl+D to quit")
	fmt.Fprintln(out, "")

	var inputBuffer strings.Builder

	for {
		currentPrompt := PROMPT
		if inputBuffer.Len() > 0 {
			currentPrompt = CONTINUATION_PROMPT
		}
		input, err := line.Prompt(currentPrompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				if inputBuffer.Len() > 0 {
					fmt.Fprintln(out, "^C (cleared)")
				} else {
					fmt.Fprintln(out, "^C")
				}
				inputBuffer.Reset()
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(out, "Error reading input: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if inputBuffer.Len() == 0 && (trimmed == "exit" || trimmed == "quit") {
			fmt.Fprintln(out, "Goodbye!")
			return
		}

		if inputBuffer.Len() == 0 && strings.HasPrefix(trimmed, ":") {
			opts = handleCommand(trimmed, opts, out)
			continue
		}

		if trimmed == "" {
			if inputBuffer.Len() == 0 {
				continue
			}
			// Blank line commits an unbalanced buffer as-is.
			emit(inputBuffer.String(), opts, out)
			inputBuffer.Reset()
			continue
		}

		if inputBuffer.Len() > 0 {
			inputBuffer.WriteString("\n")
		}
		inputBuffer.WriteString(input)
		line.AppendHistory(input)

		full := inputBuffer.String()
		if needsMoreInput(full, opts) {
			continue
		}

		emit(full, opts, out)
		inputBuffer.Reset()
	}
}

// emit formats the buffered template and prints the result.
func emit(source string, opts formatter.Options, out io.Writer) {
	formatted := formatter.Format(source, opts)
	if formatted != "" {
		io.WriteString(out, formatted)
		if !strings.HasSuffix(formatted, "\n") {
			io.WriteString(out, "\n")
		}
	}
}

// needsMoreInput reports whether the buffer still has open template
// blocks or markup tags, so multi-line blocks can be entered naturally.
func needsMoreInput(source string, opts formatter.Options) bool {
	stats := formatter.Check(source, opts)
	return stats.OpenBlocks > 0 || stats.OpenTags > 0
}

// handleCommand handles ':' meta-commands and returns updated options.
func handleCommand(cmd string, opts formatter.Options, out io.Writer) formatter.Options {
	fields := strings.Fields(cmd)

	switch fields[0] {
	case ":help", ":h", ":?":
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  :help, :h, :?   Show this help")
		fmt.Fprintln(out, "  :indent N       Set indent width (spaces per level)")
		fmt.Fprintln(out, "  :tabs           Toggle tab indentation")
		fmt.Fprintln(out, "  :blanks         Toggle blank-line preservation")
		fmt.Fprintln(out, "  :opts           Show current settings")
		fmt.Fprintln(out, "  exit, quit      Exit")
		return opts

	case ":indent":
		if len(fields) < 2 {
			fmt.Fprintln(out, "Usage: :indent N")
			return opts
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			fmt.Fprintf(out, "Invalid indent width: %s\n", fields[1])
			return opts
		}
		opts.IndentSize = n
		opts.UseTabs = false
		fmt.Fprintf(out, "Indent width set to %d\n", n)
		return opts

	case ":tabs":
		opts.UseTabs = !opts.UseTabs
		if opts.UseTabs {
			fmt.Fprintln(out, "Tab indentation ON")
		} else {
			fmt.Fprintln(out, "Tab indentation OFF")
		}
		return opts

	case ":blanks":
		opts.PreserveBlankLines = !opts.PreserveBlankLines
		if opts.PreserveBlankLines {
			fmt.Fprintln(out, "Blank lines preserved")
		} else {
			fmt.Fprintln(out, "Blank lines dropped")
		}
		return opts

	case ":opts":
		unit := fmt.Sprintf("%d spaces", opts.IndentSize)
		if opts.UseTabs {
			unit = "tabs"
		}
		fmt.Fprintf(out, "indent: %s, blank lines: %v\n", unit, opts.PreserveBlankLines)
		return opts

	default:
		fmt.Fprintf(out, "Unknown command: %s (type :help for commands)\n", fields[0])
		return opts
	}
}

// completeLine offers vocabulary completions for the word under the
// cursor, based on the lexical context of the line.
func completeLine(line string) []string {
	ctx := complete.ContextAt(line, len(line))
	if ctx == complete.ContextNone {
		return nil
	}

	start := len(line)
	for start > 0 {
		c := line[start-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '_' || c == '-' {
			start--
			continue
		}
		break
	}
	prefix := line[start:]

	words := complete.Suggest(prefix, ctx)
	if len(words) == 0 {
		return nil
	}
	completions := make([]string, len(words))
	for i, w := range words {
		completions[i] = line[:start] + w
	}
	return completions
}
