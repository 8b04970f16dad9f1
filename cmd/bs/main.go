package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	boxscript "github.com/boxscript/boxscript"
)

const (
	appName     = "bs"
	historyFile = ".boxscript_history"
	promptMain  = "==> "
)

var banner = fmt.Sprintf("BoxScript %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", boxscript.Version)

const helpText = `
REPL commands:
  :mem     Dump the memory store
  :reset   Clear memory and output
  :help    Show this help
  :quit    Exit the REPL
`

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "eval":
		os.Exit(cmdEval(os.Args[2:]))
	case "grid":
		os.Exit(cmdGrid(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(boxscript.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`BoxScript %s (built %s)

Usage:
  %s eval <expr>      Evaluate one glyph expression against fresh memory.
  %s grid <file.bs>   Print the padded character grid of a source file.
  %s repl             Start the REPL (memory persists across lines).
  %s version          Print the compiled version.

`, boxscript.Version, boxscript.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// eval
// -----------------------------------------------------------------------------

func cmdEval(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s eval <expr>\n", appName)
		return 2
	}
	expr := strings.Join(args, " ")

	mol, err := boxscript.ParseMolecule[int64](expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}

	memory := map[int64]int64{}
	var out strings.Builder
	result, snapshot, err := mol.Run(memory, &out)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}

	fmt.Println(blue(fmt.Sprintf("%d", result)))
	if snapshot != "" {
		fmt.Println(green(snapshot))
	}
	return 0
}

// -----------------------------------------------------------------------------
// grid
// -----------------------------------------------------------------------------

func cmdGrid(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, red("Exactly 1 argument is required: `filename`"))
		return 2
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, red(fmt.Sprintf("No file exists at `%s`", args[0])))
		return 1
	}

	for _, row := range boxscript.Chars(string(src)) {
		for _, ch := range row {
			if ch == 0 {
				ch = ' ' // NUL padding renders as blank
			}
			fmt.Printf("%c", ch)
		}
		fmt.Println()
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	memory := map[int64]int64{}
	var out strings.Builder

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}

		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			case ":mem":
				dumpMemory(memory)
			case ":reset":
				memory = map[int64]int64{}
				out.Reset()
			default:
				fmt.Printf("unknown command. Type :help for commands.\n")
			}
			continue
		}

		mol, perr := boxscript.ParseMolecule[int64](code)
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(perr.Error()))
			continue
		}

		before := out.Len()
		result, snapshot, rerr := mol.Run(memory, &out)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, red(rerr.Error()))
			continue
		}

		fmt.Println(blue(fmt.Sprintf("%d", result)))
		if printed := snapshot[before:]; printed != "" {
			fmt.Println(green(printed))
		}
		ln.AppendHistory(code)
	}
}

func dumpMemory(memory map[int64]int64) {
	if len(memory) == 0 {
		fmt.Println("memory is empty")
		return
	}
	keys := make([]int64, 0, len(memory))
	for k := range memory {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Printf("%d -> %d\n", k, memory[k])
	}
}
