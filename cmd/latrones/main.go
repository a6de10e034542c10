// Command latrones is a terminal client for a local two-player game of
// Latrones. Both sides share the keyboard: type a square to click it, or
// "help" for the command list.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/wricardo/latrones/game/engine"
)

var (
	rulesFile   = flag.String("rules", "", "Rules preset JSON file (default: classic)")
	historyFile = flag.String("history", ".latrones_history", "Readline history file")
	noColor     = flag.Bool("no-color", false, "Disable colored output")
)

func loadRules(path string) (*engine.Rules, error) {
	if path == "" {
		return engine.DefaultRules(), nil
	}
	return engine.LoadRules(path)
}

func main() {
	flag.Parse()

	rules, err := loadRules(*rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load rules: %v\n", err)
		os.Exit(1)
	}

	game, err := engine.NewEngine(rules)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	color := !*noColor && term.IsTerminal(int(os.Stdout.Fd()))

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "latrones > ",
		HistoryFile:     *historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, paint(color, Red, err.Error()))
		os.Exit(1)
	}
	defer rl.Close()

	repl := NewREPL(game, rl.Stdout(), color)

	fmt.Fprintln(rl.Stdout(), paint(color, Cyan, "Latrones"))
	fmt.Fprintf(rl.Stdout(), "Rules: %s. Type 'help' for commands, 'set' to skip placement.\n\n", rules.Name)
	repl.printBoard()

	for {
		rl.SetPrompt(repl.Prompt())

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		if err := repl.Execute(line); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			fmt.Fprintln(rl.Stderr(), paint(color, Red, err.Error()))
		}
	}
}
