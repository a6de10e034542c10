package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wricardo/latrones/game/engine"
)

var errQuit = errors.New("quit")

// Command is one REPL command. Anything that is not a command is read as a
// square and clicked.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Usage       string
	Handler     func(*REPL, []string) error
}

// REPL drives a single local game from typed lines.
type REPL struct {
	game     *engine.GameEngine
	out      io.Writer
	color    bool
	commands map[string]*Command
	ordered  []*Command
}

func NewREPL(game *engine.GameEngine, out io.Writer, color bool) *REPL {
	r := &REPL{
		game:     game,
		out:      out,
		color:    color,
		commands: make(map[string]*Command),
	}

	r.Register(&Command{Name: "board", Aliases: []string{"b"}, Description: "Show the board", Usage: "board", Handler: boardHandler})
	r.Register(&Command{Name: "moves", Aliases: []string{"m"}, Description: "List legal targets", Usage: "moves", Handler: movesHandler})
	r.Register(&Command{Name: "set", Aliases: []string{"s"}, Description: "Install the starting layout and start moving", Usage: "set", Handler: setHandler})
	r.Register(&Command{Name: "reset", Aliases: []string{"r"}, Description: "Clear the board and start placing", Usage: "reset", Handler: resetHandler})
	r.Register(&Command{Name: "rules", Description: "Show the active rules", Usage: "rules", Handler: rulesHandler})
	r.Register(&Command{Name: "help", Aliases: []string{"?"}, Description: "Show available commands", Usage: "help", Handler: helpHandler})
	r.Register(&Command{Name: "quit", Aliases: []string{"q", "exit", "x"}, Description: "Leave the game", Usage: "quit", Handler: func(*REPL, []string) error { return errQuit }})

	return r
}

func (r *REPL) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.commands[alias] = cmd
	}
	r.ordered = append(r.ordered, cmd)
}

// Execute runs one input line. It returns errQuit when the user leaves.
func (r *REPL) Execute(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	if cmd, ok := r.commands[fields[0]]; ok {
		return cmd.Handler(r, fields[1:])
	}

	index, err := engine.ParseSquare(fields[0])
	if err != nil {
		return fmt.Errorf("unknown command %q (type 'help')", fields[0])
	}
	r.click(index)
	return nil
}

// Prompt summarizes whose turn it is.
func (r *REPL) Prompt() string {
	status := fmt.Sprintf("%s %s", playerName(r.game.CurrentPlayer()), r.game.Phase())
	if r.game.IsGameOver() {
		status = "game over"
	}
	return paint(r.color, Yellow, "latrones ["+status+"] > ")
}

func (r *REPL) click(index int) {
	if !r.game.SelectSquare(index) {
		fmt.Fprintln(r.out, paint(r.color, Red, fmt.Sprintf("✗ %s refused", engine.SquareName(index))))
		return
	}
	fmt.Fprintln(r.out, describeAction(r.game.LastAction()))
	r.printBoard()
}

func (r *REPL) printBoard() {
	state := r.game.State()
	fmt.Fprintln(r.out, renderBoard(state, r.color))
	fmt.Fprintln(r.out, state.Message)
}

func describeAction(rec engine.ActionRecord) string {
	who := playerName(rec.Player)

	var text string
	switch rec.Kind {
	case engine.ActionPlace:
		text = fmt.Sprintf("%s places on %s", who, engine.SquareName(rec.To))
	case engine.ActionSelect:
		text = fmt.Sprintf("%s selects %s", who, engine.SquareName(rec.To))
	case engine.ActionDeselect:
		text = fmt.Sprintf("%s deselects %s", who, engine.SquareName(rec.From))
	case engine.ActionReselect:
		text = fmt.Sprintf("%s switches from %s to %s", who, engine.SquareName(rec.From), engine.SquareName(rec.To))
	case engine.ActionMove:
		text = fmt.Sprintf("%s moves %s-%s", who, engine.SquareName(rec.From), engine.SquareName(rec.To))
	default:
		text = string(rec.Kind)
	}

	if len(rec.Captured) > 0 {
		text += ", capturing " + squareList(rec.Captured)
	}
	if rec.PhaseChanged {
		text += "; movement phase begins"
	}
	return text
}

func squareList(squares []int) string {
	sorted := append([]int(nil), squares...)
	sort.Ints(sorted)
	names := make([]string, len(sorted))
	for i, sq := range sorted {
		names[i] = engine.SquareName(sq)
	}
	return strings.Join(names, ", ")
}

func boardHandler(r *REPL, _ []string) error {
	r.printBoard()
	return nil
}

func movesHandler(r *REPL, _ []string) error {
	moves := r.game.ValidMoves()
	switch {
	case r.game.IsGameOver():
		fmt.Fprintln(r.out, "No moves: game over")
	case r.game.Phase() == engine.Placement:
		fmt.Fprintf(r.out, "Place on any of %d empty squares\n", len(moves))
	case r.game.Selected().IsSet():
		sel, _ := r.game.Selected().Square()
		fmt.Fprintf(r.out, "Destinations from %s: %s\n", engine.SquareName(sel), squareList(moves))
	default:
		fmt.Fprintf(r.out, "Movable: %s\n", squareList(moves))
	}
	return nil
}

func setHandler(r *REPL, _ []string) error {
	r.game.SetStartingPieces()
	fmt.Fprintln(r.out, "Starting layout installed")
	r.printBoard()
	return nil
}

func resetHandler(r *REPL, _ []string) error {
	r.game.Reset()
	fmt.Fprintln(r.out, "Board cleared")
	r.printBoard()
	return nil
}

func rulesHandler(r *REPL, _ []string) error {
	rules := r.game.Rules()
	fmt.Fprintf(r.out, "%s - %s\n", rules.Name, rules.Description)
	fmt.Fprintf(r.out, "Pieces per player: %d\n", rules.PiecesPerPlayer)
	fmt.Fprintf(r.out, "Edge captures: %v\n", rules.EdgeCaptures)
	fmt.Fprintf(r.out, "Placement captures: %v\n", rules.PlacementCaptures)
	return nil
}

func helpHandler(r *REPL, _ []string) error {
	fmt.Fprintln(r.out, "Type a square (c3) or index (0-63) to click it.")
	for _, cmd := range r.ordered {
		name := cmd.Name
		if len(cmd.Aliases) > 0 {
			name += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		fmt.Fprintf(r.out, "  %-22s %s\n", name, cmd.Description)
	}
	return nil
}
