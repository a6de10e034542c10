package main

import (
	"fmt"
	"strings"

	"github.com/wricardo/latrones/game/engine"
)

// Terminal color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

func paint(enabled bool, code, text string) string {
	if !enabled {
		return text
	}
	return code + text + Reset
}

func playerName(p engine.Player) string {
	if p == engine.Dark {
		return "Dark"
	}
	return "Light"
}

// renderBoard draws the board with rank 8 on top. The selected piece is shown
// in lowercase and its destinations as '*'.
func renderBoard(state *engine.GameState, color bool) string {
	selected := -1
	if state.SelectedSquare != nil {
		selected = *state.SelectedSquare
	}
	targets := make(map[int]bool)
	if selected >= 0 {
		for _, sq := range state.ValidMoves {
			targets[sq] = true
		}
	}

	files := paint(color, Cyan, "  a b c d e f g h")

	var sb strings.Builder
	sb.WriteString(files + "\n")
	for row := engine.BoardSide - 1; row >= 0; row-- {
		rank := paint(color, Cyan, fmt.Sprintf("%d", row+1))
		sb.WriteString(rank + " ")
		for col := 0; col < engine.BoardSide; col++ {
			idx := row*engine.BoardSide + col
			sb.WriteString(cell(engine.Square(state.Board[idx]), idx == selected, targets[idx], color))
			sb.WriteByte(' ')
		}
		sb.WriteString(rank + "\n")
	}
	sb.WriteString(files)
	return sb.String()
}

func cell(sq engine.Square, selected, target, color bool) string {
	ch := string(engine.SquareChar(sq))
	if selected {
		ch = strings.ToLower(ch)
	}
	switch {
	case target:
		return paint(color, Green, "*")
	case sq == engine.LightPiece:
		return paint(color, Blue, ch)
	case sq == engine.DarkPiece:
		return paint(color, Red, ch)
	default:
		return ch
	}
}
