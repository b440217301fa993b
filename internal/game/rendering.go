package game

import (
	"strings"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
)

// ANSI color codes for console rendering
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorBlue   = "\033[34m"
	ColorGray   = "\033[90m"
	ColorBold   = "\033[1m"
	BgYellow    = "\033[43m"
	emptySymbol = "·"
)

var markColors = map[core.Cell]string{
	core.X: ColorRed,
	core.O: ColorBlue,
}

// Board returns the console rendering of the viewed step
func (e *Engine) Board(useColor bool) string {
	return RenderBoard(e.Snapshot(), useColor)
}

// RenderBoard draws the snapshot's board with column and row headers. With
// useColor, marks are colored and the winning line is highlighted.
func RenderBoard(s Snapshot, useColor bool) string {
	var sb strings.Builder
	sb.Grow((core.Size*16 + 8) * (core.Size + 2))

	sb.WriteString("   ")
	for col := 0; col < core.Size; col++ {
		sb.WriteString(core.IntToStringFixedWidth(col, 2))
	}
	sb.WriteString("\n")

	for row := 0; row < core.Size; row++ {
		sb.WriteString(core.IntToStringFixedWidth(row, 2))
		sb.WriteString(" ")
		for col := 0; col < core.Size; col++ {
			idx := s.Board.Idx(col, row)
			writeCell(&sb, s.Board[idx], useColor, s.IsWinningCell(idx))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.Status.String())
	sb.WriteString("\n")

	return sb.String()
}

func writeCell(sb *strings.Builder, c core.Cell, useColor, winning bool) {
	sb.WriteString(" ")
	if !useColor {
		if c.IsEmpty() {
			sb.WriteString(emptySymbol)
		} else {
			sb.WriteString(c.String())
		}
		return
	}

	if winning {
		sb.WriteString(BgYellow)
	}
	if c.IsEmpty() {
		sb.WriteString(ColorGray)
		sb.WriteString(emptySymbol)
	} else {
		sb.WriteString(ColorBold)
		sb.WriteString(markColors[c])
		sb.WriteString(c.String())
	}
	sb.WriteString(ColorReset)
}

// RenderHistory lists the snapshot's history entries one per line in display
// order. The viewed entry is prefixed with '>'.
func RenderHistory(s Snapshot) string {
	var sb strings.Builder
	for _, entry := range s.HistoryEntries {
		if entry.IsCurrent {
			sb.WriteString("> ")
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(core.IntToStringFixedWidth(entry.Step, 2))
		sb.WriteString(". ")
		sb.WriteString(entry.Label())
		sb.WriteString("\n")
	}
	return sb.String()
}
