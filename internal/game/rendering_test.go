package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TicTacToe/internal/testutil"
)

func TestRenderBoard_Plain(t *testing.T) {
	e := newTestEngine(t)
	playAll(t, e, []int{4, 0})

	out := e.Board(false)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "    0 1 2", lines[0])
	assert.Equal(t, " 0  O · ·", lines[1])
	assert.Equal(t, " 1  · X ·", lines[2])
	assert.Equal(t, " 2  · · ·", lines[3])
	assert.Contains(t, out, "Next player: X")
	assert.NotContains(t, out, "\033[")
}

func TestRenderBoard_ColorHighlightsWin(t *testing.T) {
	e := newTestEngine(t)
	playAll(t, e, testutil.ColumnWinSequence)

	out := RenderBoard(e.Snapshot(), true)

	assert.Equal(t, 3, strings.Count(out, BgYellow))
	assert.Contains(t, out, ColorRed+"X")
	assert.Contains(t, out, ColorBlue+"O")
	assert.Contains(t, out, "Winner: X")
}

func TestRenderHistory(t *testing.T) {
	e := newTestEngine(t)
	playAll(t, e, []int{4, 0})
	require.NoError(t, e.JumpTo(1))
	e.ToggleOrder()

	out := RenderHistory(e.Snapshot())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "   2. Go to move #2 (0,0)", lines[0])
	assert.Equal(t, ">  1. Go to move #1 (1,1)", lines[1])
	assert.Equal(t, "   0. Go to game start", lines[2])
}
