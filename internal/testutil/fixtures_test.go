package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TicTacToe/internal/game/core"
	"github.com/mitchelldurbincs/TicTacToe/internal/game/rules"
)

func TestBoardFromString(t *testing.T) {
	b := BoardFromString("XO./.X./..X")

	assert.Equal(t, core.X, b[0])
	assert.Equal(t, core.O, b[1])
	assert.Equal(t, core.Empty, b[2])
	assert.Equal(t, core.X, b[8])
	assert.Equal(t, b, BoardFromString(" XO.|.X.|..X \n"))
}

func TestBoardFromString_Malformed(t *testing.T) {
	AssertPanic(t, func() { BoardFromString("XO") }, "too short")
	AssertPanic(t, func() { BoardFromString("XO./.Z./..X") }, "unknown mark")
}

func playSequence(t *testing.T, cells []int) core.Board {
	t.Helper()
	b := core.NewBoard()
	for i, idx := range cells {
		mark := core.X
		if i%2 == 1 {
			mark = core.O
		}
		_, won := rules.Evaluate(b)
		require.False(t, won, "game already won before move %d", i)
		require.True(t, b[idx].IsEmpty(), "cell %d reused at move %d", idx, i)
		b = b.With(idx, mark)
	}
	return b
}

func TestDrawSequence_IsLegalDraw(t *testing.T) {
	b := playSequence(t, DrawSequence)

	assert.Equal(t, BoardFromString("XXO/OOX/XOX"), b)
	_, won := rules.Evaluate(b)
	assert.False(t, won)
	assert.True(t, rules.IsFull(b))
}

func TestColumnWinSequence_WinsLeftColumn(t *testing.T) {
	b := playSequence(t, ColumnWinSequence)

	line, won := rules.Evaluate(b)
	require.True(t, won)
	assert.Equal(t, core.Line{0, 3, 6}, line)
	assert.Equal(t, core.X, b[0])
}
