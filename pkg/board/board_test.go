package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsumego/ishi/pkg/board"
)

func newTestBoard() *board.Board {
	return board.New(board.NewZobristTable(0))
}

func TestColorParseAndString(t *testing.T) {
	tests := []struct {
		in  string
		out board.Color
	}{
		{"black", board.Black},
		{"B", board.Black},
		{"white", board.White},
		{"w", board.White},
	}
	for _, tt := range tests {
		c, err := board.ParseColor(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.out, c)
	}

	_, err := board.ParseColor("red")
	assert.Error(t, err)

	assert.Equal(t, "B", board.Black.String())
	assert.Equal(t, "W", board.White.String())
	assert.Equal(t, board.White, board.Black.Opposite())
}

func TestEmptyBoard(t *testing.T) {
	b := newTestBoard()

	assert.Equal(t, 19, b.Size())
	assert.Equal(t, uint16(0), b.Count())
	assert.Equal(t, board.ZobristHash(0), b.ZobristHash())

	v, ok := b.At(4, 4).V()
	require.True(t, ok)
	assert.Equal(t, board.Empty, v)

	assert.False(t, b.IsScoreable())
	black, white := b.GetScore()
	assert.Equal(t, 0, black)
	assert.Equal(t, 0, white)
}

// S1 - Single capture.
func TestSingleCapture(t *testing.T) {
	b := newTestBoard()

	b.Place(board.Black, 9, 9)
	b.Place(board.White, 8, 9)
	b.Place(board.White, 10, 9)
	b.Place(board.White, 9, 8)
	b.Place(board.White, 9, 10)

	v, ok := b.At(9, 9).V()
	require.True(t, ok)
	assert.Equal(t, board.Empty, v)
}

// S2 - Corner group capture.
func TestCornerGroupCapture(t *testing.T) {
	b := newTestBoard()

	b.Place(board.Black, 0, 1)
	b.Place(board.Black, 1, 0)
	b.Place(board.Black, 0, 0)
	b.Place(board.Black, 1, 1)

	b.Place(board.White, 2, 0)
	b.Place(board.White, 2, 1)
	b.Place(board.White, 0, 2)
	b.Place(board.White, 1, 2)

	for _, c := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		v, ok := b.At(c[0], c[1]).V()
		require.True(t, ok)
		assert.Equal(t, board.Empty, v, "expected (%d,%d) empty", c[0], c[1])
	}
}

// S3 - Suicide rejected in corner.
func TestSuicideRejectedInCorner(t *testing.T) {
	b := newTestBoard()

	b.Place(board.White, 0, 0)
	b.Place(board.Black, 1, 0)
	b.Place(board.Black, 0, 1)

	assert.False(t, b.IsValid(board.White, 0, 0))
	assert.True(t, b.IsValid(board.Black, 0, 0))
}

// S4 - Positional superko.
func TestPositionalSuperko(t *testing.T) {
	b := newTestBoard()

	b.Place(board.Black, 0, 0)
	b.Place(board.Black, 0, 2)
	b.Place(board.Black, 1, 1)
	b.Place(board.White, 1, 0)
	b.Place(board.White, 0, 1)

	assert.False(t, b.IsValid(board.Black, 0, 0))
}

// S5 - Area score.
func TestAreaScore(t *testing.T) {
	b := newTestBoard()

	b.Place(board.White, 1, 0)
	b.Place(board.White, 0, 1)
	b.Place(board.White, 1, 1)
	b.Place(board.Black, 2, 0)
	b.Place(board.Black, 2, 1)
	b.Place(board.Black, 0, 2)
	b.Place(board.Black, 1, 2)

	require.True(t, b.IsScoreable())

	black, white := b.GetScore()
	assert.Equal(t, 357, black)
	assert.Equal(t, 4, white)
}

// S6 - Standard ladder capture: exactly one Black move is a ladder capture.
func TestStandardLadderCapture(t *testing.T) {
	b := newTestBoard()

	b.Place(board.White, 3, 3)
	b.Place(board.Black, 2, 3)
	b.Place(board.Black, 3, 2)
	b.Place(board.Black, 4, 2)

	var ladderMoves [][2]int
	for y := 0; y < 19; y++ {
		for x := 0; x < 19; x++ {
			if !b.IsValid(board.Black, x, y) {
				continue
			}
			if b.IsLadderCapture(board.Black, x, y) {
				ladderMoves = append(ladderMoves, [2]int{x, y})
			}
		}
	}

	require.Len(t, ladderMoves, 1)
	assert.Equal(t, [2]int{3, 4}, ladderMoves[0])
}

// S7 - Ladder escape by diagonal friend: exactly one White move is an escape.
func TestLadderEscapeByDiagonalFriend(t *testing.T) {
	b := newTestBoard()

	b.Place(board.White, 3, 3)
	b.Place(board.White, 15, 15)
	b.Place(board.Black, 2, 3)
	b.Place(board.Black, 3, 2)
	b.Place(board.Black, 4, 2)
	b.Place(board.Black, 3, 4)

	var escapeMoves [][2]int
	for y := 0; y < 19; y++ {
		for x := 0; x < 19; x++ {
			if !b.IsValid(board.White, x, y) {
				continue
			}
			if b.IsLadderEscape(board.White, x, y) {
				escapeMoves = append(escapeMoves, [2]int{x, y})
			}
		}
	}

	require.Len(t, escapeMoves, 1)
	assert.Equal(t, [2]int{4, 3}, escapeMoves[0])
}

func TestCloneIsIndependent(t *testing.T) {
	b := newTestBoard()
	b.Place(board.Black, 9, 9)

	clone := b.Clone()
	assert.True(t, b.Equals(clone))

	clone.Place(board.White, 8, 9)
	assert.False(t, b.Equals(clone))

	v, ok := b.At(8, 9).V()
	require.True(t, ok)
	assert.Equal(t, board.Empty, v)
}

func TestInvariantGroupCycleSameColor(t *testing.T) {
	b := newTestBoard()
	b.Place(board.Black, 9, 9)
	b.Place(board.Black, 9, 10)
	b.Place(board.Black, 10, 9)

	// Every occupied vertex must belong to a well-formed same-color cycle.
	// Exercised indirectly via liberties/capture behaviour: filling every
	// one of the bent 3-stone group's seven liberties must clear the whole
	// group as a unit, confirming the cycle links all three members.
	b.Place(board.White, 8, 9)
	b.Place(board.White, 8, 10)
	b.Place(board.White, 9, 8)
	b.Place(board.White, 10, 8)
	b.Place(board.White, 11, 9)
	b.Place(board.White, 10, 10)
	b.Place(board.White, 9, 11)

	for _, c := range [][2]int{{9, 9}, {9, 10}, {10, 9}} {
		v, ok := b.At(c[0], c[1]).V()
		require.True(t, ok)
		assert.Equal(t, board.Empty, v)
	}
}
