package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_IsWin(t *testing.T) {
	// every one of the 8 lines, filled with a single mark on an otherwise empty board
	for i, line := range lines {
		for _, side := range []Side{SideX, SideO} {
			var board Board
			for _, cell := range line {
				board[cell.Row][cell.Col] = side.Cell()
			}

			assert.True(t, board.IsWin(side), "line %d for %s", i, side)
			assert.False(t, board.IsWin(side.Opponent()), "line %d for %s", i, side.Opponent())
		}
	}

	t.Run("Two in a row is not a win", func(t *testing.T) {
		board := Board{
			{X, X, Empty},
			{O, O, Empty},
			{Empty, Empty, Empty},
		}

		assert.False(t, board.IsWin(SideX))
		assert.False(t, board.IsWin(SideO))
	})
}

func TestBoard_IsDraw(t *testing.T) {
	t.Run("Empty board is not a draw", func(t *testing.T) {
		var board Board
		assert.False(t, board.IsDraw())
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := Board{
			{X, O, X},
			{X, O, O},
			{O, X, X},
		}
		assert.True(t, board.IsDraw())
	})

	t.Run("Full board with a winner still reports full", func(t *testing.T) {
		// Given: a full board where X owns the top row
		board := Board{
			{X, X, X},
			{O, O, X},
			{O, X, O},
		}

		// Then: IsDraw only looks at empty cells
		assert.True(t, board.IsDraw())
		assert.True(t, board.IsWin(SideX))
	})
}

func TestBoard_PlaceAndClear(t *testing.T) {
	t.Run("Place on an empty cell", func(t *testing.T) {
		var board Board

		ok := board.Place(1, 2, SideO)

		require.True(t, ok)
		assert.Equal(t, O, board.At(1, 2))
		assert.False(t, board.IsEmpty(1, 2))
	})

	t.Run("Place on an occupied cell leaves the board untouched", func(t *testing.T) {
		board := Board{{X}}

		ok := board.Place(0, 0, SideO)

		assert.False(t, ok)
		assert.Equal(t, X, board.At(0, 0))
	})

	t.Run("Place out of range is rejected", func(t *testing.T) {
		var board Board

		assert.False(t, board.Place(3, 0, SideX))
		assert.False(t, board.Place(0, -1, SideX))
		assert.Equal(t, Board{}, board)
	})

	t.Run("Clear restores an empty cell", func(t *testing.T) {
		var board Board
		require.True(t, board.Place(2, 1, SideX))

		board.Clear(2, 1)
		board.Clear(5, 5)

		assert.Equal(t, Board{}, board)
	})
}

func TestBoard_IsEmpty(t *testing.T) {
	board := Board{{X, Empty, O}}

	assert.False(t, board.IsEmpty(0, 0))
	assert.True(t, board.IsEmpty(0, 1))
	assert.False(t, board.IsEmpty(0, 2))
	assert.False(t, board.IsEmpty(-1, 0))
	assert.False(t, board.IsEmpty(0, 3))
}

func TestBoard_EmptyCells(t *testing.T) {
	board := Board{
		{X, Empty, O},
		{Empty, X, Empty},
		{O, O, X},
	}

	assert.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}}, board.EmptyCells())
}

func TestBoard_Rendering(t *testing.T) {
	board := Board{
		{X, O, X},
		{O, O, Empty},
		{X, Empty, Empty},
	}

	assert.Equal(t, "X|O|X\n-----\nO|O| \n-----\nX| | \n-----\n", board.String())
	assert.Equal(t, "XOXOO.X..", board.Code())
	assert.Equal(t, [][]string{{"X", "O", "X"}, {"O", "O", ""}, {"X", "", ""}}, board.Marks())
	assert.Equal(t, 3, board.Count(SideX))
	assert.Equal(t, 3, board.Count(SideO))
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses marks case-insensitively", func(t *testing.T) {
		board, err := ParseBoard([][]string{
			{"X", "o", ""},
			{" ", "O", ""},
			{"", "", "x"},
		})

		require.NoError(t, err)
		assert.Equal(t, Board{
			{X, O, Empty},
			{Empty, O, Empty},
			{Empty, Empty, X},
		}, board)
	})

	t.Run("Rejects wrong row count", func(t *testing.T) {
		_, err := ParseBoard([][]string{{"", "", ""}})
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects short row", func(t *testing.T) {
		_, err := ParseBoard([][]string{{"", ""}, {"", "", ""}, {"", "", ""}})
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects unknown mark", func(t *testing.T) {
		_, err := ParseBoard([][]string{{"Z", "", ""}, {"", "", ""}, {"", "", ""}})
		assert.ErrorIs(t, err, ErrInvalidBoard)
	})
}
