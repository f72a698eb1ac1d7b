package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	t.Run("all cells start empty", func(t *testing.T) {
		b := NewBoard(8)

		require.Equal(t, 8, b.Size())
		require.Len(t, b.Empties(), 64, "Every cell should be empty")
		require.False(t, b.Full())
	})

	t.Run("panics on non-positive size", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(0) })
	})
}

func TestBoardPlace(t *testing.T) {
	t.Run("placing on an empty cell sets the owner", func(t *testing.T) {
		b := NewBoard(5)

		require.NoError(t, b.Place(1, 3, User))
		require.NoError(t, b.Place(3, 1, Computer))

		state, err := b.Cell(1, 3)
		require.NoError(t, err)
		require.Equal(t, OwnedByUser, state)
		state, err = b.Cell(3, 1)
		require.NoError(t, err)
		require.Equal(t, OwnedByComputer, state)
	})

	t.Run("placing on an occupied cell fails", func(t *testing.T) {
		b := NewBoard(5)
		require.NoError(t, b.Place(2, 2, User))

		err := b.Place(2, 2, Computer)

		require.ErrorIs(t, err, ErrInvalidMove)
		state, _ := b.Cell(2, 2)
		require.Equal(t, OwnedByUser, state, "Occupied cell should not change")
	})

	t.Run("placing on a captured cell fails", func(t *testing.T) {
		b := mustParse(t,
			"...",
			".C.",
			"...",
		)

		require.ErrorIs(t, b.Place(1, 1, User), ErrInvalidMove)
	})

	t.Run("placing out of range fails", func(t *testing.T) {
		b := NewBoard(5)

		require.ErrorIs(t, b.Place(-1, 0, User), ErrInvalidMove)
		require.ErrorIs(t, b.Place(0, 5, User), ErrInvalidMove)
		require.Len(t, b.Empties(), 25, "Board should not change")
	})

	t.Run("placing for nobody fails", func(t *testing.T) {
		b := NewBoard(3)

		require.ErrorIs(t, b.Place(0, 0, NoPlayer), ErrInvalidMove)
	})
}

func TestBoardCell(t *testing.T) {
	t.Run("out of range coordinates are rejected", func(t *testing.T) {
		b := NewBoard(4)

		_, err := b.Cell(4, 0)
		require.ErrorIs(t, err, ErrOutOfBounds)
		_, err = b.Cell(0, -1)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestBoardSnapshot(t *testing.T) {
	t.Run("snapshot is independent of the original", func(t *testing.T) {
		b := NewBoard(4)
		require.NoError(t, b.Place(0, 0, User))

		snap := b.Snapshot()
		require.True(t, snap.Equal(b))
		require.Equal(t, b.Hash(), snap.Hash())

		require.NoError(t, snap.Place(1, 1, Computer))

		state, _ := b.Cell(1, 1)
		require.Equal(t, Empty, state, "Original should not see snapshot placements")
		require.NotEqual(t, b.Hash(), snap.Hash())
	})
}

func TestBoardEmpties(t *testing.T) {
	t.Run("empties are listed in row-major order", func(t *testing.T) {
		b := mustParse(t,
			"u.",
			".c",
		)

		require.Equal(t, []Cell{{X: 1, Y: 0}, {X: 0, Y: 1}}, b.Empties())
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("string form parses back to the same board", func(t *testing.T) {
		rows := []string{
			".uU",
			"cC.",
			"...",
		}
		b := mustParse(t, rows...)

		require.Equal(t, ".uU\ncC.\n...", b.String())
		require.Equal(t, 1, b.Count(CapturedFromUser))
		require.Equal(t, 1, b.Count(CapturedFromComputer))
	})

	t.Run("ragged rows are rejected", func(t *testing.T) {
		_, err := ParseBoard("..", ".")
		require.Error(t, err)
	})

	t.Run("unknown runes are rejected", func(t *testing.T) {
		_, err := ParseBoard("x.", "..")
		require.Error(t, err)
	})

	t.Run("no rows is rejected", func(t *testing.T) {
		b, err := ParseBoard()
		require.Error(t, err)
		require.Nil(t, b)
	})
}

func TestScore(t *testing.T) {
	t.Run("captures are credited to the capturing player", func(t *testing.T) {
		b := mustParse(t,
			"CC.",
			"U..",
			"...",
		)

		score := b.Score()
		require.Equal(t, Score{User: 2, Computer: 1}, score)
		require.Equal(t, User, score.Winner())
		require.Equal(t, -1, score.Margin())
	})

	t.Run("equal captures are a draw", func(t *testing.T) {
		require.Equal(t, NoPlayer, Score{User: 3, Computer: 3}.Winner())
	})
}
