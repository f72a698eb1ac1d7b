package engine

import (
	"context"
	"testing"

	"enclosure/game"
	"enclosure/searcher"

	"github.com/stretchr/testify/require"
)

func TestApplyMoves(t *testing.T) {
	t.Run("applying a move returns a new board", func(t *testing.T) {
		b := NewBoard(5)

		next, err := ApplyHumanMove(b, 2, 2)

		require.NoError(t, err)
		state, _ := CellStateFor(next, 2, 2)
		require.Equal(t, game.OwnedByUser, state)
		state, _ = CellStateFor(b, 2, 2)
		require.Equal(t, game.Empty, state, "Input board should not change")
	})

	t.Run("applying the computer move resolves captures", func(t *testing.T) {
		b, err := game.ParseBoard(
			".....",
			"..c..",
			".cu..",
			"..c..",
			".....",
		)
		require.NoError(t, err)

		next, err := ApplyAIMove(b, 3, 2)

		require.NoError(t, err)
		state, _ := CellStateFor(next, 2, 2)
		require.Equal(t, game.CapturedFromUser, state)
	})

	t.Run("occupied cell is an invalid move", func(t *testing.T) {
		b, err := ApplyHumanMove(NewBoard(3), 0, 0)
		require.NoError(t, err)

		_, err = ApplyAIMove(b, 0, 0)

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})
}

func TestComputeAIMove(t *testing.T) {
	t.Run("search decision on an open board", func(t *testing.T) {
		b, err := ApplyHumanMove(NewBoard(4), 1, 1)
		require.NoError(t, err)

		decision, err := ComputeAIMove(context.Background(), b, searcher.WithDepth(2))

		require.NoError(t, err)
		require.Equal(t, searcher.SourceSearch, decision.Source)
		state, _ := CellStateFor(b, decision.Move.X, decision.Move.Y)
		require.Equal(t, game.Empty, state)
	})

	t.Run("full board is exhausted", func(t *testing.T) {
		b, err := game.ParseBoard("uc", "cu")
		require.NoError(t, err)

		_, err = ComputeAIMove(context.Background(), b)

		require.ErrorIs(t, err, searcher.ErrSearchExhausted)
	})
}

func TestCellStateFor(t *testing.T) {
	t.Run("out of range read fails", func(t *testing.T) {
		_, err := CellStateFor(NewBoard(3), 3, 3)

		require.ErrorIs(t, err, game.ErrOutOfBounds)
	})
}
