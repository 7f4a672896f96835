package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to apply a sequence of accepted moves
func playMoves(t *testing.T, g *Game, cells ...int) {
	t.Helper()
	for n, i := range cells {
		require.True(t, g.Play(i), "move %d on cell %d rejected", n, i)
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := New()
	assert.Equal(t, 0, g.Step())
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, Board{}, g.Current())

	v := g.View()
	assert.Equal(t, Empty, v.Winner)
	assert.Equal(t, X, v.Next)
	assert.Equal(t, "Next player: X", v.Status)
	assert.Equal(t, []Move{{Step: 0, Label: "Go to game start"}}, v.Moves)
}

func TestTurnAlternation(t *testing.T) {
	g := New()
	cells := []int{4, 0, 8, 2, 1, 7}
	for k, i := range cells {
		require.True(t, g.Play(i))
		want := X
		if (k+1)%2 == 0 {
			want = O
		}
		assert.Equal(t, want, g.Current()[i], "move #%d", k+1)
	}
}

func TestHistoryDiffersByOneCell(t *testing.T) {
	g := New()
	playMoves(t, g, 4, 0, 8, 2, 1)

	h := g.History()
	require.Len(t, h, 6)
	assert.Equal(t, Board{}, h[0])
	for k := 1; k < len(h); k++ {
		changed := 0
		for i := range h[k] {
			if h[k][i] != h[k-1][i] {
				changed++
				assert.Equal(t, Empty, h[k-1][i])
				assert.NotEqual(t, Empty, h[k][i])
			}
		}
		assert.Equal(t, 1, changed, "step %d", k)
	}
}

func TestPlayOccupiedIsNoop(t *testing.T) {
	g := New()
	playMoves(t, g, 0)

	assert.False(t, g.Play(0))
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1, g.Step())
}

func TestPlayOffBoardIsNoop(t *testing.T) {
	g := New()
	for _, i := range []int{-1, 9, 42} {
		assert.False(t, g.Play(i))
	}
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.Step())
}

func TestTopRowWinBlocksFurtherMoves(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 1, 5, 2)

	b := g.Current()
	assert.Equal(t, Board{X, X, X, Empty, O, O}, b)
	assert.Equal(t, X, Winner(b))
	assert.Equal(t, "Winner: X", g.View().Status)

	assert.False(t, g.Play(6))
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 5, g.Step())
}

func TestJumpBackAndReplayTruncates(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 1, 5, 2)

	require.True(t, g.JumpTo(2))
	assert.Equal(t, Board{0: X, 4: O}, g.Current())
	assert.Equal(t, 6, g.Len(), "jumping keeps history")
	assert.Equal(t, "Next player: X", g.View().Status)

	require.True(t, g.Play(1))
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.Step())
	assert.Equal(t, Board{0: X, 1: X, 4: O}, g.Current())
	assert.Equal(t, "Next player: O", g.View().Status)
}

func TestTruncationLaw(t *testing.T) {
	for k := 0; k < 4; k++ {
		g := New()
		playMoves(t, g, 4, 0, 8, 2)
		require.True(t, g.JumpTo(k))

		// 6 is free at every step before the jump point.
		require.True(t, g.Play(6))
		assert.Equal(t, k+2, g.Len(), "played from step %d", k)
		assert.Equal(t, k+1, g.Step())
		assert.Equal(t, MarkForStep(k), g.Current()[6])
	}
}

func TestJumpToCurrentStepIsIdempotent(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4)
	before := g.History()

	assert.True(t, g.JumpTo(g.Step()))
	assert.Equal(t, 2, g.Step())
	assert.Equal(t, before, g.History())
}

func TestJumpOutOfRangeIsNoop(t *testing.T) {
	g := New()
	playMoves(t, g, 0)
	for _, s := range []int{-1, 2, 100} {
		assert.False(t, g.JumpTo(s))
	}
	assert.Equal(t, 1, g.Step())
	assert.Equal(t, 2, g.Len())
}

func TestWinIsNotTerminalForNavigation(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 1, 5, 2)

	assert.True(t, g.JumpTo(0))
	assert.Equal(t, "Next player: X", g.View().Status)
	assert.True(t, g.JumpTo(5))
	assert.Equal(t, "Winner: X", g.View().Status)
}

func TestViewMoves(t *testing.T) {
	g := New()
	playMoves(t, g, 0, 4, 1)

	v := g.View()
	assert.Equal(t, []Move{
		{Step: 0, Label: "Go to game start"},
		{Step: 1, Label: "Go to move #1"},
		{Step: 2, Label: "Go to move #2"},
		{Step: 3, Label: "Go to move #3"},
	}, v.Moves)
	assert.Equal(t, 3, v.Step)
	assert.Equal(t, O, v.Next)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	g := New()
	playMoves(t, g, 0)

	h := g.History()
	h[1][8] = O
	v := g.View()
	v.Board[8] = O
	v.Moves[0].Label = "changed"

	assert.Equal(t, Empty, g.Current()[8])
	assert.Equal(t, "Go to game start", g.View().Moves[0].Label)

	// Replaying from an earlier step must not rewrite boards handed out before.
	require.True(t, g.JumpTo(0))
	require.True(t, g.Play(8))
	assert.Equal(t, X, h[1][0])
	assert.Equal(t, Empty, h[1][1])
}
