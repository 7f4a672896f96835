package domain

import "fmt"

// Game holds a tic-tac-toe match together with every board it has passed
// through. The zero value is not usable; call New.
//
// Game is not safe for concurrent use.
type Game struct {
	history []Board
	step    int
}

// Move is one entry of the rendered move list.
type Move struct {
	Step  int
	Label string
}

// Snapshot is the derived, read-only view of a game at its current step.
type Snapshot struct {
	Board  Board
	Winner Cell
	Next   Cell
	Step   int
	Status string
	Moves  []Move
}

// New returns a game at the empty board with X to move.
func New() *Game {
	return &Game{history: []Board{{}}}
}

// Step returns the index of the displayed board.
func (g *Game) Step() int { return g.step }

// Len returns the number of boards in the history, the empty one included.
func (g *Game) Len() int { return len(g.history) }

// Current returns the displayed board.
func (g *Game) Current() Board { return g.history[g.step] }

// History returns a copy of every recorded board.
func (g *Game) History() []Board {
	return append([]Board(nil), g.history...)
}

// Play puts the mark of the player to move on cell i of the displayed board.
// It reports false and leaves the game untouched when i is off the board, the
// cell is taken or the displayed board already has a winner. Boards recorded
// after the displayed one are discarded before the new board is appended.
func (g *Game) Play(i int) bool {
	if i < 0 || i >= len(Board{}) {
		return false
	}
	cur := g.history[g.step]
	if cur[i] != Empty || Winner(cur) != Empty {
		return false
	}
	next := cur
	next[i] = MarkForStep(g.step)

	g.history = append(g.history[:g.step+1:g.step+1], next)
	g.step = len(g.history) - 1
	return true
}

// JumpTo displays the board recorded at step. Out of range steps are ignored.
func (g *Game) JumpTo(step int) bool {
	if step < 0 || step >= len(g.history) {
		return false
	}
	g.step = step
	return true
}

// View derives the snapshot renderers draw from.
func (g *Game) View() Snapshot {
	board := g.Current()
	s := Snapshot{
		Board:  board,
		Winner: Winner(board),
		Next:   MarkForStep(g.step),
		Step:   g.step,
		Moves:  make([]Move, len(g.history)),
	}
	if s.Winner != Empty {
		s.Status = "Winner: " + s.Winner.String()
	} else {
		s.Status = "Next player: " + s.Next.String()
	}
	for i := range g.history {
		s.Moves[i] = Move{Step: i, Label: MoveLabel(i)}
	}
	return s
}

// MoveLabel returns the caption of the history entry for step.
func MoveLabel(step int) string {
	if step == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d", step)
}
