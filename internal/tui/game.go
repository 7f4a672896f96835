package tui

import (
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

// GameUI owns a game and redraws the board, status line and move list after
// every event. It runs on the tview event loop only.
type GameUI struct {
	game   *domain.Game
	board  *BoardView
	status *tview.TextView
	moves  *tview.List
	root   *tview.Flex
	log    zerolog.Logger
}

// NewGameUI creates the game screen at the empty board.
func NewGameUI(theme Theme, log zerolog.Logger) *GameUI {
	g := &GameUI{
		game:   domain.New(),
		board:  NewBoardView(theme),
		status: tview.NewTextView(),
		moves:  tview.NewList(),
		log:    log.With().Str("component", "tui").Logger(),
	}

	g.status.SetBorder(true)
	g.status.SetBorderPadding(0, 0, 1, 1)
	g.status.SetTitle(" Status ")
	g.status.SetTitleAlign(tview.AlignLeft)

	g.moves.SetBorder(true)
	g.moves.SetTitle(" Moves ")
	g.moves.ShowSecondaryText(false)
	g.moves.SetHighlightFullLine(true)

	info := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(g.status, 3, 0, false).
		AddItem(g.moves, 0, 1, false)

	boardW := 3*cellWidth + 2 + 2
	boardH := 3*cellHeight + 2
	boardCol := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(g.board.Primitive(), boardH, 0, true).
		AddItem(nil, 0, 1, false)

	g.root = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(boardCol, boardW, 0, true).
		AddItem(info, 0, 1, false)
	g.root.SetBorder(true).SetTitle(" tic-tac-toe ")

	g.render()
	return g
}

// Root returns the top-level primitive.
func (g *GameUI) Root() tview.Primitive {
	return g.root
}

// Board returns the board view.
func (g *GameUI) Board() *BoardView {
	return g.board
}

// Moves returns the move list.
func (g *GameUI) Moves() *tview.List {
	return g.moves
}

// Status returns the current status line.
func (g *GameUI) Status() string {
	return g.status.GetText(true)
}

func (g *GameUI) click(i int) {
	if !g.game.Play(i) {
		g.log.Debug().Int("cell", i).Msg("click ignored")
		return
	}
	g.log.Debug().Int("cell", i).Int("step", g.game.Step()).Msg("played")
	g.render()
}

func (g *GameUI) jumpTo(step int) {
	if !g.game.JumpTo(step) {
		return
	}
	g.log.Debug().Int("step", step).Msg("jumped")
	g.render()
}

func (g *GameUI) render() {
	v := g.game.View()
	g.board.Render(v.Board, g.click)
	g.status.SetText(v.Status)

	g.moves.Clear()
	for _, m := range v.Moves {
		step := m.Step
		g.moves.AddItem(m.Label, "", 0, func() { g.jumpTo(step) })
	}
	g.moves.SetCurrentItem(v.Step)
}
