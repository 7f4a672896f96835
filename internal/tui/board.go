// Package tui renders the game in a terminal with tview. Cells and history
// entries are buttons and list items, so the mouse drives the whole game.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jaminalder/timetravel-tic-tac-toe/internal/domain"
)

const (
	cellWidth  = 7
	cellHeight = 3
)

// Theme holds the label colours of the two marks.
type Theme struct {
	XColor tcell.Color
	OColor tcell.Color
}

// ThemeFromPalette builds a theme from 256-colour palette indices.
func ThemeFromPalette(x, o int) Theme {
	return Theme{XColor: tcell.PaletteColor(x), OColor: tcell.PaletteColor(o)}
}

// BoardView is a 3x3 grid of buttons. It keeps no game state: every Render
// relabels all nine cells from the board it is given.
type BoardView struct {
	grid    *tview.Grid
	cells   [9]*tview.Button
	theme   Theme
	onClick func(int)
}

// NewBoardView creates an empty board view.
func NewBoardView(theme Theme) *BoardView {
	v := &BoardView{theme: theme}
	v.grid = tview.NewGrid().
		SetRows(cellHeight, cellHeight, cellHeight).
		SetColumns(cellWidth, cellWidth, cellWidth).
		SetGap(0, 1)
	v.grid.SetBorder(true).SetTitle(" Board ")
	v.grid.SetMouseCapture(clickOnDoubleClick)
	for i := range v.cells {
		i := i
		btn := tview.NewButton("")
		btn.SetSelectedFunc(func() {
			if v.onClick != nil {
				v.onClick(i)
			}
		})
		v.cells[i] = btn
		v.grid.AddItem(btn, i/3, i%3, 1, 1, 0, 0, i == 0)
	}
	return v
}

// clickOnDoubleClick turns a quick second click into a plain one. Buttons
// ignore double clicks, so two fast moves on different cells would lose the
// second.
func clickOnDoubleClick(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action == tview.MouseLeftDoubleClick {
		action = tview.MouseLeftClick
	}
	return action, event
}

// Primitive returns the tview component to place in a layout.
func (v *BoardView) Primitive() tview.Primitive {
	return v.grid
}

// Cell returns the button drawing cell i.
func (v *BoardView) Cell(i int) *tview.Button {
	return v.cells[i]
}

// Render shows b and routes cell activations to onCellClick.
func (v *BoardView) Render(b domain.Board, onCellClick func(int)) {
	v.onClick = onCellClick
	for i, c := range b {
		btn := v.cells[i]
		btn.SetLabel(c.String())
		switch c {
		case domain.X:
			btn.SetLabelColor(v.theme.XColor)
		case domain.O:
			btn.SetLabelColor(v.theme.OColor)
		default:
			btn.SetLabelColor(tview.Styles.PrimaryTextColor)
		}
	}
}
