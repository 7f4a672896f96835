package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Run shows ui full screen until the user quits with q or Esc, or ctx is
// done. A nil screen means the real terminal.
func Run(ctx context.Context, ui *GameUI, screen tcell.Screen) error {
	app := tview.NewApplication().EnableMouse(true)
	if screen != nil {
		// SetScreen stores the screen as is, and Run only initialises the
		// screens it creates itself.
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		app.SetScreen(screen)
	}
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		return event
	})

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			app.Stop()
		case <-stop:
		}
	}()

	return app.SetRoot(ui.Root(), true).Run()
}
