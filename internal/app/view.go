package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	styleText   = tcell.StyleDefault
	stylePanel  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// draw renders the activity list on the left and the panel on the right.
func (app *Application) draw() {
	screen := app.source.Screen()
	screen.Clear()

	w, h := screen.Size()
	rect := app.panel.Rect

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			screen.SetContent(x, y, ' ', nil, stylePanel)
		}
	}
	drawText(screen, rect.Min.X+1, 0, rect.Max.X, stylePanel, "off-screen surface")

	lines := app.Lines()
	rows := h - 1
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for i, line := range lines {
		drawText(screen, 0, i, rect.Min.X, styleText, line)
	}

	status := fmt.Sprintf(" %s | clicks %d | hover %s | Ctrl+Q quits ",
		app.router.Platform(), app.router.ClickCount(), app.router.HoverTime().Truncate(1e8))
	for x := 0; x < w; x++ {
		screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	drawText(screen, 0, h-1, w, styleStatus, status)

	screen.Show()
}

func drawText(screen tcell.Screen, x, y, limit int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= limit {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
