package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/delve/internal/world"
)

const frameDelay = 33 * time.Millisecond

// Viewer animates dungeon generation in the terminal, advancing the
// generator a bounded number of steps per frame so the carve order is
// visible. The final grid is identical to a run-to-completion call; the
// per-frame budget is pure scheduling.
type Viewer struct {
	screen        *Screen
	stepsPerFrame int
}

// NewViewer creates a viewer drawing to the given screen.
func NewViewer(screen *Screen, stepsPerFrame int) *Viewer {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	return &Viewer{screen: screen, stepsPerFrame: stepsPerFrame}
}

// Run animates gen until the user quits with Esc or 'q'. Pressing 'r'
// discards the current generator and animates a fresh one from regen.
func (v *Viewer) Run(ctx context.Context, gen *world.Generator, regen func() (*world.Generator, error)) error {
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					return nil
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R'):
					next, err := regen()
					if err != nil {
						return err
					}
					gen = next
					v.screen.Clear()
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}

		case <-ticker.C:
			if gen.IsGenerating() {
				gen.Step(v.stepsPerFrame)
			}
			v.draw(gen)
		}
	}
}

// draw renders the current grid state and a status line.
func (v *Viewer) draw(gen *world.Generator) {
	for y := 0; y < gen.Height(); y++ {
		for x := 0; x < gen.Width(); x++ {
			kind := gen.CellAt(x, y)
			v.screen.SetContent(x, y, kind.Rune(), styleFor(kind))
		}
	}

	status := fmt.Sprintf("seed %d", gen.Seed())
	if gen.IsGenerating() {
		status += "  [generating]"
	} else {
		status += fmt.Sprintf("  rooms %d  doors %d", len(gen.Rooms()), gen.Doors())
	}
	status += "  (r: regenerate, q: quit)"
	v.drawStatus(status, gen.Height())

	v.screen.Show()
}

// drawStatus writes a message on the line below the grid, padding to the
// terminal width to clear stale text.
func (v *Viewer) drawStatus(msg string, y int) {
	width, _ := v.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		v.screen.SetContent(x, y, ch, style)
		x++
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', style)
	}
}

// styleFor returns the display style for a cell kind.
func styleFor(kind world.CellKind) tcell.Style {
	switch kind {
	case world.KindFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.KindDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
}
