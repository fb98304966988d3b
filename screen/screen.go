// Package screen is an interactive terminal front-end for a model.Game.
//
// Each cell is drawn two columns wide. A left click toggles the cell under the
// pointer, space pauses, n steps once while paused, r kills every cell, g
// reseeds the board and q or Esc quits.
package screen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const cellColumns = 2

var (
	aliveStyle = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	deadStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Action is what the run loop should do after an input event
type Action uint8

const (
	ActionNone Action = iota
	ActionRedraw
	ActionQuit
)

// View owns a tcell screen and the game it displays. Only the run loop
// goroutine touches the game.
type View struct {
	screen tcell.Screen
	game   *model.Game
	config utils.Config
	rng    *rand.Rand
	paused bool

	// pressed is set while the left button is held so drags do not retoggle
	pressed bool
}

// New wraps an initialised screen
func New(s tcell.Screen, g *model.Game, config utils.Config, rng *rand.Rand) *View {
	s.EnableMouse()
	s.HideCursor()
	return &View{screen: s, game: g, config: config, rng: rng}
}

// Paused reports whether ticks are currently ignored
func (v *View) Paused() bool {
	return v.paused
}

// CellAt converts screen coordinates into a grid position
func CellAt(x, y int) model.Position {
	return model.Pos(y, x/cellColumns)
}

// HandleEvent applies a single input event to the game
func (v *View) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		return ActionRedraw
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			v.pressed = false
			return ActionNone
		}
		if v.pressed {
			return ActionNone
		}
		v.pressed = true
		x, y := ev.Position()
		if err := v.game.ToggleCell(CellAt(x, y)); err != nil {
			// clicks outside the board are ignored
			return ActionNone
		}
		return ActionRedraw
	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return ActionNone
}

func (v *View) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'q':
		return ActionQuit
	case ' ':
		v.paused = !v.paused
	case 'n':
		if !v.paused {
			return ActionNone
		}
		v.game.Next()
	case 'r':
		v.game.Genocide()
	case 'g':
		v.game.ResetWithInterestingPatterns(v.config, v.rng)
	default:
		return ActionNone
	}
	return ActionRedraw
}

// Draw paints the board and a status line below it
func (v *View) Draw() {
	v.screen.Clear()
	dims := v.game.Dimensions()
	for r := range dims.Height {
		for c := range dims.Width {
			style := deadStyle
			if v.game.IsAlive(model.Pos(r, c)) {
				style = aliveStyle
			}
			for i := range cellColumns {
				v.screen.SetContent(c*cellColumns+i, r, ' ', nil, style)
			}
		}
	}

	status := "running"
	if v.paused {
		status = "paused"
	}
	line := statusLine(v.game.Generation(), v.game.Population(), status)
	for i, ch := range []rune(line) {
		v.screen.SetContent(i, dims.Height, ch, nil, textStyle)
	}
	v.screen.Show()
}

func statusLine(generation uint64, population int, status string) string {
	return fmt.Sprintf("gen %d | alive %d | %s | space pause, n step, r reset, g reseed, q quit",
		generation, population, status)
}

// Run draws the game and advances it every tick until ctx is done or the user
// quits. The screen is finalised before Run returns.
func (v *View) Run(ctx context.Context, tick time.Duration) error {
	if tick <= 0 {
		return errors.Errorf("[Run] tick must be positive, got %s", tick)
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer close(done)
		defer v.screen.Fini()

		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		v.Draw()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				switch v.HandleEvent(ev) {
				case ActionQuit:
					return nil
				case ActionRedraw:
					v.Draw()
				}
			case <-ticker.C:
				if v.paused {
					continue
				}
				v.game.Next()
				v.Draw()
			}
		}
	})

	return eg.Wait()
}
