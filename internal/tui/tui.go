// Package tui runs the sandbox in a terminal using tcell. Each cell is drawn
// two columns wide so the grid looks roughly square.
package tui

import (
	"context"
	"strings"
	"time"

	"quadlife/internal/audio"
	"quadlife/internal/config"
	"quadlife/internal/core"
	"quadlife/pkg/sandbox"

	"github.com/gdamore/tcell/v2"
)

// CellWidth is the number of terminal columns per cell.
const CellWidth = 2

// Action is a decoded key command.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionStep
	ActionBack
	ActionPlay
	ActionReseed
	ActionClear
)

var (
	styleDead     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleAlive    = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleHover    = tcell.StyleDefault.Background(tcell.ColorYellow)
	styleNeighbor = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// TUI owns a screen and drives a sandbox from its events.
type TUI struct {
	screen  tcell.Screen
	cfg     *config.Config
	sb      *sandbox.Sandbox
	audio   *audio.Player
	ticker  *core.FixedStep
	playing bool
}

// New wires a TUI to an initialized screen. player may be nil.
func New(screen tcell.Screen, cfg *config.Config, sb *sandbox.Sandbox, player *audio.Player) *TUI {
	return &TUI{
		screen: screen,
		cfg:    cfg,
		sb:     sb,
		audio:  player,
		ticker: core.NewFixedStep(cfg.TPS),
	}
}

// Playing reports whether automatic stepping is on.
func (t *TUI) Playing() bool { return t.playing }

// WorldAt maps a terminal cell to the world point at the centre of the
// sandbox cell drawn there.
func (t *TUI) WorldAt(x, y int) (float64, float64) {
	cell := t.sb.Geometry().CellSize
	return float64(x/CellWidth)*cell + cell/2, float64(y)*cell + cell/2
}

func (t *TUI) onGrid(x, y int) bool {
	size := t.sb.Size()
	return x >= 0 && y >= 0 && x < size.W*CellWidth && y < size.H
}

// Mouse feeds one pointer sample in terminal coordinates.
func (t *TUI) Mouse(x, y int, pressed bool) {
	if !t.onGrid(x, y) {
		t.sb.Leave()
		return
	}
	wx, wy := t.WorldAt(x, y)
	t.sb.Pointer(wx, wy, pressed)
}

func runeAction(r rune) Action {
	switch r {
	case 'q':
		return ActionQuit
	case 'n':
		return ActionStep
	case 'b':
		return ActionBack
	case ' ':
		return ActionPlay
	case 'r':
		return ActionReseed
	case 'c':
		return ActionClear
	}
	return ActionNone
}

func keyAction(k tcell.Key) Action {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRight:
		return ActionStep
	case tcell.KeyLeft:
		return ActionBack
	}
	return ActionNone
}

// KeyAction decodes a key event.
func KeyAction(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return runeAction(ev.Rune())
	}
	return keyAction(ev.Key())
}

// Apply performs a, returning false when the TUI should exit.
func (t *TUI) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionStep:
		t.sb.StepForward()
		t.audio.Play(audio.CueStep)
	case ActionBack:
		if t.sb.StepBack() {
			t.audio.Play(audio.CueRewind)
		} else {
			t.audio.Play(audio.CueBlocked)
		}
	case ActionPlay:
		t.playing = !t.playing
		t.ticker.Reset(time.Now())
	case ActionReseed:
		t.sb.Reset()
		seed := time.Now().UnixNano()
		if t.cfg.SeedMode == config.SeedNone {
			t.sb.Seed(seed, t.cfg.Density)
		} else {
			t.cfg.Reseed(t.sb, seed)
		}
	case ActionClear:
		t.sb.Reset()
	}
	return true
}

// HandleEvent applies a tcell event, returning false on quit.
func (t *TUI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.Apply(KeyAction(ev))
	case *tcell.EventMouse:
		x, y := ev.Position()
		t.Mouse(x, y, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// Tick advances the sandbox when playing and a step is due.
func (t *TUI) Tick(now time.Time) {
	if t.playing && t.ticker.ShouldStepAt(now) {
		t.sb.StepForward()
	}
}

// Status renders the one-line summary shown under the grid.
func (t *TUI) Status() string {
	snap := t.sb.Parameters()
	state := "paused"
	if t.playing {
		state = "playing"
	}
	parts := []string{state}
	for _, key := range []string{"generation", "depth", "live", "rule", "hovered", "gesture"} {
		if p, ok := snap.Lookup(key); ok {
			parts = append(parts, strings.ToLower(p.Label)+" "+p.Value)
		}
	}
	return strings.Join(parts, "  ")
}

// Draw paints the grid and status line.
func (t *TUI) Draw() {
	t.screen.Clear()
	size := t.sb.Size()
	cells := t.sb.Cells()

	hovered, hasHover := t.sb.Hovered()
	neighbors := make(map[int]bool)
	if hasHover {
		for _, n := range t.sb.HoverNeighbors() {
			neighbors[n] = true
		}
	}

	for i, v := range cells {
		row, col := t.sb.Geometry().RowCol(i)
		style := styleDead
		switch {
		case hasHover && i == hovered:
			style = styleHover
		case v != 0:
			style = styleAlive
		case neighbors[i]:
			style = styleNeighbor
		}
		for dx := 0; dx < CellWidth; dx++ {
			t.screen.SetContent(col*CellWidth+dx, row, ' ', nil, style)
		}
	}

	_, h := t.screen.Size()
	y := min(size.H, h-1)
	for x, r := range []rune(t.Status()) {
		t.screen.SetContent(x, y, r, nil, styleStatus)
	}
	t.screen.Show()
}

// Run enables the mouse and processes events until quit or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	t.screen.EnableMouse()
	defer t.screen.DisableMouse()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.HandleEvent(ev) {
				return nil
			}
			t.Draw()
		case now := <-ticker.C:
			if t.playing {
				t.Tick(now)
				t.Draw()
			}
		}
	}
}
