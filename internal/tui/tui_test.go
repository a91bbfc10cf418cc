package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadlife/internal/config"
	"quadlife/pkg/sandbox"
)

func newTUI(t *testing.T) (*TUI, *sandbox.Sandbox) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	cfg := config.NewConfig()
	sb, err := cfg.NewSandbox()
	require.NoError(t, err)
	return New(screen, cfg, sb, nil), sb
}

func TestWorldAtMapsToCellCentre(t *testing.T) {
	ui, sb := newTUI(t)
	x, y := ui.WorldAt(5, 3)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 70.0, y)

	idx, ok := sb.Hover(x, y)
	require.True(t, ok)
	assert.Equal(t, sb.Geometry().Index(3, 2), idx)
}

func TestMousePaintsBothColumnsOfACell(t *testing.T) {
	ui, sb := newTUI(t)
	idx := sb.Geometry().Index(3, 2)

	ui.Mouse(4, 3, true)
	assert.True(t, sb.Engine().Alive(idx))
	// Second column of the same cell while held keeps the target value.
	ui.Mouse(5, 3, true)
	assert.True(t, sb.Engine().Alive(idx))
	ui.Mouse(5, 3, false)
	assert.Equal(t, sandbox.Idle, sb.Gesture().Mode)

	ui.Mouse(5, 3, true)
	assert.False(t, sb.Engine().Alive(idx))
}

func TestMouseDragPaintsRow(t *testing.T) {
	ui, sb := newTUI(t)
	for x := 0; x < 10; x++ {
		ui.Mouse(x, 0, true)
	}
	ui.Mouse(9, 0, false)
	for col := 0; col < 5; col++ {
		assert.True(t, sb.Engine().Alive(sb.Geometry().Index(0, col)), col)
	}
	assert.False(t, sb.Engine().Alive(sb.Geometry().Index(0, 5)))
	assert.Equal(t, 1, sb.Engine().Depth())
}

func TestMouseOffGridLeaves(t *testing.T) {
	ui, sb := newTUI(t)
	ui.Mouse(1, 1, true)
	_, ok := sb.Hovered()
	require.True(t, ok)

	ui.Mouse(50, 1, true)
	_, ok = sb.Hovered()
	assert.False(t, ok)
	assert.Equal(t, sandbox.Idle, sb.Gesture().Mode)

	ui.Mouse(-1, 0, true)
	_, ok = sb.Hovered()
	assert.False(t, ok)
}

func TestKeyDecoding(t *testing.T) {
	cases := map[rune]Action{
		'q': ActionQuit,
		'n': ActionStep,
		'b': ActionBack,
		' ': ActionPlay,
		'r': ActionReseed,
		'c': ActionClear,
		'x': ActionNone,
	}
	for r, want := range cases {
		assert.Equal(t, want, runeAction(r), string(r))
	}
	assert.Equal(t, ActionQuit, keyAction(tcell.KeyEscape))
	assert.Equal(t, ActionQuit, keyAction(tcell.KeyCtrlC))
	assert.Equal(t, ActionStep, keyAction(tcell.KeyRight))
	assert.Equal(t, ActionBack, keyAction(tcell.KeyLeft))
	assert.Equal(t, ActionNone, keyAction(tcell.KeyUp))
}

func TestApplyStepAndBack(t *testing.T) {
	ui, sb := newTUI(t)
	assert.True(t, ui.Apply(ActionBack))
	assert.Equal(t, 1, sb.Engine().Depth())

	assert.True(t, ui.Apply(ActionStep))
	assert.True(t, ui.Apply(ActionStep))
	assert.Equal(t, 3, sb.Engine().Depth())

	assert.True(t, ui.Apply(ActionBack))
	assert.Equal(t, 2, sb.Engine().Depth())

	assert.False(t, ui.Apply(ActionQuit))
}

func TestApplyClearAndReseed(t *testing.T) {
	ui, sb := newTUI(t)
	ui.Apply(ActionReseed)
	assert.Positive(t, sb.Engine().LiveCount())
	assert.Equal(t, 1, sb.Engine().Depth())

	ui.Apply(ActionStep)
	ui.Apply(ActionClear)
	assert.Zero(t, sb.Engine().LiveCount())
	assert.Equal(t, 1, sb.Engine().Depth())
}

func TestPlayTicksOnInterval(t *testing.T) {
	ui, sb := newTUI(t)
	now := time.Now()
	ui.Tick(now.Add(time.Hour))
	assert.Equal(t, 1, sb.Engine().Depth())

	ui.Apply(ActionPlay)
	require.True(t, ui.Playing())
	ui.ticker.Reset(now)
	ui.Tick(now.Add(ui.ticker.Interval() / 2))
	assert.Equal(t, 1, sb.Engine().Depth())
	ui.Tick(now.Add(ui.ticker.Interval()))
	assert.Equal(t, 2, sb.Engine().Depth())

	ui.Apply(ActionPlay)
	assert.False(t, ui.Playing())
}

func TestStatusAndDraw(t *testing.T) {
	ui, _ := newTUI(t)
	ui.Mouse(0, 0, false)
	status := ui.Status()
	assert.True(t, strings.HasPrefix(status, "paused"))
	assert.Contains(t, status, "generation 0")
	assert.Contains(t, status, "rule B3/S23")
	assert.Contains(t, status, "hovered 0,0")
	assert.NotPanics(t, ui.Draw)
}
