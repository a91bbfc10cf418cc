//go:build ebiten

package app

import (
	"image/color"
	"time"

	"quadlife/internal/audio"
	"quadlife/internal/camera"
	"quadlife/internal/config"
	"quadlife/internal/core"
	"quadlife/internal/render"
	"quadlife/internal/ui"
	"quadlife/pkg/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in pixels.
const HUDWidth = 220

// minGridPixels is the on-screen cell size below which outlines are hidden.
const minGridPixels = 6

// Game adapts a sandbox to the ebiten.Game interface.
type Game struct {
	cfg     *config.Config
	sb      *sandbox.Sandbox
	cam     *camera.Camera
	painter *render.GridPainter
	palette render.Palette
	hud     *ui.HUD
	overlay *ui.Overlay
	audio   *audio.Player
	ticker  *core.FixedStep

	playing      bool
	viewW, viewH int
}

// New constructs a Game for the provided sandbox. player may be nil.
func New(cfg *config.Config, sb *sandbox.Sandbox, player *audio.Player) *Game {
	bounds := sb.Geometry().Bounds()
	viewW, viewH := int(bounds.Width*cfg.Scale), int(bounds.Height*cfg.Scale)
	cam := camera.New(viewW, viewH, cfg.Scale)
	cam.CenterOn(bounds)
	size := sb.Size()
	return &Game{
		cfg:     cfg,
		sb:      sb,
		cam:     cam,
		painter: render.NewGridPainter(size.W, size.H),
		palette: render.DefaultPalette(),
		hud:     ui.NewHUD(sb, HUDWidth),
		overlay: ui.NewOverlay(sb),
		audio:   player,
		ticker:  core.NewFixedStep(cfg.TPS),
		viewW:   viewW,
		viewH:   viewH,
	}
}

// WindowSize returns the initial window dimensions including the HUD.
func (g *Game) WindowSize() (int, int) {
	return g.viewW + g.hud.Width(), g.viewH
}

func (g *Game) stepForward() {
	g.sb.StepForward()
	g.audio.Play(audio.CueStep)
}

func (g *Game) stepBack() {
	if g.sb.StepBack() {
		g.audio.Play(audio.CueRewind)
		return
	}
	g.audio.Play(audio.CueBlocked)
}

func (g *Game) reseed() {
	g.sb.Reset()
	seed := time.Now().UnixNano()
	if g.cfg.SeedMode == config.SeedNone {
		g.sb.Seed(seed, g.cfg.Density)
		return
	}
	g.cfg.Reseed(g.sb, seed)
}

// Update handles per-frame input and advances the sandbox on request.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
		g.ticker.Reset(time.Now())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.stepForward()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.stepBack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sb.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed()
	}
	g.overlay.Update()

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	if mx >= 0 && my >= 0 && mx < g.viewW && my < g.viewH {
		g.cam.Drag(sx, sy, ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
		if _, wy := ebiten.Wheel(); wy != 0 {
			g.cam.Wheel(wy, sx, sy)
		}
		wx, wy := g.cam.ScreenToWorld(sx, sy)
		g.sb.Pointer(wx, wy, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	} else {
		g.cam.Drag(sx, sy, false)
		g.sb.Leave()
	}

	if g.playing && g.ticker.ShouldStep() {
		g.stepForward()
	}
	g.hud.Update(g.playing)
	return nil
}

func (g *Game) view() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-g.cam.X, -g.cam.Y)
	m.Scale(g.cam.Zoom, g.cam.Zoom)
	m.Translate(float64(g.viewW)/2, float64(g.viewH)/2)
	return m
}

// Draw renders the current sandbox state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 14, A: 255})

	size := g.sb.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}

	hl := render.NoHighlight
	if idx, ok := g.sb.Hovered(); ok {
		hl = render.Highlight{Hovered: idx, Neighbors: g.sb.HoverNeighbors()}
	}
	view := g.view()
	cell := g.sb.Geometry().CellSize
	g.painter.Blit(screen, g.sb.Cells(), hl, g.palette, view, cell)
	if g.overlay.ShowGrid() {
		g.painter.StrokeGrid(screen, g.palette, view, cell, g.cam.Zoom, minGridPixels)
	}
	g.overlay.Draw(screen, view)
	g.hud.Draw(screen, g.viewW, g.viewH)
}

// Layout splits the window between the sandbox view and the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW = max(1, outsideWidth-g.hud.Width())
	g.viewH = max(1, outsideHeight)
	g.cam.Resize(g.viewW, g.viewH)
	return outsideWidth, outsideHeight
}
