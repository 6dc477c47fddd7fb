//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"sparselife/internal/config"
	"sparselife/internal/render"
	"sparselife/internal/sim"
	"sparselife/internal/themes"
	"sparselife/internal/ui"
	"sparselife/pkg/core"
	"sparselife/pkg/patterns"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type gameState int

const (
	stateResolutionMenu gameState = iota
	statePatternMenu
	stateRunning
)

// Menu screens render at a fixed logical size before the board exists.
const (
	menuWidth  = 640
	menuHeight = 480
)

// Game is the interactive frontend: two selection menus followed by the
// simulation view. It implements ebiten.Game.
type Game struct {
	cfg  config.Config
	seed int64

	state   gameState
	resMenu *ui.Menu
	patMenu *ui.Menu
	hud     *ui.HUD

	session *sim.Session
	painter *render.GridPainter
	timer   *FixedStep

	theme    themes.Theme
	paused   bool
	speed    float64
	showGrid bool

	screenW, screenH int

	drawing      bool
	lastDrawCell core.Coord
}

// New constructs the Game in the resolution-menu state.
func New(cfg config.Config, seed int64) *Game {
	sizes := make([]string, len(cfg.Screen.Sizes))
	for i, s := range cfg.Screen.Sizes {
		sizes[i] = fmt.Sprintf("%dx%d", s[0], s[1])
	}
	resMenu := &ui.Menu{
		Title:      "Select screen size:",
		Items:      sizes,
		Footer:     "Enter to confirm",
		Background: color.RGBA{R: 80, G: 80, B: 80, A: 255},
	}
	resMenu.Reset(1)
	patMenu := &ui.Menu{
		Title:      "Select pattern:",
		Items:      patterns.Names(),
		Footer:     "Enter to start | Esc to go back",
		Background: color.RGBA{B: 80, A: 255},
		AllowBack:  true,
	}

	return &Game{
		cfg:      cfg,
		seed:     seed,
		resMenu:  resMenu,
		patMenu:  patMenu,
		hud:      ui.NewHUD(),
		theme:    themes.ByName(cfg.Theme),
		speed:    cfg.Sim.SpeedInit,
		showGrid: true,
	}
}

// Update handles per-frame logic for whichever screen is active.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	switch g.state {
	case stateResolutionMenu:
		if confirmed, _ := g.resMenu.Update(); confirmed {
			g.state = statePatternMenu
		}
	case statePatternMenu:
		confirmed, backed := g.patMenu.Update()
		if backed {
			g.state = stateResolutionMenu
		}
		if confirmed {
			if err := g.startSimulation(g.resMenu.Selected(), g.patMenu.Selected()); err != nil {
				return err
			}
		}
	case stateRunning:
		g.updateSimulation()
	}
	return nil
}

func (g *Game) startSimulation(resIndex, patIndex int) error {
	size := g.cfg.Screen.Sizes[resIndex]
	g.screenW, g.screenH = size[0], size[1]

	w, h := g.cfg.GridSize(g.screenW, g.screenH)
	topo, err := core.NewTopology(w, h, g.cfg.Board.Wrap)
	if err != nil {
		return err
	}

	g.session = sim.New(topo, g.seed)
	g.session.SetParallelThreshold(g.cfg.Sim.ParallelThreshold)

	p := patterns.ByIndex(patIndex)
	if p.Kind == patterns.KindRandom {
		g.session.Stamp(p, 0, 0)
	} else {
		g.session.Stamp(p, w/2, h/2)
	}

	g.painter = render.NewGridPainter(w, h)
	g.timer = NewFixedStep(g.speed)
	g.timer.Reset()
	g.paused = false
	g.drawing = false

	ebiten.SetWindowSize(g.screenW, g.screenH)
	g.state = stateRunning
	return nil
}

func (g *Game) updateSimulation() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.state = stateResolutionMenu
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.timer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.paused {
		g.session.Advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setSpeed(g.speed - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setSpeed(g.speed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.session.SetWrap(!g.session.Wrap())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.theme = g.theme.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Clear()
		g.session.RandomFill(g.cfg.Sim.RandomDensity)
	}

	g.handleMouse()

	if !g.paused {
		for i := g.timer.Steps(); i > 0; i-- {
			g.session.Advance()
		}
	}
}

// handleMouse toggles the cell under the cursor on press, then once per
// newly entered cell while the button stays held, so dragging draws a
// stroke instead of flickering one cell.
func (g *Game) handleMouse() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drawing = false
		return
	}
	mx, my := ebiten.CursorPosition()
	cell := core.Coord{X: mx / g.cfg.Screen.CellSize, Y: my / g.cfg.Screen.CellSize}
	if g.drawing && cell == g.lastDrawCell {
		return
	}
	g.session.Toggle(cell.X, cell.Y)
	g.drawing = true
	g.lastDrawCell = cell
}

func (g *Game) setSpeed(v float64) {
	if v < g.cfg.Sim.SpeedMin {
		v = g.cfg.Sim.SpeedMin
	}
	if v > g.cfg.Sim.SpeedMax {
		v = g.cfg.Sim.SpeedMax
	}
	g.speed = v
	g.timer.SetRate(v)
}

// Draw renders the active screen.
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case stateResolutionMenu:
		g.resMenu.Draw(screen)
	case statePatternMenu:
		g.patMenu.Draw(screen)
	case stateRunning:
		g.painter.Blit(screen, g.session.Live(), g.theme.Colors(), g.cfg.Screen.CellSize, g.showGrid)
		g.hud.Draw(screen, ui.State{
			Generation: g.session.Generation(),
			Paused:     g.paused,
			Speed:      g.speed,
			ShowGrid:   g.showGrid,
			Wrap:       g.session.Wrap(),
			Theme:      g.theme,
		})
	}
}

// Layout returns the logical screen size for the active state.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.state == stateRunning {
		return g.screenW, g.screenH
	}
	return menuWidth, menuHeight
}
