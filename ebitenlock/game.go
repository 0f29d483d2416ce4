package ebitenlock

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/patternlock"
)

// RunConfig configures a Game.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Size is the side length of the lock surface in pixels. Default 300.
	Size int
	// Padding is the empty border around the surface. Zero means the default
	// of 40; negative means none.
	Padding int
	// Background fills the window. Default is a dark grey.
	Background patternlock.Color
	// ShowHUD draws the state, value and frame rate in the corner.
	ShowHUD bool

	Config    patternlock.Config
	Callbacks patternlock.Callbacks

	// Script is an optional JSON gesture script played back on start.
	Script []byte
}

var defaultBackground = patternlock.Color{R: 0.13, G: 0.13, B: 0.15, A: 1}

func (c RunConfig) withDefaults() RunConfig {
	if c.Size <= 0 {
		c.Size = 300
	}
	if c.Padding < 0 {
		c.Padding = 0
	} else if c.Padding == 0 {
		c.Padding = 40
	}
	if c.Background == (patternlock.Color{}) {
		c.Background = defaultBackground
	}
	if c.Title == "" {
		c.Title = "patternlock"
	}
	return c
}

// Game is an ebiten.Game hosting one lock.
type Game struct {
	cfg      RunConfig
	lock     *patternlock.Lock
	adapter  *patternlock.PointerAdapter
	renderer *Renderer
	poller   *Poller
	runner   *patternlock.ScriptRunner
	hud      *hud
	bg       color.RGBA
}

// NewGame builds the lock and its collaborators.
func NewGame(cfg RunConfig) (*Game, error) {
	cfg = cfg.withDefaults()
	g := &Game{cfg: cfg, renderer: NewRenderer(), bg: cfg.Background.RGBA()}

	g.lock = patternlock.New(float64(cfg.Size), cfg.Callbacks,
		patternlock.WithRenderer(g.renderer),
		patternlock.WithHaptics(Haptics{}),
		patternlock.WithConfig(cfg.Config),
	)
	g.adapter = patternlock.NewPointerAdapter(g.lock)
	pad := float64(cfg.Padding)
	g.adapter.Origin = patternlock.Vec2{X: pad, Y: pad}
	g.poller = NewPoller(g.adapter)

	if len(cfg.Script) > 0 {
		runner, err := patternlock.LoadGestureScript(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
		g.runner = runner
	}
	if cfg.ShowHUD {
		g.hud = newHUD()
	}
	return g, nil
}

// Lock returns the hosted lock.
func (g *Game) Lock() *patternlock.Lock { return g.lock }

// Adapter returns the pointer adapter, for injecting gestures.
func (g *Game) Adapter() *patternlock.PointerAdapter { return g.adapter }

// Update implements ebiten.Game. Real input is skipped on frames where an
// injected event was consumed.
func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())
	if g.runner != nil {
		g.runner.Step(g.adapter)
	}
	if !g.adapter.Update(float32(dt)) {
		g.poller.Poll()
	}
	if g.hud != nil {
		g.hud.update(dt, g.lock)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.renderer.Draw(screen, g.adapter.Origin)
	if g.hud != nil {
		g.hud.draw(screen)
	}
}

// Layout implements ebiten.Game with a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	side := g.cfg.Size + 2*g.cfg.Padding
	return side, side
}

// Run creates a Game from cfg and runs it in a window until it is closed.
func Run(cfg RunConfig) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.cfg.Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
