package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/elements/ability"
	"github.com/milk9111/elements/config"
	"github.com/milk9111/elements/controller"
	"github.com/milk9111/elements/input"
	"github.com/milk9111/elements/levels"
	"github.com/milk9111/elements/render"
	"github.com/milk9111/elements/world"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// pixels per simulation unit
	drawScale = 32
)

type gameOptions struct {
	Level     string
	Constants string
	Debug     bool
	Watch     bool
}

type Game struct {
	opts   gameOptions
	logger *log.Logger

	world      *world.World
	controller *controller.Controller
	keyboard   *input.Keyboard
	renderer   *render.Renderer
	watcher    *config.Watcher
	pauseUI    *ebitenui.UI

	frames int
	debug  bool
	paused bool
	reload bool
	quit   bool
}

func NewGame(opts gameOptions, logger *log.Logger) (*Game, error) {
	g := &Game{
		opts:     opts,
		logger:   logger,
		keyboard: input.NewKeyboard(),
		renderer: render.NewRenderer(render.NewCamera(baseWidth, baseHeight, drawScale)),
		debug:    opts.Debug,
	}
	g.renderer.ShowTriangles = opts.Debug
	g.world = world.New(config.Default(), logger.WithPrefix("world"))
	g.controller = controller.New(g.world, nil, logger.WithPrefix("controller"))
	g.pauseUI = NewPauseUI(g)

	if err := g.load(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := config.NewWatcher(config.Dir)
		if err != nil {
			logger.Warn("config watcher disabled", "dir", config.Dir, "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// load reads constants, the ability script and the level, then repopulates
// the world.
func (g *Game) load() error {
	consts, err := loadConstants(g.opts.Constants)
	if err != nil {
		g.logger.Warn("using default constants", "err", err)
	}
	level, err := levels.Load(g.opts.Level, g.logger.WithPrefix("levels"))
	if err != nil {
		return err
	}

	g.world.SetConstants(consts)
	g.world.Populate(level)
	g.controller.SetLauncher(loadLauncher(consts.Fireball.Script, g.logger))
	g.controller.Reset()

	camera := g.renderer.Camera()
	camera.SetWorldBounds(level.Bounds.Width, level.Bounds.Height)
	if p := g.world.Player(); p != nil {
		camera.SnapTo(p.X(), p.Y())
	}
	g.logger.Info("level loaded", "level", level.Name, "entities", len(g.world.Objects()))
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
	}
	if g.quit {
		return ebiten.Termination
	}

	var in input.Snapshot
	if !g.paused {
		in = g.keyboard.Poll()
	}
	if in.DebugPressed {
		g.debug = !g.debug
		g.renderer.ShowTriangles = g.debug
	}
	if in.ResetPressed || g.reload {
		g.reload = false
		if err := g.load(); err != nil {
			g.logger.Error("reload failed", "err", err)
		}
	}
	if g.paused {
		return nil
	}

	g.controller.Update(in, 1/float64(ebiten.TPS()))
	if p := g.world.Player(); p != nil {
		g.renderer.Camera().Follow(p.X(), p.Y())
	}
	return nil
}

// drainWatcher schedules a reload when constants or scripts change on disk.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Info("config changed", "file", change.Path, "kind", change.Kind)
			g.reload = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("config watcher", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)
	g.renderer.Draw(screen, g.world.Objects())
	if g.debug {
		g.renderer.DebugDraw(screen, g.world.Space())
	}

	status := fmt.Sprintf("FPS: %.2f  bodies: %d", ebiten.ActualFPS(), g.world.BodyCount())
	if p := g.world.Player(); p != nil {
		status += fmt.Sprintf("\nplayer (%.2f, %.2f) grounded=%v contacts=%d", p.X(), p.Y(), p.IsGrounded(), p.GroundContacts())
	}
	ebitenutil.DebugPrint(screen, status)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Close stops the config watcher and releases the world.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	g.world.Dispose()
}

func loadConstants(path string) (config.Constants, error) {
	if path == "" {
		return config.LoadConstants(config.DefaultFile)
	}
	return config.LoadConstantsFile(path)
}

func loadLauncher(name string, logger *log.Logger) ability.Launcher {
	if name == "" {
		return ability.Straight{}
	}
	script, err := ability.Load(name)
	if err != nil {
		logger.Warn("ability script unavailable, launching straight", "script", name, "err", err)
		return ability.Straight{}
	}
	return script
}
