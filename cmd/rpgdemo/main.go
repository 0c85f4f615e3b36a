// Command rpgdemo runs a small scene against the rpgkit libraries: a
// handful of entities loaded from a YAML manifest, hover outlines, and the
// built-in look/open/close actions. With -headless it drives the same
// world from an ark-tools app loop instead of a window.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"

	"rpgkit/action"
	"rpgkit/component"
	"rpgkit/engine/ebitengine"
	"rpgkit/internal/config"
	"rpgkit/internal/loader"
	"rpgkit/internal/logger"
	"rpgkit/scene"
	"rpgkit/script"
	"rpgkit/system"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	headless := flag.Bool("headless", false, "run without a window")
	ticks := flag.Int("ticks", 0, "headless tick limit, 0 runs until interrupted")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	log, err := logger.NewZapLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if *headless {
		err = runHeadless(cfg, log, *ticks)
	} else {
		err = runWindowed(cfg, log)
	}
	if err != nil {
		log.Error("demo failed", logger.Err(err))
		os.Exit(1)
	}
}

// game bundles the world wiring shared by both modes.
type game struct {
	comps   *component.Manager
	systems *system.Manager
	actions *action.Manager
	ctrl    *scene.Controller
	index   *loader.Index
}

// buildGame registers the built-in components, actions and systems, loads
// the entity manifest and wires the scene controller.
func buildGame(w *ecs.World, cfg config.Config, log logger.Logger) (*game, error) {
	general := component.NewGeneral(w)
	description := component.NewDescription(w, general)
	lockable := component.NewLockable(w, description)
	agent := component.NewAgent(w, general)

	comps := component.NewManager(log.With(logger.String("component", "components")))
	for _, t := range []component.Type{lockable, agent} {
		if err := comps.Register(t); err != nil {
			return nil, err
		}
	}

	actions := action.NewManager(comps, log.With(logger.String("component", "actions")))
	for _, t := range []action.Type{
		action.NewLook(description),
		action.NewOpen(lockable, description),
		action.NewClose(lockable, description),
	} {
		if err := actions.Register(t); err != nil {
			return nil, err
		}
	}

	systems := system.NewManager(log.With(logger.String("component", "systems")))
	ctrl := scene.NewController(w, systems, actions, log)

	g := &game{comps: comps, systems: systems, actions: actions, ctrl: ctrl}

	engine := script.NewEngine(func(e ecs.Entity) string {
		if g.index == nil {
			return ""
		}
		return g.index.Identify(e)
	}, log.With(logger.String("component", "script")))
	actions.SetCommandFallback(engine.Command)
	if cfg.Paths.Scripts != "" {
		if err := engine.LoadFile(cfg.Paths.Scripts); err != nil {
			return nil, err
		}
	}
	if err := systems.Register(script.NewSystem(engine, system.NewGameTime(), ctrl, log)); err != nil {
		return nil, err
	}

	idx, err := loader.New(comps, log.With(logger.String("component", "loader"))).
		LoadFile(w, cfg.Paths.Entities)
	if err != nil {
		return nil, err
	}
	g.index = idx
	ctrl.SetResolver(idx.Resolve)
	ctrl.SetSink(action.SinkFunc(func(r action.Result) {
		fmt.Printf("[%s] %s\n", r.Kind, r.Text)
	}))
	return g, nil
}

func runWindowed(cfg config.Config, log logger.Logger) error {
	w := ecs.NewWorld()
	g, err := buildGame(&w, cfg, log)
	if err != nil {
		return err
	}

	view := ebitengine.NewView(cfg.Window.Width, cfg.Window.Height)
	view.HitThreshold = cfg.Scene.Outline.Threshold
	outliner := scene.NewSimpleOutliner(view, scene.Outline{
		R:         cfg.Scene.Outline.R,
		G:         cfg.Scene.Outline.G,
		B:         cfg.Scene.Outline.B,
		Width:     cfg.Scene.Outline.Width,
		Threshold: cfg.Scene.Outline.Threshold,
	}, cfg.Scene.OutlineIgnore)
	listener := scene.NewListener(view, outliner, g.ctrl, log)
	listener.Layer = cfg.Scene.ActorLayer
	listener.AgentID = "player"
	view.Attach(g.ctrl)
	g.ctrl.AttachInput(view, listener)

	placeSprites(view, g.index, cfg)
	g.ctrl.Activate()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	return ebiten.RunGame(view)
}

// placeSprites drops a placeholder sprite per loaded entity on the actor
// layer. A real game renders its own art; the demo just needs something
// to hover and click.
func placeSprites(view *ebitengine.View, idx *loader.Index, cfg config.Config) {
	palette := []color.RGBA{
		{R: 0x3a, G: 0x86, B: 0xff, A: 0xff},
		{R: 0xfb, G: 0x56, B: 0x07, A: 0xff},
		{R: 0x8a, G: 0xc9, B: 0x26, A: 0xff},
		{R: 0xff, G: 0xbe, B: 0x0b, A: 0xff},
	}
	const spriteW, spriteH = 32, 48
	y := float64(cfg.Window.Height)/2 - spriteH/2
	for i, id := range idx.Identifiers() {
		img := ebiten.NewImage(spriteW, spriteH)
		img.Fill(palette[i%len(palette)])
		view.AddSprite(&ebitengine.Sprite{
			ID:    id,
			Image: img,
			X:     float64(64 + i*(spriteW+32)),
			Y:     y,
			W:     spriteW,
			H:     spriteH,
			Layer: cfg.Scene.ActorLayer,
		})
	}
}

func runHeadless(cfg config.Config, log logger.Logger, ticks int) error {
	tool := app.New(1024)
	tool.TPS = 60

	g, err := buildGame(&tool.World, cfg, log)
	if err != nil {
		return err
	}
	tool.AddSystem(g.systems)
	tool.Initialize()
	defer tool.Finalize()

	frame := ecs.NewResource[system.FrameTime](&tool.World)
	if !frame.Has() {
		frame.Add(&system.FrameTime{})
	}
	frame.Get().Delta = 1.0 / float64(tool.TPS)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(tool.TPS))
	defer ticker.Stop()

	log.Info("headless run started", logger.Int("entities", g.index.Len()))
	for n := 0; ; {
		select {
		case <-sigChan:
			log.Info("shutdown signal received")
			return nil
		case <-ticker.C:
			tool.Update()
			n++
			if ticks > 0 && n >= ticks {
				log.Info("tick limit reached", logger.Int("ticks", n))
				return nil
			}
		}
	}
}
