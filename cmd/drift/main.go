package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/drift/component"
	"github.com/lixenwraith/drift/config"
	"github.com/lixenwraith/drift/core"
	"github.com/lixenwraith/drift/game"
	"github.com/lixenwraith/drift/input"
	"github.com/lixenwraith/drift/parameter"
	"github.com/lixenwraith/drift/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging and show the metrics HUD at start")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "drift: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, *debugFlag)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup; crash paths restore through the hook
	defer screen.Fini()
	core.SetCrashHook(screen.Fini)

	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cell := component.SizeComponent{Width: cfg.Cell.Width, Height: cfg.Cell.Height}
	width, height := terminal.Viewport(screen, cell)
	g, err := game.NewGame(game.Options{
		Width:        width,
		Height:       height,
		TickRate:     cfg.TickRate,
		StepDistance: cfg.StepDistance,
		Cell:         cell,
		Keys:         keys,
	}, logger)
	if err != nil {
		return err
	}

	// Host metrics go into the game's registry so the HUD shows them
	host := terminal.NewHost(screen, terminal.Options{
		Cell:         cell,
		HoldWindow:   cfg.HoldWindow.Std(),
		RepeatWindow: cfg.RepeatWindow.Std(),
	}, g.Status(), logger)

	game.RegisterDrawer[component.Mesh](g, terminal.NewMeshDrawer(screen, cell), parameter.RenderPriorityMesh)
	game.RegisterDrawer[component.Sprite](g, terminal.NewSpriteDrawer(screen, cell), parameter.RenderPrioritySprite)
	g.AddRenderer(terminal.NewHUD(screen, g.Status(), *debugFlag), parameter.RenderPriorityHUD)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		zap.String("config", *configFlag),
		zap.Stringer("session", g.Session),
		zap.Stringers("quit_keys", keys.KeysFor(input.ActionQuit)),
		zap.Stringers("hud_keys", keys.KeysFor(input.ActionToggleHUD)),
	)
	err = host.Run(ctx, g, cfg.FrameInterval.Std())
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("stopped", zap.Uint64("steps", g.Steps()))
	return nil
}
