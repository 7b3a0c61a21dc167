package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vedantwpatil/gaze-cursor/internal/capture"
	"github.com/vedantwpatil/gaze-cursor/internal/config"
	"github.com/vedantwpatil/gaze-cursor/internal/feedback"
	"github.com/vedantwpatil/gaze-cursor/internal/input"
	"github.com/vedantwpatil/gaze-cursor/internal/logging"
	"github.com/vedantwpatil/gaze-cursor/internal/pointer"
	"github.com/vedantwpatil/gaze-cursor/internal/session"
	"github.com/vedantwpatil/gaze-cursor/internal/tracking"
)

// Exit status when a default settings file was just written.
const exitConfigCreated = 2

type source interface {
	session.FrameSource
	Close() error
}

type Application struct {
	config *config.Config
	logger *slog.Logger
	source source
	keys   *input.Watcher
	player *feedback.Player
	ctx    context.Context
	cancel context.CancelFunc
}

func NewApplication(cfg *config.Config, logger *slog.Logger) *Application {
	ctx, cancel := context.WithCancel(context.Background())
	return &Application{
		config: cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Open acquires the frame source, the keyboard hook and, if enabled, audio.
func (app *Application) Open(replayPath string, replayFPS float64) error {
	var err error
	if replayPath != "" {
		app.source, err = capture.OpenReplay(replayPath, replayFPS)
		if err != nil {
			return err
		}
		app.logger.Info("replaying landmarks", "path", replayPath, "fps", replayFPS)
	} else {
		app.source, err = capture.OpenCameraSource(app.config.CameraDevices, app.config.DetectorCommand, app.logger)
		if err != nil {
			return err
		}
	}

	app.keys, err = input.NewWatcher(app.config.PauseKey, app.config.QuitKey)
	if err != nil {
		return err
	}
	app.keys.Start()

	if app.config.AudioFeedback {
		app.player = feedback.NewPlayer(app.config.AudioVolume, app.logger)
		if err := app.player.Init(); err != nil {
			app.logger.Warn("audio feedback disabled", "error", err)
			app.player = nil
		}
	}
	return nil
}

func (app *Application) Run() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go app.handleSignals(sigChan)

	width, height := pointer.ScreenSize()
	app.logger.Info("screen detected", "width", width, "height", height)

	loop := session.NewLoop(app.config, width, height, app.source, app.keys, pointer.NewRobot(app.logger), app.logger)
	if app.player != nil {
		loop.SetCues(app.player)
	}

	app.printControls()
	fmt.Println("\nTracking started. Cursor is ACTIVE.")

	err := loop.Run(app.ctx)

	stats := loop.Stats()
	app.logger.Info("session finished",
		"frames", stats.Frames,
		"skipped", stats.Skipped,
		"left_clicks", stats.Clicks[tracking.ClickLeft],
		"right_clicks", stats.Clicks[tracking.ClickRight],
		"double_clicks", stats.Clicks[tracking.ClickDouble],
	)
	return err
}

func (app *Application) printControls() {
	fmt.Println("\n--- Eye-Controlled Cursor ---")
	fmt.Println("\n--- CONTROLS ---")
	fmt.Println("- Look to move the cursor.")
	fmt.Println("- Close BOTH eyes for a moment to LEFT CLICK.")
	fmt.Println("- Wink your RIGHT eye for a moment to RIGHT CLICK.")
	fmt.Println("- Perform two quick blinks for a DOUBLE CLICK.")
	fmt.Printf("- Press %s to Pause or Resume cursor control.\n", app.config.PauseKey)
	fmt.Printf("- Press %s to quit the application.\n", app.config.QuitKey)
	fmt.Println("----------------")
}

func (app *Application) handleSignals(sigChan chan os.Signal) {
	select {
	case sig := <-sigChan:
		app.logger.Info("received signal, stopping", "signal", sig.String())
		app.cancel()
	case <-app.ctx.Done():
	}
}

// Close releases everything Open acquired.
func (app *Application) Close() {
	app.cancel()
	if app.keys != nil {
		app.keys.Close()
	}
	if app.player != nil {
		app.player.Close()
	}
	if app.source != nil {
		if err := app.source.Close(); err != nil {
			app.logger.Warn("closing frame source", "error", err)
		}
	}
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "settings file (.json, .toml, .yaml)")
	replayPath := flag.String("replay", "", "read landmark frames from a JSON lines file instead of the camera")
	replayFPS := flag.Float64("replay-fps", 30, "playback rate for -replay")
	flag.Parse()

	cfg, err := config.LoadOrCreate(*configPath)
	switch {
	case errors.Is(err, config.ErrConfigMissing):
		fmt.Printf("Config file not found. Default settings written to %s.\n", *configPath)
		fmt.Println("Review them and run the application again.")
		os.Exit(exitConfigCreated)
	case err != nil:
		log.Fatalf("Configuration error: %v", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	logger.Info("configuration loaded", "path", *configPath)

	app := NewApplication(cfg, logger)
	if err := app.Open(*replayPath, *replayFPS); err != nil {
		app.Close()
		if errors.Is(err, capture.ErrCameraUnavailable) {
			log.Fatalf("Could not open any webcam. Please check connections: %v", err)
		}
		log.Fatalf("Startup failed: %v", err)
	}

	runErr := app.Run()
	app.Close()
	if runErr != nil {
		log.Fatalf("Application error: %v", runErr)
	}
	fmt.Println("Application closed.")
}
