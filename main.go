package main

import (
	"log/slog"
	"os"

	"LocalSketch/internal/config"
	"LocalSketch/internal/state"
	"LocalSketch/internal/ui"

	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	logrus.WithField("session", state.SessionID()).Info("Starting Local Sketch")
	ui.RunApp(cfg)
}

func setupLogging(cfg *config.Config) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.LogLevel)

	// gg is silent unless given a logger; only surface its diagnostics when debugging.
	if cfg.LogLevel >= logrus.DebugLevel {
		gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}
