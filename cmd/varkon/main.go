// Package main is the entry point for the Varkon demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/config"
	"github.com/Faultbox/varkon/internal/game"
	"github.com/Faultbox/varkon/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	// Initialize logger
	opts := logger.DefaultOptions(cfg.Logging.Level, cfg.Logging.LogFile)
	opts.MaxSizeMB = cfg.Logging.MaxSizeMB
	opts.MaxBackups = cfg.Logging.MaxBackups
	opts.MaxAgeDays = cfg.Logging.MaxAgeDays
	opts.Compress = cfg.Logging.Compress
	if err := logger.InitWithOptions(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Varkon ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		return 1
	}
	defer g.Close()

	// Run the game loop
	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		return 1
	}

	logger.Info("game closed normally")
	return 0
}
