// Package main is the entry point for the SkyView sky editor.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-sky/internal/config"
	"github.com/Faultbox/midgard-sky/internal/game/editor"
	"github.com/Faultbox/midgard-sky/internal/logger"
)

func main() {
	flags := config.ParseFlags()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.Named("main")
	log.Info("=== SkyView Editor ===")
	log.Debug("config loaded", zap.Any("config", cfg))

	ed, err := editor.New(cfg)
	if err != nil {
		log.Error("failed to create editor", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	ed.Run()
	ed.Close()

	log.Info("editor closed normally")
}
