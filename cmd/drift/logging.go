package main

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/drift/config"
	"github.com/lixenwraith/drift/logging"
)

// newLogger builds the file logger; the terminal owns stdout and stderr while running
// debug raises the configured level to debug, and forces a log file if none is set
func newLogger(cfg *config.Config, debug bool) (*zap.Logger, error) {
	logCfg := cfg.Log
	if debug {
		logCfg.Level = "debug"
		if logCfg.File == "" {
			logCfg.File = logging.DefaultConfig().File
		}
	}
	return logging.New(logCfg)
}
