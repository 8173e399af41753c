package main

import (
	"os"

	"github.com/corvusdb/corvus-client-go/corvusclient/httpclient"
	"github.com/corvusdb/corvus-client-go/infrastructure/logger"
)

const logSubsystem = "CVQL"

// log is silent until initLog wires it to the real backend.
var log = newSilentLogger()

func newSilentLogger() *logger.Logger {
	silent := logger.NewBackend().Logger(logSubsystem)
	silent.SetLevel(logger.LevelOff)
	return silent
}

// initLog sets up the shared logger backend for the shell and the client
// library, writing to stderr and optionally to a rotated log file.
func initLog(cfg *configFlags) error {
	backend := logger.NewBackend()
	backend.AddLogWriter(os.Stderr, cfg.logLevel)
	if cfg.LogFile != "" {
		err := backend.AddLogFile(cfg.LogFile, logger.LevelTrace)
		if err != nil {
			return err
		}
	}

	log = backend.Logger(logSubsystem)
	log.SetLevel(cfg.logLevel)
	httpclient.UseLogger(backend, cfg.logLevel)
	return nil
}
