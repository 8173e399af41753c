package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/corvusdb/corvus-client-go/infrastructure/logger"
)

const (
	defaultTimeout  uint64 = 30
	defaultLogLevel        = "info"
)

type configFlags struct {
	Endpoint    string `short:"s" long:"server" description:"Corvus server endpoint URL. Supported schemes are http, https and corvus"`
	AuthToken   string `long:"token" description:"Authentication token to send with every request"`
	PromptToken bool   `long:"prompt-token" description:"Prompt for the authentication token without echoing it"`
	Timeout     uint64 `short:"t" long:"timeout" description:"Timeout for every request (in seconds)"`
	Proxy       string `long:"proxy" description:"Connect via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser   string `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass   string `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
	LogFile     string `long:"logfile" description:"Write logs to this file in addition to stderr, with rotation"`
	LogLevel    string `short:"d" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	Execute     string `short:"e" long:"execute" description:"Execute this single statement and exit instead of starting the interactive shell"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	logLevel logger.Level
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{
		Timeout:  defaultTimeout,
		LogLevel: defaultLogLevel,
	}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "corvusql [OPTIONS]\n\nStarts an interactive shell against a Corvus server. " +
		"Use `begin`, `commit` and `rollback` inside the shell to control interactive transactions."
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if cfg.Endpoint == "" {
		return nil, errors.New("--server is required")
	}
	if cfg.AuthToken != "" && cfg.PromptToken {
		return nil, errors.New("--token and --prompt-token may not be used together")
	}

	logLevel, ok := logger.LevelFromString(cfg.LogLevel)
	if !ok {
		return nil, errors.Errorf("invalid log level %s", cfg.LogLevel)
	}
	cfg.logLevel = logLevel

	return cfg, nil
}
