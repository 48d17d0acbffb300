package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"traktlist/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	configPath := "config.toml"
	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "traktlist",
		Usage:    "Sync a text file of titles into a Trakt list",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrAuthExpired) {
			logger.Error("access token rejected; run 'traktlist auth login' and retry")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
