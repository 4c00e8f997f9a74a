package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-alphabeta/internal"
	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the console game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "path to config.yml (default: tictactoe/config.yml in the XDG config dirs)")
	flag.Parse()

	conf := initConfig(*configPath)
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(path string) *config.Config {
	if path == "" {
		path, _ = config.SearchPath()
	}

	if path != "" {
		return config.MustLoad(path)
	}

	conf, err := config.Load("")
	if err != nil {
		panic(fmt.Errorf("unable to load config from environment: %w", err))
	}

	return conf
}

// initialize logger. Logs go to stderr, the game itself owns stdout.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
