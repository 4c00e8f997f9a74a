package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/alphabeta"
	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/config"
	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/console"
)

// RunApp - runs console games until the player quits, the input ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, input io.Reader, output io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	aiMark, err := conf.GetAIMark()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	engine := alphabeta.NewEngine(logger)
	controller := console.NewController(logger, engine, console.Settings{
		AIMark:    aiMark,
		BoardSize: conf.BoardSize,
	}, input, output)

	// the console blocks on input, so it runs aside and a signal can still end the app
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console game", "ai", aiMark.String(), "board-size", conf.BoardSize)
		consoleErrCh <- controller.Run(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
