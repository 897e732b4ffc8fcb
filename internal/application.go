package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
)

var ErrUnknownMode = errors.New("unknown application mode")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	shutdownTelemetry, err := telemetry.Init(ctx, conf.Telemetry)
	if err != nil {
		return fmt.Errorf("could not initialize telemetry: %w", err)
	}

	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Error("could not shutdown telemetry", "error", err)
		}
	}()

	gameUseCase, closeStorage, err := buildUseCase(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	errCh := make(chan error, 1)

	switch conf.Mode {
	case config.ModeConsole:
		go func() {
			errCh <- console.NewGame(logger, gameUseCase, in, out).Run(ctx)
		}()
	case config.ModeServer:
		srv := rest.NewServer(logger, rest.NewHandlers(logger, gameUseCase))
		go func() {
			log.Info("Starting HTTP server", "port", conf.HTTPPort)
			errCh <- srv.Start(ctx, conf.HTTPPort)
		}()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}

	// Start returns after Shutdown has drained in-flight requests.
	if conf.Mode == config.ModeServer {
		if err = <-errCh; err != nil {
			return fmt.Errorf("%s mode failed: %w", conf.Mode, err)
		}
		log.Info("HTTP server stopped")
		return nil
	}

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("%s mode failed: %w", conf.Mode, err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// buildUseCase - wires services; the analysis cache is only attached when redis is enabled.
func buildUseCase(ctx context.Context, logger *slog.Logger, conf *config.Config) (usecase.GameUseCase, func(), error) {
	log := logger.With("component", "app")
	closeStorage := func() {}

	botService, err := service.NewBotService(logger)
	if err != nil {
		return nil, closeStorage, fmt.Errorf("could not create bot service: %w", err)
	}

	var analysisService service.AnalysisService
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis)
		if err != nil {
			return nil, closeStorage, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeStorage = func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		analysisRepo := repository.NewAnalysisRepository(redisStorage.Connection, conf.Redis.TTL)
		analysisService, err = service.NewAnalysisService(logger, analysisRepo)
		if err != nil {
			closeStorage()
			return nil, func() {}, fmt.Errorf("could not create analysis service: %w", err)
		}
	} else {
		analysisService, err = service.NewAnalysisService(logger, nil)
		if err != nil {
			return nil, closeStorage, fmt.Errorf("could not create analysis service: %w", err)
		}
	}

	return usecase.NewGameUseCase(botService, analysisService), closeStorage, nil
}
