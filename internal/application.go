package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const interruptedExitCode = 130

// RunApp - runs the game on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cache, closeCache, err := newPositionCache(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeCache()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go watchSignals(ctx, log, sigs, func() {
		cancel()
		closeCache()
	}, os.Exit)

	return play(ctx, logger, cache, os.Stdin, newOutput(conf))
}

// watchSignals runs shutdown and exits on the first signal. A blocked read on os.Stdin
// cannot be interrupted, so the session is not waited for.
func watchSignals(ctx context.Context, log *slog.Logger, sigs <-chan os.Signal, shutdown func(), exit func(int)) {
	select {
	case sig := <-sigs:
		log.Info("Received signal, shutting down", "signal", sig)
		shutdown()
		exit(interruptedExitCode)
	case <-ctx.Done():
	}
}

// Run plays a session reading from in and writing to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out *termenv.Output) error {
	cache, closeCache, err := newPositionCache(ctx, logger.With("component", "app"), conf)
	if err != nil {
		return err
	}
	defer closeCache()

	return play(ctx, logger, cache, in, out)
}

func play(ctx context.Context, logger *slog.Logger, cache repository.PositionRepository, in io.Reader, out *termenv.Output) error {
	term := console.New(in, out)
	solver := tictactoe.NewSolver(logger, cache)
	gameManager := usecase.NewGameManager(
		logger,
		term,
		service.NewHumanPlayer(logger, term),
		service.NewBotPlayer(term, solver),
	)

	tally, err := gameManager.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game session failed: %w", err)
	}

	logger.Info("session finished", "component", "app", "x_wins", tally.XWins, "o_wins", tally.OWins, "draws", tally.Draws)

	return nil
}

func newOutput(conf *config.Config) *termenv.Output {
	if conf.Color {
		return termenv.NewOutput(os.Stdout)
	}

	return termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
}

// newPositionCache returns nil for the "none" backend; the solver then searches uncached.
// The returned close func is safe to call more than once.
func newPositionCache(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.PositionRepository, func(), error) {
	switch conf.Cache.Backend {
	case config.CacheNone:
		return nil, func() {}, nil
	case config.CacheRedis:
		if conf.Cache.Redis.Host == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, conf.Cache.Redis.GetRedisAddr(), conf.Cache.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeFn := sync.OnceFunc(func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		})

		cache := repository.NewTieredPositionRepository(
			repository.NewMemoryPositionRepository(),
			repository.NewPositionRepository(redisStorage.Client),
		)

		return cache, closeFn, nil
	default:
		return repository.NewMemoryPositionRepository(), func() {}, nil
	}
}
