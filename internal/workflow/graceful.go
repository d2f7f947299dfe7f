package workflow

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imtaco/live-viewer/internal/log"
)

type GracefulShutdownAction func(ctx context.Context)

// WaitGracefulShutdown blocks until SIGINT, SIGTERM or ctx is done, then
// runs action with a context bounded by timeout. A panicking action is
// logged and counts as finished.
func WaitGracefulShutdown(
	ctx context.Context,
	logger *log.Logger,
	action GracefulShutdownAction,
	timeout time.Duration,
) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	logger.Info("Graceful shutdown handler registered")
	select {
	case sig := <-sigs:
		logger.Info("Received signal", log.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("Context done", log.Error(ctx.Err()))
	}

	RunWithTimeout(logger, action, timeout)
}

// RunWithTimeout runs action and returns when it finishes or timeout
// elapses, whichever comes first.
func RunWithTimeout(logger *log.Logger, action GracefulShutdownAction, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic during graceful shutdown", log.Any("error", r))
			}
		}()
		logger.Info("Starting graceful shutdown")
		action(ctx)
	}()

	select {
	case <-done:
		logger.Info("Graceful shutdown completed", log.Duration("took", time.Since(start)))
		return true
	case <-ctx.Done():
		logger.Warn("Shutdown timeout exceeded, forcing exit", log.Duration("timeout", timeout))
		return false
	}
}
