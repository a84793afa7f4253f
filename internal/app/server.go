package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start begins serving HTTP and returns a channel that closes when a
// termination signal is received.
func (a *App) Start() <-chan struct{} {
	terminateChan := make(chan struct{})

	go func() {
		slog.Info("HTTP server starting", "address", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to serve HTTP", "error", err)
			close(terminateChan)
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("termination signal received")
		close(terminateChan)
	}()

	return terminateChan
}

// Serve serves HTTP on the provided listener. It is intended for tests that
// need a real listener without the signal handling of Start.
func (a *App) Serve(l net.Listener) error {
	if err := a.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop gracefully shuts down the server and releases all resources in order.
func (a *App) Stop(ctx context.Context) {
	slog.Info("shutting down application")

	a.cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown HTTP server", "error", err)
	}

	a.goroutine.Wait()

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.Error("failed to close resource", "name", closer.name, "error", err)

			continue
		}
		slog.Info("resource closed", "name", closer.name)
	}

	slog.Info("application stopped")
}
