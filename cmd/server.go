package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// APIServer serves route until SIGINT or SIGTERM, then drains in-flight
// requests for up to shutdownTimeout.
func APIServer(route http.Handler, port string, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      route,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
		ErrorLog:     zap.NewStdLog(logger.Named("http")),
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		logger.Info("Shutting down server", zap.String("signal", s.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("Server running", zap.String("addr", srv.Addr))

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
