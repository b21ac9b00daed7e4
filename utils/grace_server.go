package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cppla/quoramock/config"
)

const (
	DEFAULT_READ_TIMEOUT     = 60 * time.Second
	DEFAULT_WRITE_TIMEOUT    = DEFAULT_READ_TIMEOUT
	DEFAULT_SHUTDOWN_TIMEOUT = 30 * time.Second
)

// ShutdownHook releases a resource once the HTTP server has drained.
type ShutdownHook func(ctx context.Context) error

// Server wraps http.Server to support graceful shutdown.
type Server struct {
	*http.Server

	shutdownTimeout time.Duration
	hooks           []ShutdownHook
}

// NewServer creates a Server with timeouts and handler.
func NewServer(addr string, handler http.Handler, readTimeout, writeTimeout, shutdownTimeout time.Duration) *Server {
	if readTimeout <= 0 {
		readTimeout = DEFAULT_READ_TIMEOUT
	}
	if writeTimeout <= 0 {
		writeTimeout = DEFAULT_WRITE_TIMEOUT
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = DEFAULT_SHUTDOWN_TIMEOUT
	}
	return &Server{
		Server: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// OnShutdown registers hooks run in order after the HTTP server stopped.
func (srv *Server) OnShutdown(hooks ...ShutdownHook) {
	srv.hooks = append(srv.hooks, hooks...)
}

// ListenAndServe listens on srv.Addr and serves until ctx is cancelled.
func (srv *Server) ListenAndServe(ctx context.Context) error {
	addr := srv.Addr
	if addr == "" {
		addr = ":http"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("net.Listen error: %w", err)
	}
	return srv.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests within the shutdown timeout and runs the shutdown hooks.
func (srv *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		// Serve returned before any shutdown request: listener failure.
		srv.runHooks()
		return err
	case <-ctx.Done():
	}

	Sugar.Info("graceful shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	var shutdownErr error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		Sugar.Errorf("HTTP server shutdown error: %v", err)
		shutdownErr = err
	} else {
		Sugar.Info("HTTP server shutdown success")
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) && shutdownErr == nil {
		shutdownErr = err
	}
	if err := srv.runHooks(); err != nil && shutdownErr == nil {
		shutdownErr = err
	}
	return shutdownErr
}

func (srv *Server) runHooks() error {
	ctx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()

	var errs []error
	for _, hook := range srv.hooks {
		if err := hook(ctx); err != nil {
			Logger.Error("shutdown hook failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// GraceServer starts an HTTP server that stops gracefully on SIGINT or SIGTERM.
func GraceServer(cfg config.ServerConfig, handler http.Handler, hooks ...ShutdownHook) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := NewServer(":"+cfg.Port, handler, cfg.ReadTimeout, cfg.WriteTimeout, cfg.ShutdownTimeout)
	srv.OnShutdown(hooks...)
	return srv.ListenAndServe(ctx)
}
