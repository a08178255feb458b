package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"relay/config"
	"relay/internal/domain/lifecycle"
	"relay/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer serves an echo instance over h2c and drains it on fx stop.
type EchoServer struct {
	name   string
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// NewEchoServer wraps e as a Delivery named name, e.g. "API" or "Worker".
func NewEchoServer(lc fx.Lifecycle, name string, cfg *config.Config, logger *slog.Logger, e *echo.Echo) *EchoServer {
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	srv := &EchoServer{
		name:   name,
		cfg:    cfg,
		logger: logger,
		echo:   e,
	}

	lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv
}

func (s *EchoServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("server", s.name), slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.echo.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server", slog.String("server", s.name))

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
