package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"devserver/core/middleware/accesslog"
	"devserver/core/middleware/cors"
	"devserver/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// ErrPortInUse is returned by Listen when another process holds the port.
var ErrPortInUse = errors.New("address already in use")

// Server serves the project directory over HTTP.
type Server struct {
	cfg    Config
	app    *fiber.App
	logger *zap.Logger
}

// Listen binds the TCP listener for cfg.
// A port conflict is reported as ErrPortInUse; any other failure is wrapped as is.
func Listen(cfg Config) (net.Listener, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ln, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		if isAddrInUse(err) {
			return nil, fmt.Errorf("port %d: %w", cfg.Port, ErrPortInUse)
		}
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Address(), err)
	}
	return ln, nil
}

// New builds the Fiber application that serves cfg.Root.
func New(cfg Config, logger *zap.Logger) *Server {
	root := cfg.Root
	if root == "" {
		root = "."
	}

	app := fiber.New(fiber.Config{
		AppName:               "devserver",
		DisableStartupMessage: true, // the CLI prints its own banner
	})

	// Order matters: the ray id must exist before the access log reads it,
	// and CORS headers are applied after the static handler has run.
	app.Use(recover.New())
	app.Use(rayid.New())
	app.Use(accesslog.New(logger))
	app.Use(cors.New(cors.ConfigDefault))

	// The filesystem middleware opens the file on every request, so edits made
	// while the server runs are served in full on the next reload.
	app.Use(filesystem.New(filesystem.Config{
		Root:   http.Dir(root),
		Browse: cfg.Browse,
		Index:  "index.html",
	}))

	return &Server{cfg: cfg, app: app, logger: logger}
}

// App exposes the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Serve accepts connections on ln until ctx is cancelled or the listener fails.
// Cancellation is a clean stop and returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server",
			zap.String("address", ln.Addr().String()),
			zap.String("root", s.cfg.Root),
		)
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	if err := s.app.ShutdownWithTimeout(s.shutdownTimeout()); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(s.cfg.ShutdownTimeoutSeconds) * time.Second
}
