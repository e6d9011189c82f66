// Package server runs the development HTTP server.
//
// It binds the TCP listener, builds the Fiber application that serves the
// project directory, and blocks until the serve context is cancelled.
//
// # Configuration
//
// The Config struct defines the bind host and port, the served root directory,
// directory browsing, and the page opened in the browser on startup.
//
// # Lifecycle
//
// Listen and Serve are separate so that a bind failure (ErrPortInUse) is
// reported before anything is printed or a browser is opened:
//
//	ln, err := server.Listen(cfg.Server)
//	if err != nil {
//	    return err
//	}
//	srv := server.New(cfg.Server, logg)
//	return srv.Serve(ctx, ln)
package server
