// Package logger provides a structured logging facility based on Zap.
//
// Console output is the default: capitalised colored levels and ISO8601
// timestamps on stdout, so the request log reads well in a terminal next to
// the startup banner. JSON encoding is available for piping into other tools.
//
// # Context Awareness
//
// WithRayID extracts the request id assigned by the rayid middleware from a
// Fiber context and attaches it to the log entry.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("Not found", zap.String("path", c.Path()))
package logger
