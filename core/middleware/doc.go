// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// static file handler.
//
// # Components
//
//   - RayID: Assigns a unique request id to every incoming request, stores it
//     in the context locals and echoes it in the X-Ray-ID response header.
//   - AccessLog: Writes one timestamped zap entry per request with method,
//     path, status and duration.
//   - CORS: Adds permissive cross-origin headers to every response and answers
//     OPTIONS preflight requests with an empty 200.
//
// The server registers them globally in that order, ahead of the static handler.
package middleware
