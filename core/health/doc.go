// Package health exposes liveness and readiness endpoints for orchestrators.
//
// Handlers:
//   - Liveness: process is running (no dependency checks)
//   - Readiness: all dependencies are available
//   - NoContent: returns 204 for minimal overhead
//
// Dependency checks must follow the func(context.Context) error signature.
package health
