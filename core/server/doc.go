// Package server wraps http.Server with graceful shutdown, functional
// options, and env-tagged configuration.
//
//	s, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		log.Error("failed to create server", logger.Error(err))
//		os.Exit(1)
//	}
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(s.Run(ctx, r))
//
// Run returns an errgroup-compatible closure: on context cancellation the
// server shuts down gracefully within the configured timeout, and the
// cancellation itself is not reported as an error.
package server
