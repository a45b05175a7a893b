// Package log provides a logging abstraction for splitview components.
//
// This package defines a Logger interface that can be implemented by any
// logging library. A zerolog adapter and a no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("rendered comparison",
//	    log.Float64("fraction", 0.5),
//	    log.Size("size", 400, 300))
//
// Or discard everything in tests:
//
//	logger := log.NewNoopLogger()
package log
