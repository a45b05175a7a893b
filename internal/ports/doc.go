// Package ports defines the interfaces that connect the comparison session
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [ImageDecoder] / [ImageEncoder]: image file formats
//   - [Resizer]: scaling used by the resize alignment mode
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters in internal/adapters implement them with golang.org/x/image and
// zerolog.
package ports
