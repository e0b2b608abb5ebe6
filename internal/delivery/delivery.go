// Package delivery defines the contract every transport implementation
// (HTTP today, possibly others later) must satisfy.
package delivery

import "context"

// Delivery is a long-running transport serving the application's operations.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
