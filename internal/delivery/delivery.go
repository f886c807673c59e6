// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport endpoint managed by the application
// lifecycle.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
