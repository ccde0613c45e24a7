// Package delivery defines the contract every transport-facing server implements.
package delivery

import "context"

// Delivery is a long-running transport endpoint (HTTP server, worker, ...).
type Delivery interface {
	// Serve blocks serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
