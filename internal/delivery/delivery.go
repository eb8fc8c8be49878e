// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application, e.g. the HTTP server.
type Delivery interface {
	// Serve blocks, accepting and handling requests until shutdown.
	Serve(ctx context.Context) error
}
