// Package delivery defines the contract every inbound adapter satisfies.
package delivery

import "context"

// Delivery is a long-running inbound surface (HTTP server, polling loop).
// Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
