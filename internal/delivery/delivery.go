// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running server owned by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
