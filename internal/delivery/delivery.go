// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a server that accepts external traffic (HTTP today).
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
