// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a long-running transport entrypoint (HTTP server, worker, ...).
type Delivery interface {
	Serve(ctx context.Context) error
}
