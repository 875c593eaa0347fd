// Package delivery defines the contract every transport server
// implements, so main can start them uniformly.
package delivery

import "context"

// Delivery is a transport server that blocks in Serve until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
