// Package delivery contains the inbound adapters of the repository: the development gateway's
// HTTP server and the storefront command line.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
