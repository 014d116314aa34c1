// Package delivery holds the transports the gateway serves on.
package delivery

import "context"

// Delivery is a server started by the fx app and stopped through its lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
