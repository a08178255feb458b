// Package delivery holds the inbound adapters: the HTTP API, the Pub/Sub push worker and the cron trigger.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the fx application.
type Delivery interface {
	// Serve blocks until the adapter stops or fails to start.
	Serve(ctx context.Context) error
}
