package delivery

import "context"

// Delivery is an inbound transport that runs until its listener closes.
type Delivery interface {
	Serve(ctx context.Context) error
}
