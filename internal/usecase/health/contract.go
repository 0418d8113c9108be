package health

import "context"

// Pinger checks that a data source is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
