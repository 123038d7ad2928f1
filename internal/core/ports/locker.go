package ports

import "context"

// Locker serializes work on one key, typically an order id, across requests.
// Lock blocks until the key is acquired or ctx is done and returns the unlock function.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
