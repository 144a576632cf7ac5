package ports

import "context"

//go:generate mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks

// Locker provides cross-process task locks.
type Locker interface {
	// Acquire takes every named lock in order and returns a function that
	// releases them all. On error no lock is held.
	Acquire(ctx context.Context, names []string) (release func(), err error)
}
