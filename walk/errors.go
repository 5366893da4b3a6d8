// Package walk: sentinel error set.

package walk

import "errors"

var (
	// ErrInfeasibleStart is returned by Init when the supplied starting
	// point is not strictly interior. Fatal: no walk can proceed from an
	// infeasible seed.
	ErrInfeasibleStart = errors.New("walk: starting point not strictly interior")

	// ErrNotInitialized is returned by Step before a successful Init.
	ErrNotInitialized = errors.New("walk: walker not initialized")

	// ErrDirectionBudget is returned when direction resampling exhausted
	// its budget without finding a non-degenerate chord; in practice this
	// indicates a lower-dimensional or badly scaled body.
	ErrDirectionBudget = errors.New("walk: direction resampling budget exhausted")

	// ErrBadOptions is returned by Options.Validate for negative or
	// non-finite tunables.
	ErrBadOptions = errors.New("walk: invalid options")
)
