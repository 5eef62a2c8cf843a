// SPDX-License-Identifier: MIT

// Package selection: sentinel errors.
//
// Only the runtime-arity entry points (SelectRank, SelectIndexFunc, Median…)
// can fail. Fixed-arity networks and the range layer are total: emptiness is
// reported through the end index or an ok flag, never through an error.
// Match with errors.Is; wrap with fmt.Errorf("ctx: %w", ErrX) if needed.
package selection

import "errors"

var (
	// ErrArity is returned when the number of values has no network,
	// i.e. it is outside 1..7.
	ErrArity = errors.New("selection: arity out of range 1..7")

	// ErrRank is returned when the requested rank is outside 0..n-1.
	ErrRank = errors.New("selection: rank out of range")
)
