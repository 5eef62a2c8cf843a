// SPDX-License-Identifier: MIT

// Package census: sentinel errors.
package census

import "errors"

var (
	// ErrNoNetworks is returned by Run when there is nothing to check.
	ErrNoNetworks = errors.New("census: no networks to check")

	// ErrUnknownNetwork is returned by Lookup for a name missing from the
	// catalog. It is wrapped with the offending name.
	ErrUnknownNetwork = errors.New("census: unknown network")
)
