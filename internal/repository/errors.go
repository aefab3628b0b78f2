// Package repository defines error types that are reused across the data
// layer. These sentinel values allow higher layers such as handlers to
// distinguish between failure scenarios without inspecting error strings.
package repository

import "errors"

// ErrDuplicateID is returned by Add when a reservation with the same ID is
// already present. The store never silently overwrites an existing record;
// "one id, one record" must stay provable. Handlers should translate this
// into an HTTP 409 response.
var ErrDuplicateID = errors.New("duplicate reservation id")
