package port

import (
	"context"
	"errors"
)

// ErrPayloadNotFound is returned when no payload exists for an identifier.
var ErrPayloadNotFound = errors.New("payload not found")

// PayloadRepository persists transformation outputs keyed by identifier.
type PayloadRepository interface {
	// GetOrCreate writes output under identifier unless a row already
	// exists, reporting whether a new row was created. Existing rows are
	// never overwritten, so concurrent identical submissions settle on a
	// single durable row.
	GetOrCreate(ctx context.Context, identifier, output string) (created bool, err error)
	// Find returns the stored output for identifier, or ErrPayloadNotFound.
	Find(ctx context.Context, identifier string) (string, error)
}
