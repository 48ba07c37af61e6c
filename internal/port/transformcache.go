package port

import "context"

// TransformCache memoizes single element transformations. It is a lookaside
// optimization: callers must treat errors as misses and recompute locally.
type TransformCache interface {
	// Get returns the memoized transformation of input, with ok reporting
	// whether the entry was present.
	Get(ctx context.Context, input string) (transformed string, ok bool, err error)
	// Put records the transformation of input. Values are deterministic, so
	// concurrent writers storing the same input are harmless.
	Put(ctx context.Context, input, transformed string) error
}
