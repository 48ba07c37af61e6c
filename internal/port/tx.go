package port

import "context"

// TxManager runs a function within a single storage transaction. The callback
// receives a context carrying the transaction; repositories pick it up from
// there.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
