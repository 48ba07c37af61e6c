package memory

import (
	"context"

	"github.com/VVVARDAN/Caching-Service/internal/port"
)

// TxManager satisfies port.TxManager for backends without transactions: the
// callback simply runs against the ambient context.
type TxManager struct{}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (TxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ port.TxManager = (*TxManager)(nil)
