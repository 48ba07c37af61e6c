package port

import (
	"context"

	"github.com/VVVARDAN/Caching-Service/internal/domain"
)

type Publisher interface {
	PublishPayloadStored(ctx context.Context, event domain.PayloadStored) error
}
