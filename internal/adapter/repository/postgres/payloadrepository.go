package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VVVARDAN/Caching-Service/internal/port"
)

// PayloadRepository persists transformation outputs in Postgres.
type PayloadRepository struct {
	DB *pgxpool.Pool
}

func NewPayloadRepository(pool *pgxpool.Pool) *PayloadRepository {
	return &PayloadRepository{DB: pool}
}

// GetOrCreate inserts the row unless the identifier is already present.
// ON CONFLICT DO NOTHING makes the write atomic under concurrent identical
// submissions: exactly one caller creates the row, the rest no-op.
func (r *PayloadRepository) GetOrCreate(ctx context.Context, identifier, output string) (bool, error) {
	exec := getExecutor(ctx, r.DB)
	tag, err := exec.Exec(ctx,
		"INSERT INTO payloads (identifier, output) VALUES ($1, $2) ON CONFLICT (identifier) DO NOTHING",
		identifier, output)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PayloadRepository) Find(ctx context.Context, identifier string) (string, error) {
	exec := getExecutor(ctx, r.DB)
	var output string
	err := exec.QueryRow(ctx, "SELECT output FROM payloads WHERE identifier = $1", identifier).Scan(&output)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", port.ErrPayloadNotFound
		}
		return "", err
	}
	return output, nil
}

var _ port.PayloadRepository = (*PayloadRepository)(nil)
