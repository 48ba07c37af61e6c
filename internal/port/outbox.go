package port

import "context"

// OutboxMessage is a stored event awaiting delivery.
type OutboxMessage struct {
	ID      string
	Topic   string
	Payload []byte
}

// OutboxRepository buffers events next to the data they describe so both
// commit together; a relay delivers them afterwards.
type OutboxRepository interface {
	// SaveEvent persists an event within the current transaction.
	SaveEvent(ctx context.Context, id, topic string, payload []byte) error
	// ListPending returns undelivered messages up to the given limit.
	ListPending(ctx context.Context, limit int) ([]OutboxMessage, error)
	// MarkProcessed marks a message as delivered.
	MarkProcessed(ctx context.Context, id string) error
}
