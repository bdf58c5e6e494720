package repository

import (
	"context"

	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
)

// Ledger bound: only the newest maxLedgerEntries event ids are retained.
// Events older than the window are protected by the status guards instead.
const maxLedgerEntries = 1000

// ProcessedEventRepository is the durable dedup ledger for gateway events.
// It is idempotency metadata, not a business entity.
type ProcessedEventRepository struct{}

func NewProcessedEventRepository() *ProcessedEventRepository {
	return &ProcessedEventRepository{}
}

func (r *ProcessedEventRepository) Seen(ctx context.Context, dbtx db.DBTX, eventID string) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM processed_events WHERE event_id = $1)`,
		eventID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check processed event", err)
	}
	return exists, nil
}

// Record inserts the event id and trims the ledger back to its bound,
// oldest-first. Safe to call twice for the same id.
func (r *ProcessedEventRepository) Record(ctx context.Context, dbtx db.DBTX, eventID string) error {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO processed_events (event_id) VALUES ($1) ON CONFLICT (event_id) DO NOTHING`,
		eventID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record processed event", err)
	}

	_, err = dbtx.Exec(ctx, `
DELETE FROM processed_events
WHERE position <= (SELECT MAX(position) FROM processed_events) - $1`,
		maxLedgerEntries,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to trim processed event ledger", err)
	}
	return nil
}
