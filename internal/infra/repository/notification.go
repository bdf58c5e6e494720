package repository

import (
	"context"
	"time"

	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository enqueues fire-and-forget notification jobs. Inserting
// in the same transaction as the business write is what makes "exactly one
// dispatch per effect" hold; an external worker owns delivery and templating.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), kind, topic, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
