package shared

import (
	"context"

	"workshop-enroll/internal/infra/db"
)

// UnitOfWork runs a function inside a database transaction. All status
// transitions in the fulfillment core go through Within so the
// read-modify-write is atomic; WithDB is for single-statement reads that need
// no transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}
