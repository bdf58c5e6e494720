//go:build unit || e2e

package dbtest

import (
	"context"

	"workshop-enroll/internal/infra/db"
)

// StubUnitOfWork satisfies shared.UnitOfWork without a database. The callback
// receives a nil DBTX; command tests pair it with gomock repositories that
// accept gomock.Any() for the transaction argument.
type StubUnitOfWork struct {
	// WithinErr, when set, is returned instead of running the callback.
	WithinErr error
}

func (s *StubUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	if s.WithinErr != nil {
		return s.WithinErr
	}
	return fn(ctx, nil)
}

func (s *StubUnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}
