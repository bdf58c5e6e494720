package repository

import (
	"context"
	"time"

	"workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CartRepository stores session- and account-owned cart snapshots. The owner
// tag maps to mutually exclusive nullable columns enforced by a CHECK
// constraint; the unique (cart_id, workshop_id) index enforces cart
// uniqueness at the store level.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func ownerColumns(owner cart.Owner) (sessionKey pgtype.Text, accountID pgtype.UUID) {
	if owner.IsSession() {
		return pgconv.StringToPgtype(owner.SessionKey()), pgtype.UUID{}
	}
	return pgtype.Text{}, pgconv.UUIDToPgtype(owner.AccountID())
}

// FindCartID resolves a cart row for an owner. Returns uuid.Nil without error
// when the owner has no cart yet.
func (r *CartRepository) FindCartID(ctx context.Context, dbtx db.DBTX, owner cart.Owner) (uuid.UUID, error) {
	sessionKey, accountID := ownerColumns(owner)
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
SELECT id FROM carts
WHERE ($1::text IS NOT NULL AND session_key = $1)
   OR ($2::uuid IS NOT NULL AND account_id = $2)`,
		sessionKey, accountID,
	).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, nil
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find cart", err)
	}
	return id, nil
}

// EnsureCart creates the owner's cart row on first use.
func (r *CartRepository) EnsureCart(ctx context.Context, dbtx db.DBTX, owner cart.Owner, now time.Time) (uuid.UUID, error) {
	id, err := r.FindCartID(ctx, dbtx, owner)
	if err != nil {
		return uuid.Nil, err
	}
	if id != uuid.Nil {
		return id, nil
	}

	sessionKey, accountID := ownerColumns(owner)
	id = uuid.New()
	_, err = dbtx.Exec(ctx, `
INSERT INTO carts (id, session_key, account_id, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT DO NOTHING`,
		id, sessionKey, accountID, now,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create cart", err)
	}
	// A concurrent request may have created the row first; re-resolve.
	return r.FindCartID(ctx, dbtx, owner)
}

func (r *CartRepository) FindByOwner(ctx context.Context, dbtx db.DBTX, owner cart.Owner) (cart.Snapshot, error) {
	cartID, err := r.FindCartID(ctx, dbtx, owner)
	if err != nil {
		return cart.Snapshot{}, err
	}
	if cartID == uuid.Nil {
		return cart.NewSnapshot(owner, nil), nil
	}

	rows, err := dbtx.Query(ctx, `
SELECT workshop_id, pricing_option_id, unit_price_cents, added_at
FROM cart_items
WHERE cart_id = $1
ORDER BY added_at, workshop_id`,
		cartID,
	)
	if err != nil {
		return cart.Snapshot{}, infra.WrapRepoErr("failed to query cart items", err)
	}
	defer rows.Close()

	var lines []cart.Line
	for rows.Next() {
		var (
			line            cart.Line
			pricingOptionID pgtype.UUID
		)
		if err := rows.Scan(&line.WorkshopID, &pricingOptionID, &line.UnitPriceCents, &line.AddedAt); err != nil {
			return cart.Snapshot{}, infra.WrapRepoErr("failed to scan cart item", err)
		}
		line.PricingOptionID = pgconv.UUIDPtrFromPgtype(pricingOptionID)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return cart.Snapshot{}, infra.WrapRepoErr("failed to read cart items", err)
	}
	return cart.NewSnapshot(owner, lines), nil
}

func (r *CartRepository) AddItem(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID, line cart.Line) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO cart_items (cart_id, workshop_id, pricing_option_id, unit_price_cents, added_at)
VALUES ($1, $2, $3, $4, $5)`,
		cartID, line.WorkshopID, pgconv.UUIDPtrToPgtype(line.PricingOptionID), line.UnitPriceCents, line.AddedAt,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("workshop already in cart", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to add cart item", err)
	}
	if err := r.touch(ctx, dbtx, cartID, line.AddedAt); err != nil {
		return err
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, dbtx db.DBTX, cartID, workshopID uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND workshop_id = $2`,
		cartID, workshopID,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to remove cart item", err)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveItems deletes only the named workshop lines. The merge path uses this
// to clear the session items it actually read, so a concurrent add to the
// session cart is not silently dropped.
func (r *CartRepository) RemoveItems(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID, workshopIDs []uuid.UUID) error {
	if len(workshopIDs) == 0 {
		return nil
	}
	_, err := dbtx.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND workshop_id = ANY($2)`,
		cartID, workshopIDs,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to remove cart items", err)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}

// DeleteExpired drops untouched session carts past the retention window.
// Account carts are kept.
func (r *CartRepository) DeleteExpired(ctx context.Context, dbtx db.DBTX, before time.Time) (int64, error) {
	tag, err := dbtx.Exec(ctx,
		`DELETE FROM carts WHERE session_key IS NOT NULL AND updated_at < $1`,
		before,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired carts", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CartRepository) touch(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID, now time.Time) error {
	_, err := dbtx.Exec(ctx, `UPDATE carts SET updated_at = $2 WHERE id = $1`, cartID, now)
	if err != nil {
		return infra.WrapRepoErr("failed to touch cart", err)
	}
	return nil
}
