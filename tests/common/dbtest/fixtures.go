//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"workshop-enroll/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	passwordHashOnce sync.Once
	passwordHash     string
)

// testPasswordHash hashes the shared test password once per process. MinCost
// keeps seeding fast.
func testPasswordHash() string {
	passwordHashOnce.Do(func() {
		hashed, err := bcrypt.GenerateFromPassword([]byte(builder.DefaultTestPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		passwordHash = string(hashed)
	})
	return passwordHash
}

func CreateTestAccount(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	accountID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO accounts (id, email, name, password_hash, role)
		VALUES ($1, $2, 'Test Account', $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		accountID, email, testPasswordHash(), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM accounts WHERE email = $1", email).Scan(&accountID)
	}

	return accountID
}

func CreateTestWorkshop(t *testing.T, db DBLike, title string, capacity int, waitlistEnabled bool) uuid.UUID {
	t.Helper()

	workshopID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO workshops (id, title, capacity, waitlist_enabled, published, checkout_enabled, base_price_cents, currency)
		VALUES ($1, $2, $3, $4, true, true, 4500, 'usd')`,
		workshopID, title, capacity, waitlistEnabled)
	require.NoError(t, err)

	return workshopID
}

func CreateTestPricingOption(t *testing.T, db DBLike, workshopID uuid.UUID, label string, priceCents int64, isDefault bool) uuid.UUID {
	t.Helper()

	optionID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO workshop_pricing_options (id, workshop_id, label, price_cents, is_default)
		VALUES ($1, $2, $3, $4, $5)`,
		optionID, workshopID, label, priceCents, isDefault)
	require.NoError(t, err)

	return optionID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO accounts (id, email, name, password_hash, role)
		VALUES (gen_random_uuid(), 'admin@example.com', 'Seed Admin', $1, 'admin')
		ON CONFLICT (email) DO NOTHING`,
		testPasswordHash())
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
