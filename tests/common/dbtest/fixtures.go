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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// UnitFixture describes a published unit with a flat nightly price.
type UnitFixture struct {
	OwnerID    uuid.UUID
	Title      string
	MinNights  int
	MaxNights  int
	MaxGuests  int
	BasePrice  int64
	BaseGuests int
}

func DefaultUnit(ownerID uuid.UUID) UnitFixture {
	return UnitFixture{
		OwnerID:    ownerID,
		Title:      "Harbour View Studio",
		MinNights:  1,
		MaxNights:  30,
		MaxGuests:  4,
		BasePrice:  100,
		BaseGuests: 2,
	}
}

// CreateTestUnit inserts the unit and its pricing rule and returns the unit id.
func CreateTestUnit(t *testing.T, db DBLike, f UnitFixture) uuid.UUID {
	t.Helper()

	unitID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO units (id, owner_id, title, status, min_nights, max_nights, max_guests) VALUES ($1, $2, $3, 'published', $4, $5, $6)",
		unitID, f.OwnerID, f.Title, f.MinNights, f.MaxNights, f.MaxGuests)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO pricing_rules (unit_id, currency, base_price, base_guests) VALUES ($1, 'USD', $2, $3)",
		unitID, f.BasePrice, f.BaseGuests)
	require.NoError(t, err)

	return unitID
}

func CreateTestPromo(t *testing.T, db DBLike, code string, percent int, usageLimit *int) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO promo_codes (id, code, discount_type, discount_value, usage_limit) VALUES ($1, $2, 'percentage', $3, $4)",
		promoID, code, percent, usageLimit)
	require.NoError(t, err)
	return promoID
}

func BlockTestDate(t *testing.T, db DBLike, unitID uuid.UUID, day time.Time, source string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO blocked_dates (unit_id, blocked_date, source) VALUES ($1, $2, $3)",
		unitID, day, source)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
