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

// CreateTestRoom inserts a room directly, bypassing the upload pipeline.
func CreateTestRoom(t *testing.T, db DBLike, title, roomType string, nightlyCents int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO rooms (id, title, nightly_cents, room_type) VALUES ($1, $2, $3, $4)",
		roomID, title, nightlyCents, roomType)
	require.NoError(t, err)

	return roomID
}

func CreateTestCustomer(t *testing.T, db DBLike, firstName, lastName, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO customers (id, first_name, last_name, email) VALUES ($1, $2, $3, $4)",
		customerID, firstName, lastName, email)
	require.NoError(t, err)

	return customerID
}

func CreateTestMeal(t *testing.T, db DBLike, title, category string, priceCents int64) uuid.UUID {
	t.Helper()

	mealID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO meals (id, title, price_cents, category) VALUES ($1, $2, $3, $4)",
		mealID, title, priceCents, category)
	require.NoError(t, err)

	return mealID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// The weekly menu keys off a fixed set of day rows.
	_, err := pool.Exec(ctx, `
		INSERT INTO weekly_menu_days (day) VALUES
		    ('monday'), ('tuesday'), ('wednesday'), ('thursday'),
		    ('friday'), ('saturday'), ('sunday')
		ON CONFLICT (day) DO NOTHING;
	`)
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
