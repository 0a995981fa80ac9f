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

const DefaultHouseholdName = "Default Household"

func DefaultHouseholdID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var householdID uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM households WHERE name = $1 LIMIT 1", DefaultHouseholdName).Scan(&householdID)
	require.NoError(t, err)
	return householdID
}

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	householdID := DefaultHouseholdID(t, db)

	ctx := context.Background()
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, household_id, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, householdID, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestHousehold(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	householdID := uuid.New()
	ctx := context.Background()

	err := db.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO households (id, name)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM households WHERE name = $2)
			RETURNING id
		)
		SELECT id FROM inserted
		UNION ALL
		SELECT id FROM households WHERE name = $2
		LIMIT 1`, householdID, name).Scan(&householdID)
	require.NoError(t, err)

	return householdID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO households (id, name)
		SELECT gen_random_uuid(), 'Default Household'
		WHERE NOT EXISTS (SELECT 1 FROM households WHERE name = 'Default Household');
	`)
	if err != nil {
		return err
	}

	// Catalog entries the ingest matching tests rely on. lower(display_name)
	// is unique, so reseeding after a reset is a no-op conflict.
	_, err = pool.Exec(ctx, `
		INSERT INTO products (id, display_name, category, default_shelf_life_days) VALUES
		    (gen_random_uuid(), 'Yogurt', 'dairy', 14),
		    (gen_random_uuid(), 'Whole Milk', 'dairy', 7),
		    (gen_random_uuid(), 'Bread', 'bakery', 5)
		ON CONFLICT DO NOTHING;
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
