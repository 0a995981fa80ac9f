package readstore

import (
	"context"
	"strconv"
	"strings"
	"time"

	"pantryshare/internal/infra"
	"pantryshare/internal/infra/db"
	"pantryshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(pool db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: pool}
}

const itemColumns = `
	id, household_id, owner_id, product_id, display_name, qty, unit,
	category, storage, price, purchase_date, expiry_date, receipt_id,
	offered, created_at, updated_at`

func (s *ItemReadStore) List(ctx context.Context, householdID uuid.UUID, nameContains, storage *string, limit int32) ([]*queries.ItemView, error) {
	sql := `SELECT` + itemColumns + ` FROM items WHERE household_id = $1`
	args := []any{householdID}

	if nameContains != nil {
		if trimmed := strings.TrimSpace(*nameContains); trimmed != "" {
			args = append(args, containsPattern(trimmed))
			sql += ` AND display_name ILIKE $2`
		}
	}
	if storage != nil && *storage != "" {
		args = append(args, *storage)
		sql += ` AND storage = $` + strconv.Itoa(len(args))
	}

	args = append(args, limit)
	sql += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list items", err)
	}
	defer rows.Close()

	return scanItemViews(rows)
}

func (s *ItemReadStore) SoonExpiring(ctx context.Context, householdID, ownerID uuid.UUID, from, to time.Time, limit int32) ([]*queries.ItemView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT`+itemColumns+`
		FROM items
		WHERE household_id = $1
		  AND owner_id = $2
		  AND offered = FALSE
		  AND expiry_date >= $3
		  AND expiry_date <= $4
		ORDER BY expiry_date ASC
		LIMIT $5`,
		householdID, ownerID, from, to, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list soon-expiring items", err)
	}
	defer rows.Close()

	return scanItemViews(rows)
}

func scanItemViews(rows pgx.Rows) ([]*queries.ItemView, error) {
	result := []*queries.ItemView{}
	for rows.Next() {
		var v queries.ItemView
		err := rows.Scan(
			&v.ID, &v.HouseholdID, &v.OwnerID, &v.ProductID, &v.DisplayName,
			&v.Qty, &v.Unit, &v.Category, &v.Storage, &v.Price,
			&v.PurchaseDate, &v.ExpiryDate, &v.ReceiptID,
			&v.Offered, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan item row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read item rows", err)
	}
	return result, nil
}
