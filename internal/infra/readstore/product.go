package readstore

import (
	"context"

	"pantryshare/internal/infra"
	"pantryshare/internal/infra/db"
	"pantryshare/internal/usecase/commands"
	"pantryshare/internal/usecase/queries"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(pool db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: pool}
}

// FindByNormalizedNames resolves catalog products for a set of distinct
// normalized names in one round trip. Matching is exact on the lowercased
// display name; no pattern is ever built from the input.
func (s *ProductReadStore) FindByNormalizedNames(ctx context.Context, names []string) ([]*commands.ProductSnapshot, error) {
	if len(names) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, lower(display_name), default_shelf_life_days
		FROM products
		WHERE lower(display_name) = ANY($1)`,
		names,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to look up products by name", err)
	}
	defer rows.Close()

	result := []*commands.ProductSnapshot{}
	for rows.Next() {
		var snap commands.ProductSnapshot
		if err := rows.Scan(&snap.ID, &snap.NormalizedName, &snap.DefaultShelfLifeDays); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan product row", err)
		}
		result = append(result, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read product rows", err)
	}
	return result, nil
}

func (s *ProductReadStore) Search(ctx context.Context, q string, limit int32) ([]*queries.ProductHit, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, display_name, category
		FROM products
		WHERE display_name ILIKE $1
		LIMIT $2`,
		containsPattern(q), limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to search products", err)
	}
	defer rows.Close()

	result := []*queries.ProductHit{}
	for rows.Next() {
		var hit queries.ProductHit
		if err := rows.Scan(&hit.ID, &hit.DisplayName, &hit.Category); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan product hit", err)
		}
		result = append(result, &hit)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read product hits", err)
	}
	return result, nil
}
