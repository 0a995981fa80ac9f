package readstore

import (
	"context"
	"errors"

	"pantryshare/internal/infra"
	"pantryshare/internal/infra/db"
	"pantryshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type HouseholdReadStore struct {
	db db.DBTX
}

func NewHouseholdReadStore(pool db.DBTX) *HouseholdReadStore {
	return &HouseholdReadStore{db: pool}
}

// Current returns the active household. Deployments run a single household;
// the oldest row is authoritative if more than one ever exists.
func (s *HouseholdReadStore) Current(ctx context.Context) (*queries.HouseholdView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM households ORDER BY created_at ASC LIMIT 1`,
	)

	var v queries.HouseholdView
	if err := row.Scan(&v.ID, &v.Name, &v.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "no household exists", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load current household", err)
	}
	return &v, nil
}
