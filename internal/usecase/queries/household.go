package queries

import (
	"context"

	"pantryshare/internal/infra"
)

type HouseholdQueries interface {
	// Current returns the active household, or nil when none exists yet.
	Current(ctx context.Context) (*HouseholdView, error)
}

type HouseholdReadStore interface {
	Current(ctx context.Context) (*HouseholdView, error)
}

type householdQueriesImpl struct {
	store HouseholdReadStore
}

func NewHouseholdQueries(store HouseholdReadStore) HouseholdQueries {
	return &householdQueriesImpl{store: store}
}

func (q *householdQueriesImpl) Current(ctx context.Context) (*HouseholdView, error) {
	view, err := q.store.Current(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return view, nil
}
