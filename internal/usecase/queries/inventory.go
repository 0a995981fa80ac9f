package queries

import (
	"context"
	"time"

	"pantryshare/internal/pkg/clock"

	"github.com/google/uuid"
)

const (
	defaultListLimit  = 50
	maxListLimit      = 200
	soonExpiringLimit = 50
	defaultWindowDays = 3
)

type ListItemsFilter struct {
	NameContains *string
	Storage      *string
	Limit        int
}

type InventoryQueries interface {
	List(ctx context.Context, householdID uuid.UUID, filter ListItemsFilter) ([]*ItemView, error)
	SoonExpiring(ctx context.Context, householdID, ownerID uuid.UUID, windowDays int) ([]*ItemView, error)
}

type ItemReadStore interface {
	List(ctx context.Context, householdID uuid.UUID, nameContains, storage *string, limit int32) ([]*ItemView, error)
	SoonExpiring(ctx context.Context, householdID, ownerID uuid.UUID, from, to time.Time, limit int32) ([]*ItemView, error)
}

type inventoryQueriesImpl struct {
	store ItemReadStore
	clock clock.Clock
}

func NewInventoryQueries(store ItemReadStore, clk clock.Clock) InventoryQueries {
	return &inventoryQueriesImpl{store: store, clock: clk}
}

func (q *inventoryQueriesImpl) List(ctx context.Context, householdID uuid.UUID, filter ListItemsFilter) ([]*ItemView, error) {
	// Out-of-range limits are clamped, not rejected.
	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return q.store.List(ctx, householdID, filter.NameContains, filter.Storage, int32(limit))
}

func (q *inventoryQueriesImpl) SoonExpiring(ctx context.Context, householdID, ownerID uuid.UUID, windowDays int) ([]*ItemView, error) {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}

	now := q.clock.Now()
	to := now.AddDate(0, 0, windowDays)
	return q.store.SoonExpiring(ctx, householdID, ownerID, now, to, soonExpiringLimit)
}
