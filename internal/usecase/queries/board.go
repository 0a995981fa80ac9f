package queries

import (
	"context"

	"github.com/google/uuid"
)

const boardListLimit = 200

// BoardQueries builds the share-board view. Offers whose item has been
// deleted never reach the result; the read store's join drops them instead of
// surfacing partial rows.
type BoardQueries interface {
	ListOffers(ctx context.Context, householdID uuid.UUID) ([]*OfferView, error)
}

type OfferReadStore interface {
	ListUnclaimed(ctx context.Context, householdID uuid.UUID, limit int32) ([]*OfferView, error)
}

type boardQueriesImpl struct {
	store OfferReadStore
}

func NewBoardQueries(store OfferReadStore) BoardQueries {
	return &boardQueriesImpl{store: store}
}

func (q *boardQueriesImpl) ListOffers(ctx context.Context, householdID uuid.UUID) ([]*OfferView, error) {
	return q.store.ListUnclaimed(ctx, householdID, boardListLimit)
}
