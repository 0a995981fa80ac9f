package queries

import (
	"context"
	"time"

	"pantryshare/internal/domain/notification"
	"pantryshare/internal/pkg/clock"

	"github.com/google/uuid"
)

const feedLimit = 50

// NotificationQueries serves the polling feed: the caller's personal
// notifications plus every household broadcast, including broadcasts the
// caller's own actions triggered. Filtering those out is a client concern.
type NotificationQueries interface {
	Feed(ctx context.Context, householdID, userID uuid.UUID) ([]*NotificationView, error)
}

type NotificationReadStore interface {
	Feed(ctx context.Context, householdID, userID uuid.UUID, since time.Time, limit int32) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
	clock clock.Clock
}

func NewNotificationQueries(store NotificationReadStore, clk clock.Clock) NotificationQueries {
	return &notificationQueriesImpl{store: store, clock: clk}
}

func (q *notificationQueriesImpl) Feed(ctx context.Context, householdID, userID uuid.UUID) ([]*NotificationView, error) {
	since := q.clock.Now().Add(-notification.RetentionWindow)
	return q.store.Feed(ctx, householdID, userID, since, feedLimit)
}
