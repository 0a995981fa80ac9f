package commands

import (
	"context"

	"pantryshare/internal/domain/notification"
	"pantryshare/internal/pkg/clock"
	"pantryshare/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateNotificationParams struct {
	HouseholdID uuid.UUID
	UserID      *uuid.UUID
	Kind        string
	Payload     map[string]any
}

type MarkSeenParams struct {
	UserID uuid.UUID
	IDs    []uuid.UUID
}

type MarkSeenResult struct {
	Updated int64
}

type NotificationCommands interface {
	Create(ctx context.Context, p CreateNotificationParams) (uuid.UUID, error)
	MarkSeen(ctx context.Context, p MarkSeenParams) (*MarkSeenResult, error)
}

type notificationCommandsImpl struct {
	notifRepo NotificationRepository
	pool      *pgxpool.Pool
	clock     clock.Clock
}

func NewNotificationCommands(notifRepo NotificationRepository, pool *pgxpool.Pool, clk clock.Clock) NotificationCommands {
	return &notificationCommandsImpl{notifRepo: notifRepo, pool: pool, clock: clk}
}

func (c *notificationCommandsImpl) Create(ctx context.Context, p CreateNotificationParams) (uuid.UUID, error) {
	n, err := notification.NewNotification(p.HouseholdID, p.UserID, p.Kind, p.Payload, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidNotification)
	}

	if err := c.notifRepo.Create(ctx, c.pool, n); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return n.ID(), nil
}

// MarkSeen records the caller in the seen-by set of each listed notification.
// Re-marking is a no-op, so Updated counts only first-time acknowledgments.
func (c *notificationCommandsImpl) MarkSeen(ctx context.Context, p MarkSeenParams) (*MarkSeenResult, error) {
	updated, err := c.notifRepo.MarkSeen(ctx, c.pool, p.IDs, p.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &MarkSeenResult{Updated: updated}, nil
}
