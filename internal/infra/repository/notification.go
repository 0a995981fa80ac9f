package repository

import (
	"context"
	"encoding/json"

	"pantryshare/internal/domain/notification"
	"pantryshare/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error {
	payload, err := json.Marshal(n.Payload())
	if err != nil {
		return wrapWriteErr("failed to marshal notification payload", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO notifications (
			id, household_id, user_id, type, payload, created_at, seen_by
		) VALUES ($1, $2, $3, $4, $5, $6, '{}')`,
		n.ID(), n.HouseholdID(), n.UserID(), n.Kind(), payload, n.CreatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert notification", err)
	}
	return nil
}

// MarkSeen appends userID to the seen-by set of each listed notification. The
// containment guard makes re-marking a no-op, so the affected-row count is the
// number of notifications newly seen by this user.
func (r *NotificationRepository) MarkSeen(ctx context.Context, tx db.DBTX, ids []uuid.UUID, userID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := tx.Exec(ctx, `
		UPDATE notifications
		SET seen_by = array_append(seen_by, $2)
		WHERE id = ANY($1) AND NOT (seen_by @> ARRAY[$2]::uuid[])`,
		ids, userID,
	)
	if err != nil {
		return 0, wrapWriteErr("failed to mark notifications seen", err)
	}

	return tag.RowsAffected(), nil
}
