package readstore

import (
	"context"
	"time"

	"pantryshare/internal/infra"
	"pantryshare/internal/infra/db"
	"pantryshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(pool db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: pool}
}

// Feed returns the caller's personal notifications plus all household
// broadcasts, newest first. Seen is computed against the caller only; other
// readers' progress never leaks into the row.
func (s *NotificationReadStore) Feed(ctx context.Context, householdID, userID uuid.UUID, since time.Time, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, household_id, user_id, type, payload, created_at,
		       seen_by @> ARRAY[$2]::uuid[] AS seen
		FROM notifications
		WHERE household_id = $1
		  AND (user_id = $2 OR user_id IS NULL)
		  AND created_at >= $3
		ORDER BY created_at DESC
		LIMIT $4`,
		householdID, userID, since, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load notification feed", err)
	}
	defer rows.Close()

	result := []*queries.NotificationView{}
	for rows.Next() {
		var v queries.NotificationView
		err := rows.Scan(&v.ID, &v.HouseholdID, &v.UserID, &v.Type, &v.Payload, &v.CreatedAt, &v.Seen)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read notification rows", err)
	}
	return result, nil
}
