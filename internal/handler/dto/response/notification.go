package response

import (
	"pantryshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationCreatedResponse struct {
	OK             bool      `json:"ok"`
	NotificationID uuid.UUID `json:"notificationId"`
}

type FeedResponse struct {
	OK            bool                        `json:"ok"`
	Notifications []*queries.NotificationView `json:"notifications"`
}

type MarkSeenResponse struct {
	OK      bool  `json:"ok"`
	Updated int64 `json:"updated"`
}

func FromNotificationID(id uuid.UUID) *NotificationCreatedResponse {
	return &NotificationCreatedResponse{OK: true, NotificationID: id}
}

func FromNotificationViews(views []*queries.NotificationView) *FeedResponse {
	if views == nil {
		views = []*queries.NotificationView{}
	}
	return &FeedResponse{OK: true, Notifications: views}
}
