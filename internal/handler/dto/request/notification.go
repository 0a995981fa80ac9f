package request

import (
	"github.com/google/uuid"
)

type CreateNotificationRequest struct {
	HouseholdID *uuid.UUID     `json:"householdId,omitempty"`
	UserID      *uuid.UUID     `json:"userId,omitempty"`
	Type        string         `json:"type" binding:"required"`
	Payload     map[string]any `json:"payload,omitempty"`
}

type MarkSeenRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required"`
}
