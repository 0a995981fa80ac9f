package request

import (
	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	HouseholdID *uuid.UUID `json:"householdId,omitempty"`
	ItemID      uuid.UUID  `json:"itemId" binding:"required"`
	QtyOffered  *float64   `json:"qtyOffered" binding:"required"`
	ExpiresAt   *Date      `json:"expiresAt,omitempty"`
}

type ClaimOfferRequest struct {
	OfferID uuid.UUID `json:"offerId" binding:"required"`
}
