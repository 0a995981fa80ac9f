package response

import (
	"time"

	"pantryshare/internal/usecase/commands"
	"pantryshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferCreatedResponse struct {
	OK        bool      `json:"ok"`
	OfferID   uuid.UUID `json:"offerId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ClaimResponse struct {
	OK      bool       `json:"ok"`
	Claimed bool       `json:"claimed"`
	ItemID  *uuid.UUID `json:"itemId,omitempty"`
	Reason  string     `json:"reason,omitempty"`
}

type OfferListResponse struct {
	OK     bool                 `json:"ok"`
	Offers []*queries.OfferView `json:"offers"`
}

func FromCreateOfferResult(r *commands.CreateOfferResult) *OfferCreatedResponse {
	return &OfferCreatedResponse{OK: true, OfferID: r.OfferID, ExpiresAt: r.ExpiresAt}
}

func FromClaimResult(r *commands.ClaimOfferResult) *ClaimResponse {
	return &ClaimResponse{OK: true, Claimed: r.Claimed, ItemID: r.ItemID, Reason: r.Reason}
}

func FromOfferViews(offers []*queries.OfferView) *OfferListResponse {
	if offers == nil {
		offers = []*queries.OfferView{}
	}
	return &OfferListResponse{OK: true, Offers: offers}
}
