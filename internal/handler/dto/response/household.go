package response

import (
	"pantryshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type HouseholdCreatedResponse struct {
	OK          bool      `json:"ok"`
	HouseholdID uuid.UUID `json:"householdId"`
}

type HouseholdResponse struct {
	OK        bool                   `json:"ok"`
	Household *queries.HouseholdView `json:"household"`
}

type ProductSearchResponse struct {
	OK       bool                  `json:"ok"`
	Products []*queries.ProductHit `json:"products"`
}

func FromHouseholdID(id uuid.UUID) *HouseholdCreatedResponse {
	return &HouseholdCreatedResponse{OK: true, HouseholdID: id}
}

func FromHouseholdView(v *queries.HouseholdView) *HouseholdResponse {
	return &HouseholdResponse{OK: true, Household: v}
}

func FromProductHits(hits []*queries.ProductHit) *ProductSearchResponse {
	if hits == nil {
		hits = []*queries.ProductHit{}
	}
	return &ProductSearchResponse{OK: true, Products: hits}
}
