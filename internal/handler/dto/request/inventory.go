package request

import (
	"encoding/json"

	"pantryshare/internal/usecase/commands"

	"github.com/google/uuid"
)

type IngestReceiptRequest struct {
	StoreName      *string         `json:"storeName,omitempty"`
	PurchaseDate   *Date           `json:"purchaseDate,omitempty"`
	Total          *float64        `json:"total,omitempty"`
	ImageURLs      []string        `json:"imageUrls,omitempty"`
	NonFoodIgnored []string        `json:"nonFoodIgnored,omitempty"`
	Raw            json.RawMessage `json:"raw,omitempty"`
}

type IngestLineItemRequest struct {
	Name                   string   `json:"name" binding:"required"`
	Qty                    float64  `json:"qty"`
	Unit                   string   `json:"unit"`
	Price                  *float64 `json:"price,omitempty"`
	Category               *string  `json:"category,omitempty"`
	Storage                *string  `json:"storage,omitempty"`
	EstimatedShelfLifeDays *int32   `json:"estimatedShelfLifeDays,omitempty"`
	PurchaseDate           *Date    `json:"purchaseDate,omitempty"`
	ExpiryDate             *Date    `json:"expiryDate,omitempty"`
}

type IngestItemsRequest struct {
	HouseholdID *uuid.UUID              `json:"householdId,omitempty"`
	Receipt     *IngestReceiptRequest   `json:"receipt,omitempty"`
	Items       []IngestLineItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r IngestItemsRequest) ToParams(householdID, ownerID uuid.UUID) commands.IngestParams {
	var receipt *commands.ReceiptParams
	if r.Receipt != nil {
		receipt = &commands.ReceiptParams{
			StoreName:      r.Receipt.StoreName,
			PurchaseDate:   r.Receipt.PurchaseDate.ToTimePtr(),
			Total:          r.Receipt.Total,
			ImageURLs:      r.Receipt.ImageURLs,
			NonFoodIgnored: r.Receipt.NonFoodIgnored,
			Raw:            r.Receipt.Raw,
		}
	}

	lines := make([]commands.LineItemParams, len(r.Items))
	for i, it := range r.Items {
		qty := it.Qty
		if qty <= 0 {
			qty = 1
		}
		lines[i] = commands.LineItemParams{
			Name:                   it.Name,
			Qty:                    qty,
			Unit:                   it.Unit,
			Price:                  it.Price,
			Category:               it.Category,
			Storage:                it.Storage,
			EstimatedShelfLifeDays: it.EstimatedShelfLifeDays,
			PurchaseDate:           it.PurchaseDate.ToTimePtr(),
			ExpiryDate:             it.ExpiryDate.ToTimePtr(),
		}
	}

	return commands.IngestParams{
		HouseholdID: householdID,
		OwnerID:     ownerID,
		Receipt:     receipt,
		Lines:       lines,
	}
}
