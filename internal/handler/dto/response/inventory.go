package response

import (
	"pantryshare/internal/usecase/commands"
	"pantryshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type IngestResponse struct {
	OK           bool        `json:"ok"`
	ItemsCreated int         `json:"itemsCreated"`
	ReceiptID    *uuid.UUID  `json:"receiptId,omitempty"`
	ItemIDs      []uuid.UUID `json:"itemIds"`
}

type ItemListResponse struct {
	OK    bool                `json:"ok"`
	Items []*queries.ItemView `json:"items"`
}

func FromIngestResult(r *commands.IngestResult) *IngestResponse {
	return &IngestResponse{
		OK:           true,
		ItemsCreated: r.ItemsCreated,
		ReceiptID:    r.ReceiptID,
		ItemIDs:      r.ItemIDs,
	}
}

func FromItemViews(items []*queries.ItemView) *ItemListResponse {
	if items == nil {
		items = []*queries.ItemView{}
	}
	return &ItemListResponse{OK: true, Items: items}
}
