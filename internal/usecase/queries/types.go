package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ItemView struct {
	ID           uuid.UUID  `json:"id"`
	HouseholdID  uuid.UUID  `json:"householdId"`
	OwnerID      uuid.UUID  `json:"ownerId"`
	ProductID    *uuid.UUID `json:"productId,omitempty"`
	DisplayName  string     `json:"displayName"`
	Qty          float64    `json:"qty"`
	Unit         string     `json:"unit"`
	Category     *string    `json:"category,omitempty"`
	Storage      *string    `json:"storage,omitempty"`
	Price        *float64   `json:"price,omitempty"`
	PurchaseDate time.Time  `json:"purchaseDate"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	ReceiptID    *uuid.UUID `json:"receiptId,omitempty"`
	Offered      bool       `json:"offered"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// OfferView is the denormalized share-board row: the offer joined with a
// minimal projection of its item and the item's owner.
type OfferView struct {
	ID         uuid.UUID       `json:"id"`
	ItemID     uuid.UUID       `json:"itemId"`
	QtyOffered float64         `json:"qtyOffered"`
	CreatedAt  time.Time       `json:"createdAt"`
	ExpiresAt  *time.Time      `json:"expiresAt,omitempty"`
	ClaimedBy  *uuid.UUID      `json:"claimedBy,omitempty"`
	Item       *OfferItemView  `json:"item"`
	Owner      *OfferOwnerView `json:"owner,omitempty"`
}

type OfferItemView struct {
	ID          uuid.UUID  `json:"id"`
	DisplayName string     `json:"displayName"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	OwnerID     uuid.UUID  `json:"ownerId"`
}

type OfferOwnerView struct {
	ID    uuid.UUID `json:"id"`
	Name  *string   `json:"name,omitempty"`
	Email string    `json:"email"`
}

type NotificationView struct {
	ID          uuid.UUID       `json:"id"`
	HouseholdID uuid.UUID       `json:"householdId"`
	UserID      *uuid.UUID      `json:"userId,omitempty"`
	Type        string          `json:"type"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"createdAt"`
	Seen        bool            `json:"seen"` // whether the requesting user has seen it
}

type ProductHit struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Category    *string   `json:"category,omitempty"`
}

type HouseholdView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
