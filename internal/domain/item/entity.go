package item

import (
	"strings"
	"time"

	"pantryshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyDisplayName = errs.New("item display name is empty")

// Item is one inventory unit. The offered flag is flipped when a share offer
// references the item and reset when the offer is claimed; ownership moves to
// the claimant at the same point.
type Item struct {
	id           uuid.UUID
	householdID  uuid.UUID
	ownerID      uuid.UUID
	productID    *uuid.UUID
	displayName  string
	qty          float64
	unit         string
	category     *string
	storage      *string
	price        *float64
	purchaseDate time.Time
	expiryDate   time.Time
	receiptID    *uuid.UUID
	offered      bool
	createdAt    time.Time
	updatedAt    time.Time
}

type NewItemParams struct {
	HouseholdID  uuid.UUID
	OwnerID      uuid.UUID
	ProductID    *uuid.UUID
	DisplayName  string
	Qty          float64
	Unit         string
	Category     *string
	Storage      *string
	Price        *float64
	PurchaseDate time.Time
	ExpiryDate   time.Time
	ReceiptID    *uuid.UUID
}

func NewItem(p NewItemParams, now time.Time) (*Item, error) {
	name := strings.TrimSpace(p.DisplayName)
	if name == "" {
		return nil, ErrEmptyDisplayName
	}

	unit := p.Unit
	if unit == "" {
		unit = "count"
	}

	return &Item{
		id:           uuid.New(),
		householdID:  p.HouseholdID,
		ownerID:      p.OwnerID,
		productID:    p.ProductID,
		displayName:  name,
		qty:          p.Qty,
		unit:         unit,
		category:     p.Category,
		storage:      p.Storage,
		price:        p.Price,
		purchaseDate: p.PurchaseDate,
		expiryDate:   p.ExpiryDate,
		receiptID:    p.ReceiptID,
		offered:      false,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (i *Item) ID() uuid.UUID           { return i.id }
func (i *Item) HouseholdID() uuid.UUID  { return i.householdID }
func (i *Item) OwnerID() uuid.UUID      { return i.ownerID }
func (i *Item) ProductID() *uuid.UUID   { return i.productID }
func (i *Item) DisplayName() string     { return i.displayName }
func (i *Item) Qty() float64            { return i.qty }
func (i *Item) Unit() string            { return i.unit }
func (i *Item) Category() *string       { return i.category }
func (i *Item) Storage() *string        { return i.storage }
func (i *Item) Price() *float64         { return i.price }
func (i *Item) PurchaseDate() time.Time { return i.purchaseDate }
func (i *Item) ExpiryDate() time.Time   { return i.expiryDate }
func (i *Item) ReceiptID() *uuid.UUID   { return i.receiptID }
func (i *Item) Offered() bool           { return i.offered }
func (i *Item) CreatedAt() time.Time    { return i.createdAt }
func (i *Item) UpdatedAt() time.Time    { return i.updatedAt }
