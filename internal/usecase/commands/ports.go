package commands

import (
	"context"
	"time"

	"pantryshare/internal/domain/household"
	"pantryshare/internal/domain/item"
	"pantryshare/internal/domain/notification"
	"pantryshare/internal/domain/offer"
	"pantryshare/internal/infra/db"
	"pantryshare/internal/pkg/errs"

	"github.com/google/uuid"
)

// Sentinel errors shared by the write-side usecases.
var (
	ErrNoLineItems             = errs.New("items required")
	ErrInvalidLineItem         = errs.New("invalid line item")
	ErrInvalidNotification     = errs.New("invalid notification")
	ErrInvalidHousehold        = errs.New("invalid household")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Write-side snapshots prevent dependency on read-side query types.
type ProductSnapshot struct {
	ID                   uuid.UUID
	NormalizedName       string
	DefaultShelfLifeDays *int32
}

// ClaimedOffer is returned by a winning compare-and-set claim; nil means the
// offer was already claimed or never existed.
type ClaimedOffer struct {
	ItemID      uuid.UUID
	HouseholdID uuid.UUID
}

type ReceiptRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec *item.Receipt) error
}

type ItemRepository interface {
	CreateBatch(ctx context.Context, tx db.DBTX, items []*item.Item) error
	SetOffered(ctx context.Context, tx db.DBTX, itemID uuid.UUID, offered bool, now time.Time) error
	TransferOwnership(ctx context.Context, tx db.DBTX, itemID, newOwnerID uuid.UUID, now time.Time) error
}

type OfferRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *offer.ShareOffer) error
	Claim(ctx context.Context, tx db.DBTX, offerID, claimantID uuid.UUID) (*ClaimedOffer, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error
	MarkSeen(ctx context.Context, tx db.DBTX, ids []uuid.UUID, userID uuid.UUID) (int64, error)
}

type HouseholdRepository interface {
	Create(ctx context.Context, tx db.DBTX, h *household.Household) error
}

// ProductLookup is the batched catalog matcher: one exact lookup per distinct
// normalized name.
type ProductLookup interface {
	FindByNormalizedNames(ctx context.Context, names []string) ([]*ProductSnapshot, error)
}
