package commands

import (
	"context"
	"log/slog"
	"time"

	"pantryshare/internal/domain/notification"
	"pantryshare/internal/domain/offer"
	"pantryshare/internal/pkg/clock"
	"pantryshare/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateOfferParams struct {
	HouseholdID uuid.UUID
	ItemID      uuid.UUID
	QtyOffered  float64
	ExpiresAt   *time.Time
}

type CreateOfferResult struct {
	OfferID   uuid.UUID
	ExpiresAt time.Time
}

type ClaimOfferParams struct {
	OfferID    uuid.UUID
	ClaimantID uuid.UUID
}

// ClaimOfferResult reports the outcome of a claim attempt. Losing the race is
// a normal outcome, not an error: Claimed is false and Reason says why.
type ClaimOfferResult struct {
	Claimed bool
	ItemID  *uuid.UUID
	Reason  string
}

const ReasonAlreadyClaimed = "already-claimed-or-missing"

type OfferCommands interface {
	Create(ctx context.Context, p CreateOfferParams) (*CreateOfferResult, error)
	Claim(ctx context.Context, p ClaimOfferParams) (*ClaimOfferResult, error)
}

type offerCommandsImpl struct {
	offerRepo OfferRepository
	itemRepo  ItemRepository
	notifRepo NotificationRepository
	pool      *pgxpool.Pool
	clock     clock.Clock
	logger    *slog.Logger
}

func NewOfferCommands(
	offerRepo OfferRepository,
	itemRepo ItemRepository,
	notifRepo NotificationRepository,
	pool *pgxpool.Pool,
	clk clock.Clock,
	logger *slog.Logger,
) OfferCommands {
	return &offerCommandsImpl{
		offerRepo: offerRepo,
		itemRepo:  itemRepo,
		notifRepo: notifRepo,
		pool:      pool,
		clock:     clk,
		logger:    logger,
	}
}

// Create posts an item to the share board. The offer insert is the only write
// that can fail the request; flagging the item as offered and announcing the
// offer are best-effort follow-ups that get logged and swallowed.
func (c *offerCommandsImpl) Create(ctx context.Context, p CreateOfferParams) (*CreateOfferResult, error) {
	now := c.clock.Now()

	o := offer.NewShareOffer(p.HouseholdID, p.ItemID, p.QtyOffered, p.ExpiresAt, now)
	if err := c.offerRepo.Create(ctx, c.pool, o); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.itemRepo.SetOffered(ctx, c.pool, p.ItemID, true, now); err != nil {
		c.logger.Warn("failed to flag item as offered",
			slog.String("offer_id", o.ID().String()),
			slog.String("item_id", p.ItemID.String()),
			slog.String("error", err.Error()),
		)
	}

	c.broadcast(ctx, p.HouseholdID, notification.TypeOfferCreated, map[string]any{
		"offerId":    o.ID().String(),
		"itemId":     p.ItemID.String(),
		"qtyOffered": p.QtyOffered,
	}, now)

	return &CreateOfferResult{OfferID: o.ID(), ExpiresAt: o.ExpiresAt()}, nil
}

// Claim races for an open offer. The conditional update in the repository is
// the entire mutual-exclusion story; there is no surrounding lock and no
// transaction to serialize on.
func (c *offerCommandsImpl) Claim(ctx context.Context, p ClaimOfferParams) (*ClaimOfferResult, error) {
	now := c.clock.Now()

	won, err := c.offerRepo.Claim(ctx, c.pool, p.OfferID, p.ClaimantID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if won == nil {
		return &ClaimOfferResult{Claimed: false, Reason: ReasonAlreadyClaimed}, nil
	}

	if err := c.itemRepo.TransferOwnership(ctx, c.pool, won.ItemID, p.ClaimantID, now); err != nil {
		c.logger.Warn("failed to transfer item after claim",
			slog.String("offer_id", p.OfferID.String()),
			slog.String("item_id", won.ItemID.String()),
			slog.String("claimant_id", p.ClaimantID.String()),
			slog.String("error", err.Error()),
		)
	}

	c.broadcast(ctx, won.HouseholdID, notification.TypeOfferClaimed, map[string]any{
		"offerId":   p.OfferID.String(),
		"itemId":    won.ItemID.String(),
		"claimedBy": p.ClaimantID.String(),
	}, now)

	itemID := won.ItemID
	return &ClaimOfferResult{Claimed: true, ItemID: &itemID}, nil
}

func (c *offerCommandsImpl) broadcast(ctx context.Context, householdID uuid.UUID, kind string, payload map[string]any, now time.Time) {
	n, err := notification.NewNotification(householdID, nil, kind, payload, now)
	if err != nil {
		c.logger.Warn("failed to build broadcast notification",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
		return
	}
	if err := c.notifRepo.Create(ctx, c.pool, n); err != nil {
		c.logger.Warn("failed to persist broadcast notification",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
	}
}
