package repository

import (
	"context"
	"errors"

	"pantryshare/internal/domain/offer"
	"pantryshare/internal/infra/db"
	"pantryshare/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OfferRepository struct{}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

func (r *OfferRepository) Create(ctx context.Context, tx db.DBTX, o *offer.ShareOffer) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO share_offers (
			id, household_id, item_id, qty_offered, created_at, expires_at, claimed_by
		) VALUES ($1, $2, $3, $4, $5, $6, NULL)`,
		o.ID(), o.HouseholdID(), o.ItemID(), o.QtyOffered(), o.CreatedAt(), o.ExpiresAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert share offer", err)
	}
	return nil
}

// Claim is the one compare-and-set in the system. The WHERE clause matches at
// most once per offer lifetime, so under concurrent claimants exactly one
// caller gets a row back; everyone else gets nil. Expiry is not part of the
// predicate.
func (r *OfferRepository) Claim(ctx context.Context, tx db.DBTX, offerID, claimantID uuid.UUID) (*commands.ClaimedOffer, error) {
	row := tx.QueryRow(ctx, `
		UPDATE share_offers
		SET claimed_by = $2
		WHERE id = $1 AND claimed_by IS NULL
		RETURNING item_id, household_id`,
		offerID, claimantID,
	)

	var won commands.ClaimedOffer
	if err := row.Scan(&won.ItemID, &won.HouseholdID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already claimed, or no such offer. Not an error.
			return nil, nil
		}
		return nil, wrapWriteErr("failed to claim share offer", err)
	}

	return &won, nil
}
