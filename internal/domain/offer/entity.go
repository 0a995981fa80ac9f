package offer

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the advisory lifetime of an unclaimed offer. Expiry is storage
// cleanup, not a state transition: a claim against an expired-but-unpurged
// offer is still decided solely by the claimed_by compare-and-set.
const DefaultTTL = 48 * time.Hour

// ShareOffer is an owner's proposal to transfer an item to another household
// member. At most one claimant ever wins; once claimed the offer is immutable.
type ShareOffer struct {
	id          uuid.UUID
	householdID uuid.UUID
	itemID      uuid.UUID
	qtyOffered  float64
	createdAt   time.Time
	expiresAt   time.Time
	claimedBy   *uuid.UUID
}

func NewShareOffer(householdID, itemID uuid.UUID, qtyOffered float64, expiresAt *time.Time, now time.Time) *ShareOffer {
	exp := now.Add(DefaultTTL)
	if expiresAt != nil {
		exp = *expiresAt
	}

	return &ShareOffer{
		id:          uuid.New(),
		householdID: householdID,
		itemID:      itemID,
		qtyOffered:  qtyOffered,
		createdAt:   now,
		expiresAt:   exp,
		claimedBy:   nil,
	}
}

func (o *ShareOffer) ID() uuid.UUID          { return o.id }
func (o *ShareOffer) HouseholdID() uuid.UUID { return o.householdID }
func (o *ShareOffer) ItemID() uuid.UUID      { return o.itemID }
func (o *ShareOffer) QtyOffered() float64    { return o.qtyOffered }
func (o *ShareOffer) CreatedAt() time.Time   { return o.createdAt }
func (o *ShareOffer) ExpiresAt() time.Time   { return o.expiresAt }
func (o *ShareOffer) ClaimedBy() *uuid.UUID  { return o.claimedBy }
