package item

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is created once per scan and never updated. Items produced from the
// same ingest call reference it by id.
type Receipt struct {
	id             uuid.UUID
	householdID    uuid.UUID
	userID         uuid.UUID
	storeName      *string
	purchaseDate   time.Time
	total          *float64
	imageURLs      []string
	nonFoodIgnored []string
	raw            []byte
	createdAt      time.Time
}

type NewReceiptParams struct {
	HouseholdID    uuid.UUID
	UserID         uuid.UUID
	StoreName      *string
	PurchaseDate   time.Time
	Total          *float64
	ImageURLs      []string
	NonFoodIgnored []string
	Raw            []byte
}

func NewReceipt(p NewReceiptParams, now time.Time) *Receipt {
	// Both array columns are NOT NULL; absent input means empty, never NULL.
	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	nonFoodIgnored := p.NonFoodIgnored
	if nonFoodIgnored == nil {
		nonFoodIgnored = []string{}
	}

	return &Receipt{
		id:             uuid.New(),
		householdID:    p.HouseholdID,
		userID:         p.UserID,
		storeName:      p.StoreName,
		purchaseDate:   p.PurchaseDate,
		total:          p.Total,
		imageURLs:      imageURLs,
		nonFoodIgnored: nonFoodIgnored,
		raw:            p.Raw,
		createdAt:      now,
	}
}

func (r *Receipt) ID() uuid.UUID            { return r.id }
func (r *Receipt) HouseholdID() uuid.UUID   { return r.householdID }
func (r *Receipt) UserID() uuid.UUID        { return r.userID }
func (r *Receipt) StoreName() *string       { return r.storeName }
func (r *Receipt) PurchaseDate() time.Time  { return r.purchaseDate }
func (r *Receipt) Total() *float64          { return r.total }
func (r *Receipt) ImageURLs() []string      { return r.imageURLs }
func (r *Receipt) NonFoodIgnored() []string { return r.nonFoodIgnored }
func (r *Receipt) Raw() []byte              { return r.raw }
func (r *Receipt) CreatedAt() time.Time     { return r.createdAt }
