package readstore

import (
	"context"

	"pantryshare/internal/infra"
	"pantryshare/internal/infra/db"
	"pantryshare/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferReadStore struct {
	db db.DBTX
}

func NewOfferReadStore(pool db.DBTX) *OfferReadStore {
	return &OfferReadStore{db: pool}
}

// ListUnclaimed returns the share board: unclaimed offers joined with their
// item projection and the item's owner. The inner join on items silently
// drops offers whose item has been deleted; a missing owner row only blanks
// the owner projection.
func (s *OfferReadStore) ListUnclaimed(ctx context.Context, householdID uuid.UUID, limit int32) ([]*queries.OfferView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT
			o.id, o.item_id, o.qty_offered, o.created_at, o.expires_at,
			i.id, i.display_name, i.expiry_date, i.owner_id,
			u.id, u.name, u.email
		FROM share_offers o
		JOIN items i ON i.id = o.item_id
		LEFT JOIN users u ON u.id = i.owner_id
		WHERE o.household_id = $1 AND o.claimed_by IS NULL
		ORDER BY o.created_at DESC
		LIMIT $2`,
		householdID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list share offers", err)
	}
	defer rows.Close()

	result := []*queries.OfferView{}
	for rows.Next() {
		var (
			v          queries.OfferView
			item       queries.OfferItemView
			ownerID    *uuid.UUID
			ownerName  *string
			ownerEmail *string
		)
		err := rows.Scan(
			&v.ID, &v.ItemID, &v.QtyOffered, &v.CreatedAt, &v.ExpiresAt,
			&item.ID, &item.DisplayName, &item.ExpiryDate, &item.OwnerID,
			&ownerID, &ownerName, &ownerEmail,
		)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan share offer row", err)
		}

		v.Item = &item
		if ownerID != nil && ownerEmail != nil {
			v.Owner = &queries.OfferOwnerView{ID: *ownerID, Name: ownerName, Email: *ownerEmail}
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read share offer rows", err)
	}
	return result, nil
}
