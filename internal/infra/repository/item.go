package repository

import (
	"context"
	"time"

	"pantryshare/internal/domain/item"
	"pantryshare/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

const insertItemSQL = `
INSERT INTO items (
	id, household_id, owner_id, product_id, display_name, qty, unit,
	category, storage, price, purchase_date, expiry_date, receipt_id,
	offered, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

// CreateBatch persists all items from one ingest call. Callers run it inside a
// transaction; a failing line fails the whole batch.
func (r *ItemRepository) CreateBatch(ctx context.Context, tx db.DBTX, items []*item.Item) error {
	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(insertItemSQL,
			it.ID(), it.HouseholdID(), it.OwnerID(), it.ProductID(), it.DisplayName(),
			it.Qty(), it.Unit(), it.Category(), it.Storage(), it.Price(),
			it.PurchaseDate(), it.ExpiryDate(), it.ReceiptID(),
			it.Offered(), it.CreatedAt(), it.UpdatedAt(),
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range items {
		if _, err := results.Exec(); err != nil {
			return wrapWriteErr("failed to insert item batch", err)
		}
	}

	return nil
}

// SetOffered flips the item's offered flag. Zero rows affected is not an
// error: the flag is a visibility convenience, not core offer state.
func (r *ItemRepository) SetOffered(ctx context.Context, tx db.DBTX, itemID uuid.UUID, offered bool, now time.Time) error {
	_, err := tx.Exec(ctx,
		`UPDATE items SET offered = $2, updated_at = $3 WHERE id = $1`,
		itemID, offered, now,
	)
	if err != nil {
		return wrapWriteErr("failed to update item offered flag", err)
	}
	return nil
}

// TransferOwnership moves the item to the claimant and clears the offered flag
// in one statement.
func (r *ItemRepository) TransferOwnership(ctx context.Context, tx db.DBTX, itemID, newOwnerID uuid.UUID, now time.Time) error {
	_, err := tx.Exec(ctx,
		`UPDATE items SET owner_id = $2, offered = FALSE, updated_at = $3 WHERE id = $1`,
		itemID, newOwnerID, now,
	)
	if err != nil {
		return wrapWriteErr("failed to transfer item ownership", err)
	}
	return nil
}
