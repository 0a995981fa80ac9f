package repository

import (
	"context"

	"pantryshare/internal/domain/item"
	"pantryshare/internal/infra/db"
)

type ReceiptRepository struct{}

func NewReceiptRepository() *ReceiptRepository {
	return &ReceiptRepository{}
}

func (r *ReceiptRepository) Create(ctx context.Context, tx db.DBTX, rec *item.Receipt) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO receipts (
			id, household_id, user_id, store_name, purchase_date, total,
			image_urls, non_food_ignored, raw, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID(), rec.HouseholdID(), rec.UserID(), rec.StoreName(), rec.PurchaseDate(),
		rec.Total(), rec.ImageURLs(), rec.NonFoodIgnored(), rec.Raw(), rec.CreatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert receipt", err)
	}
	return nil
}
