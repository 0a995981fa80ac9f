package repository

import (
	"context"

	"pantryshare/internal/domain/household"
	"pantryshare/internal/infra/db"
)

type HouseholdRepository struct{}

func NewHouseholdRepository() *HouseholdRepository {
	return &HouseholdRepository{}
}

func (r *HouseholdRepository) Create(ctx context.Context, tx db.DBTX, h *household.Household) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO households (id, name, created_at) VALUES ($1, $2, $3)`,
		h.ID(), h.Name(), h.CreatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to insert household", err)
	}
	return nil
}
