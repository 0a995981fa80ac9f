package commands

import (
	"context"

	"pantryshare/internal/domain/household"
	"pantryshare/internal/pkg/clock"
	"pantryshare/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HouseholdCommands interface {
	Create(ctx context.Context, name string) (uuid.UUID, error)
}

type householdCommandsImpl struct {
	householdRepo HouseholdRepository
	pool          *pgxpool.Pool
	clock         clock.Clock
}

func NewHouseholdCommands(householdRepo HouseholdRepository, pool *pgxpool.Pool, clk clock.Clock) HouseholdCommands {
	return &householdCommandsImpl{householdRepo: householdRepo, pool: pool, clock: clk}
}

func (c *householdCommandsImpl) Create(ctx context.Context, name string) (uuid.UUID, error) {
	h, err := household.NewHousehold(name, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidHousehold)
	}

	if err := c.householdRepo.Create(ctx, c.pool, h); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return h.ID(), nil
}
