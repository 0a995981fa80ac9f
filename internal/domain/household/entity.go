package household

import (
	"strings"
	"time"

	"pantryshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptyName = errs.New("household name is empty")

// Household is the tenant scope for items, offers and notifications.
type Household struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
}

func NewHousehold(name string, now time.Time) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Household{
		id:        uuid.New(),
		name:      name,
		createdAt: now,
	}, nil
}

func (h *Household) ID() uuid.UUID        { return h.id }
func (h *Household) Name() string         { return h.name }
func (h *Household) CreatedAt() time.Time { return h.createdAt }
