//go:build unit

package offer_test

import (
	"testing"
	"time"

	"pantryshare/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewShareOffer(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("default TTL applied when no expiry given", func(t *testing.T) {
		o := offer.NewShareOffer(uuid.New(), uuid.New(), 1, nil, now)

		assert.Equal(t, now.Add(offer.DefaultTTL), o.ExpiresAt())
		assert.Nil(t, o.ClaimedBy())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("explicit expiry preserved", func(t *testing.T) {
		explicit := now.Add(2 * time.Hour)

		o := offer.NewShareOffer(uuid.New(), uuid.New(), 0.5, &explicit, now)

		assert.Equal(t, explicit, o.ExpiresAt())
		assert.Equal(t, 0.5, o.QtyOffered())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		o1 := offer.NewShareOffer(uuid.New(), uuid.New(), 1, nil, now)
		o2 := offer.NewShareOffer(uuid.New(), uuid.New(), 1, nil, now)

		assert.NotEqual(t, o1.ID(), o2.ID())
	})
}
