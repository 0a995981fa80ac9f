//go:build unit

package item_test

import (
	"testing"
	"time"

	"pantryshare/internal/domain/item"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemParams() item.NewItemParams {
	return item.NewItemParams{
		HouseholdID:  uuid.New(),
		OwnerID:      uuid.New(),
		DisplayName:  "Whole Milk",
		Qty:          1,
		Unit:         "l",
		PurchaseDate: date(2024, 1, 10),
		ExpiryDate:   date(2024, 1, 15),
	}
}

func TestNewItem(t *testing.T) {
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		actual, err := item.NewItem(validItemParams(), now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Whole Milk", actual.DisplayName())
		assert.Equal(t, "l", actual.Unit())
		assert.False(t, actual.Offered())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, now, actual.UpdatedAt())
	})

	t.Run("display name is trimmed", func(t *testing.T) {
		p := validItemParams()
		p.DisplayName = "  Yogurt  "

		actual, err := item.NewItem(p, now)
		require.NoError(t, err)

		assert.Equal(t, "Yogurt", actual.DisplayName())
	})

	t.Run("empty display name rejected", func(t *testing.T) {
		p := validItemParams()
		p.DisplayName = "   "

		actual, err := item.NewItem(p, now)

		require.Nil(t, actual)
		require.ErrorIs(t, err, item.ErrEmptyDisplayName)
	})

	t.Run("unit defaults to count", func(t *testing.T) {
		p := validItemParams()
		p.Unit = ""

		actual, err := item.NewItem(p, now)
		require.NoError(t, err)

		assert.Equal(t, "count", actual.Unit())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		item1, err1 := item.NewItem(validItemParams(), now)
		item2, err2 := item.NewItem(validItemParams(), now)

		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, item1.ID(), item2.ID())
	})
}
