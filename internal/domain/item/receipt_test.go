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

func TestNewReceipt(t *testing.T) {
	now := time.Now()

	t.Run("basic success case", func(t *testing.T) {
		storeName := "Corner Market"
		total := 23.50

		actual := item.NewReceipt(item.NewReceiptParams{
			HouseholdID:    uuid.New(),
			UserID:         uuid.New(),
			StoreName:      &storeName,
			PurchaseDate:   date(2024, 3, 1),
			Total:          &total,
			ImageURLs:      []string{"https://cdn.example.com/r1.jpg"},
			NonFoodIgnored: []string{"paper towels"},
		}, now)

		require.NotNil(t, actual)
		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Corner Market", *actual.StoreName())
		assert.Equal(t, []string{"https://cdn.example.com/r1.jpg"}, actual.ImageURLs())
		assert.Equal(t, []string{"paper towels"}, actual.NonFoodIgnored())
		assert.Equal(t, now, actual.CreatedAt())
	})

	t.Run("omitted arrays become empty, not nil", func(t *testing.T) {
		// The array columns are NOT NULL; a nil slice would insert SQL NULL
		// and fail the whole ingest transaction.
		actual := item.NewReceipt(item.NewReceiptParams{
			HouseholdID:  uuid.New(),
			UserID:       uuid.New(),
			PurchaseDate: date(2024, 3, 1),
		}, now)

		require.NotNil(t, actual.ImageURLs())
		assert.Empty(t, actual.ImageURLs())
		require.NotNil(t, actual.NonFoodIgnored())
		assert.Empty(t, actual.NonFoodIgnored())
	})
}
