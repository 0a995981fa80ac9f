//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"pantryshare/internal/pkg/clock"
	"pantryshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeItemStore records the arguments the query layer passes down.
type fakeItemStore struct {
	gotNameContains *string
	gotStorage      *string
	gotLimit        int32
	gotFrom         time.Time
	gotTo           time.Time
}

func (f *fakeItemStore) List(_ context.Context, _ uuid.UUID, nameContains, storage *string, limit int32) ([]*queries.ItemView, error) {
	f.gotNameContains = nameContains
	f.gotStorage = storage
	f.gotLimit = limit
	return []*queries.ItemView{}, nil
}

func (f *fakeItemStore) SoonExpiring(_ context.Context, _, _ uuid.UUID, from, to time.Time, limit int32) ([]*queries.ItemView, error) {
	f.gotFrom = from
	f.gotTo = to
	f.gotLimit = limit
	return []*queries.ItemView{}, nil
}

func TestInventoryQueries_List_LimitClamping(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()

	cases := []struct {
		name     string
		limit    int
		expected int32
	}{
		{name: "zero becomes default", limit: 0, expected: 50},
		{name: "negative clamps to one", limit: -5, expected: 1},
		{name: "above maximum clamps to maximum", limit: 500, expected: 200},
		{name: "in-range passes through", limit: 37, expected: 37},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := &fakeItemStore{}
			q := queries.NewInventoryQueries(store, clock.NewMockClock(testNow))

			_, err := q.List(ctx, householdID, queries.ListItemsFilter{Limit: c.limit})

			require.NoError(t, err)
			assert.Equal(t, c.expected, store.gotLimit)
		})
	}
}

func TestInventoryQueries_List_Filters(t *testing.T) {
	ctx := context.Background()
	store := &fakeItemStore{}
	q := queries.NewInventoryQueries(store, clock.NewMockClock(testNow))

	name := "milk"
	storage := "fridge"
	_, err := q.List(ctx, uuid.New(), queries.ListItemsFilter{NameContains: &name, Storage: &storage})

	require.NoError(t, err)
	require.NotNil(t, store.gotNameContains)
	assert.Equal(t, "milk", *store.gotNameContains)
	require.NotNil(t, store.gotStorage)
	assert.Equal(t, "fridge", *store.gotStorage)
}

func TestInventoryQueries_SoonExpiring_Window(t *testing.T) {
	ctx := context.Background()

	t.Run("default window is three days", func(t *testing.T) {
		store := &fakeItemStore{}
		q := queries.NewInventoryQueries(store, clock.NewMockClock(testNow))

		_, err := q.SoonExpiring(ctx, uuid.New(), uuid.New(), 0)

		require.NoError(t, err)
		assert.Equal(t, testNow, store.gotFrom)
		assert.Equal(t, testNow.AddDate(0, 0, 3), store.gotTo)
	})

	t.Run("explicit window respected", func(t *testing.T) {
		store := &fakeItemStore{}
		q := queries.NewInventoryQueries(store, clock.NewMockClock(testNow))

		_, err := q.SoonExpiring(ctx, uuid.New(), uuid.New(), 7)

		require.NoError(t, err)
		assert.Equal(t, testNow.AddDate(0, 0, 7), store.gotTo)
	})

	t.Run("negative window falls back to default", func(t *testing.T) {
		store := &fakeItemStore{}
		q := queries.NewInventoryQueries(store, clock.NewMockClock(testNow))

		_, err := q.SoonExpiring(ctx, uuid.New(), uuid.New(), -1)

		require.NoError(t, err)
		assert.Equal(t, testNow.AddDate(0, 0, 3), store.gotTo)
	})
}
