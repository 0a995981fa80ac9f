//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"pantryshare/internal/domain/notification"
	"pantryshare/internal/pkg/clock"
	"pantryshare/internal/usecase/commands"
	portsmock "pantryshare/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationCommands(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()

	newFixture := func(t *testing.T) (commands.NotificationCommands, *portsmock.MockNotificationRepository) {
		ctrl := gomock.NewController(t)
		repo := portsmock.NewMockNotificationRepository(ctrl)
		return commands.NewNotificationCommands(repo, nil, clock.NewMockClock(testNow)), repo
	}

	t.Run("create: persists and returns the new id", func(t *testing.T) {
		cmds, repo := newFixture(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, n *notification.Notification) error {
				assert.Equal(t, "expiry_warning", n.Kind())
				assert.Equal(t, testNow, n.CreatedAt())
				return nil
			})

		id, err := cmds.Create(ctx, commands.CreateNotificationParams{
			HouseholdID: householdID,
			Kind:        "expiry_warning",
			Payload:     map[string]any{"itemId": "x"},
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("create: empty type rejected", func(t *testing.T) {
		cmds, _ := newFixture(t)

		id, err := cmds.Create(ctx, commands.CreateNotificationParams{
			HouseholdID: householdID,
			Kind:        "  ",
		})

		assert.Equal(t, uuid.Nil, id)
		require.ErrorIs(t, err, commands.ErrInvalidNotification)
	})

	t.Run("create: store failure surfaces", func(t *testing.T) {
		cmds, repo := newFixture(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := cmds.Create(ctx, commands.CreateNotificationParams{
			HouseholdID: householdID,
			Kind:        "expiry_warning",
		})

		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})

	t.Run("mark seen: returns first-time acknowledgment count", func(t *testing.T) {
		cmds, repo := newFixture(t)
		userID := uuid.New()
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		repo.EXPECT().MarkSeen(gomock.Any(), gomock.Any(), ids, userID).Return(int64(1), nil)

		result, err := cmds.MarkSeen(ctx, commands.MarkSeenParams{UserID: userID, IDs: ids})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Updated)
	})

	t.Run("mark seen: store failure surfaces", func(t *testing.T) {
		cmds, repo := newFixture(t)

		repo.EXPECT().MarkSeen(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("connection reset"))

		result, err := cmds.MarkSeen(ctx, commands.MarkSeenParams{UserID: uuid.New(), IDs: []uuid.UUID{uuid.New()}})

		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

func TestHouseholdCommands_Create(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T) (commands.HouseholdCommands, *portsmock.MockHouseholdRepository) {
		ctrl := gomock.NewController(t)
		repo := portsmock.NewMockHouseholdRepository(ctrl)
		return commands.NewHouseholdCommands(repo, nil, clock.NewMockClock(testNow)), repo
	}

	t.Run("success", func(t *testing.T) {
		cmds, repo := newFixture(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		id, err := cmds.Create(ctx, "Miller household")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		cmds, _ := newFixture(t)

		id, err := cmds.Create(ctx, "   ")

		assert.Equal(t, uuid.Nil, id)
		require.ErrorIs(t, err, commands.ErrInvalidHousehold)
	})
}
