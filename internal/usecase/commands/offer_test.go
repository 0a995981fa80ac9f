//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pantryshare/internal/domain/notification"
	"pantryshare/internal/domain/offer"
	"pantryshare/internal/pkg/clock"
	"pantryshare/internal/usecase/commands"
	portsmock "pantryshare/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type offerCommandsFixture struct {
	offerRepo *portsmock.MockOfferRepository
	itemRepo  *portsmock.MockItemRepository
	notifRepo *portsmock.MockNotificationRepository
	commands  commands.OfferCommands
}

func newOfferCommandsFixture(t *testing.T) *offerCommandsFixture {
	ctrl := gomock.NewController(t)
	f := &offerCommandsFixture{
		offerRepo: portsmock.NewMockOfferRepository(ctrl),
		itemRepo:  portsmock.NewMockItemRepository(ctrl),
		notifRepo: portsmock.NewMockNotificationRepository(ctrl),
	}
	f.commands = commands.NewOfferCommands(
		f.offerRepo, f.itemRepo, f.notifRepo,
		nil, clock.NewMockClock(testNow), discardLogger(),
	)
	return f
}

func TestOfferCommands_Create(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()
	itemID := uuid.New()

	params := commands.CreateOfferParams{
		HouseholdID: householdID,
		ItemID:      itemID,
		QtyOffered:  2,
	}

	t.Run("success: offer created, item flagged, broadcast emitted", func(t *testing.T) {
		f := newOfferCommandsFixture(t)

		var created *offer.ShareOffer
		f.offerRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, o *offer.ShareOffer) error {
				created = o
				return nil
			})
		f.itemRepo.EXPECT().SetOffered(gomock.Any(), gomock.Any(), itemID, true, testNow).Return(nil)
		f.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, n *notification.Notification) error {
				assert.Equal(t, notification.TypeOfferCreated, n.Kind())
				assert.True(t, n.IsBroadcast())
				assert.Equal(t, householdID, n.HouseholdID())
				return nil
			})

		result, err := f.commands.Create(ctx, params)
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, created.ID(), result.OfferID)
		assert.Equal(t, testNow.Add(offer.DefaultTTL), result.ExpiresAt)
	})

	t.Run("success: flagging failure is swallowed", func(t *testing.T) {
		f := newOfferCommandsFixture(t)

		f.offerRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.itemRepo.EXPECT().SetOffered(gomock.Any(), gomock.Any(), itemID, true, testNow).
			Return(errors.New("connection reset"))
		f.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.commands.Create(ctx, params)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.OfferID)
	})

	t.Run("success: broadcast failure is swallowed", func(t *testing.T) {
		f := newOfferCommandsFixture(t)

		f.offerRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.itemRepo.EXPECT().SetOffered(gomock.Any(), gomock.Any(), itemID, true, testNow).Return(nil)
		f.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		_, err := f.commands.Create(ctx, params)
		require.NoError(t, err)
	})

	t.Run("error: offer insert failure fails the call", func(t *testing.T) {
		f := newOfferCommandsFixture(t)

		f.offerRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("connection reset"))

		result, err := f.commands.Create(ctx, params)

		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

func TestOfferCommands_Claim(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	claimantID := uuid.New()
	itemID := uuid.New()
	householdID := uuid.New()

	params := commands.ClaimOfferParams{OfferID: offerID, ClaimantID: claimantID}
	won := &commands.ClaimedOffer{ItemID: itemID, HouseholdID: householdID}

	t.Run("win: ownership transferred and claim broadcast", func(t *testing.T) {
		f := newOfferCommandsFixture(t)

		f.offerRepo.EXPECT().Claim(gomock.Any(), gomock.Any(), offerID, claimantID).Return(won, nil)
		f.itemRepo.EXPECT().TransferOwnership(gomock.Any(), gomock.Any(), itemID, claimantID, testNow).Return(nil)
		f.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, n *notification.Notification) error {
				assert.Equal(t, notification.TypeOfferClaimed, n.Kind())
				assert.True(t, n.IsBroadcast())
				return nil
			})

		result, err := f.commands.Claim(ctx, params)
		require.NoError(t, err)

		assert.True(t, result.Claimed)
		require.NotNil(t, result.ItemID)
		assert.Equal(t, itemID, *result.ItemID)
		assert.Empty(t, result.Reason)
	})

	t.Run("lose: already claimed is a normal response", func(t *testing.T) {
		f := newOfferCommandsFixture(t)

		f.offerRepo.EXPECT().Claim(gomock.Any(), gomock.Any(), offerID, claimantID).Return(nil, nil)

		result, err := f.commands.Claim(ctx, params)
		require.NoError(t, err)

		assert.False(t, result.Claimed)
		assert.Nil(t, result.ItemID)
		assert.Equal(t, commands.ReasonAlreadyClaimed, result.Reason)
	})

	t.Run("win: transfer failure is swallowed", func(t *testing.T) {
		f := newOfferCommandsFixture(t)

		f.offerRepo.EXPECT().Claim(gomock.Any(), gomock.Any(), offerID, claimantID).Return(won, nil)
		f.itemRepo.EXPECT().TransferOwnership(gomock.Any(), gomock.Any(), itemID, claimantID, testNow).
			Return(errors.New("connection reset"))
		f.notifRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.commands.Claim(ctx, params)
		require.NoError(t, err)
		assert.True(t, result.Claimed)
	})

	t.Run("error: claim query failure fails the call", func(t *testing.T) {
		f := newOfferCommandsFixture(t)

		f.offerRepo.EXPECT().Claim(gomock.Any(), gomock.Any(), offerID, claimantID).
			Return(nil, errors.New("connection reset"))

		result, err := f.commands.Claim(ctx, params)

		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}
