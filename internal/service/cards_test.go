package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avc/bank-cards/internal/domain"
	domainmocks "github.com/avc/bank-cards/internal/domain/mocks"
	"github.com/avc/bank-cards/internal/utils/cardcipher"
)

func newTestCodec(t *testing.T) *cardcipher.Codec {
	t.Helper()
	codec, err := cardcipher.NewCodec([]byte("1234567890123456"))
	require.NoError(t, err)
	return codec
}

func TestCardService_CreateCard(t *testing.T) {
	ctx := context.Background()

	ownerID := uuid.New()
	owner := &domain.User{ID: ownerID, Username: "testuser"}
	expiration := time.Now().AddDate(3, 0, 0)
	balance := decimal.NewFromInt(100)

	t.Run("Success", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, ownerID).Return(owner, nil).Once()
		mockCardRepo.EXPECT().ExistsByEncryptedNumber(mock.Anything, mock.Anything).Return(false, nil).Once()
		mockCardRepo.EXPECT().CreateCard(mock.Anything, ownerID, mock.Anything, balance, expiration).
			RunAndReturn(func(_ context.Context, ownerID uuid.UUID, encrypted string, balance decimal.Decimal, expiration time.Time) (*domain.Card, error) {
				return &domain.Card{
					ID:              uuid.New(),
					EncryptedNumber: encrypted,
					Balance:         balance,
					Status:          domain.CardStatusActive,
					ExpirationDate:  expiration,
					OwnerID:         ownerID,
				}, nil
			}).Once()

		view, err := svc.CreateCard(ctx, ownerID, expiration, balance)
		require.NoError(t, err)

		assert.Equal(t, "testuser", view.OwnerUsername)
		assert.Equal(t, domain.CardStatusActive, view.Status)
		assert.True(t, view.Balance.Equal(balance))
		assert.True(t, strings.HasPrefix(view.Number, "**** **** **** "))
		assert.Len(t, view.Number, 19)
	})

	t.Run("Owner not found", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, ownerID).Return(nil, domain.ErrUserNotFound).Once()

		_, err := svc.CreateCard(ctx, ownerID, expiration, balance)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Expiration date not in future", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, ownerID).Return(owner, nil).Once()

		_, err := svc.CreateCard(ctx, ownerID, time.Now().AddDate(0, 0, -1), balance)
		assert.ErrorIs(t, err, domain.ErrExpirationNotFuture)
	})

	t.Run("Negative initial balance", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, ownerID).Return(owner, nil).Once()

		_, err := svc.CreateCard(ctx, ownerID, expiration, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, domain.ErrNegativeBalance)
	})

	t.Run("Number collision triggers regeneration", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, ownerID).Return(owner, nil).Once()
		mockCardRepo.EXPECT().ExistsByEncryptedNumber(mock.Anything, mock.Anything).Return(true, nil).Once()
		mockCardRepo.EXPECT().ExistsByEncryptedNumber(mock.Anything, mock.Anything).Return(false, nil).Once()
		mockCardRepo.EXPECT().CreateCard(mock.Anything, ownerID, mock.Anything, balance, expiration).
			Return(&domain.Card{ID: uuid.New(), Status: domain.CardStatusActive, Balance: balance}, nil).Once()

		view, err := svc.CreateCard(ctx, ownerID, expiration, balance)
		require.NoError(t, err)
		assert.NotNil(t, view)
	})

	t.Run("Insert race triggers regeneration", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, ownerID).Return(owner, nil).Once()
		mockCardRepo.EXPECT().ExistsByEncryptedNumber(mock.Anything, mock.Anything).Return(false, nil).Twice()
		mockCardRepo.EXPECT().CreateCard(mock.Anything, ownerID, mock.Anything, balance, expiration).
			Return(nil, domain.ErrCardNumberTaken).Once()
		mockCardRepo.EXPECT().CreateCard(mock.Anything, ownerID, mock.Anything, balance, expiration).
			Return(&domain.Card{ID: uuid.New(), Status: domain.CardStatusActive, Balance: balance}, nil).Once()

		view, err := svc.CreateCard(ctx, ownerID, expiration, balance)
		require.NoError(t, err)
		assert.NotNil(t, view)
	})

	t.Run("Attempts exhausted", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		mockUserRepo.EXPECT().GetUserByID(mock.Anything, ownerID).Return(owner, nil).Once()
		mockCardRepo.EXPECT().ExistsByEncryptedNumber(mock.Anything, mock.Anything).Return(true, nil).Times(maxNumberAttempts)

		_, err := svc.CreateCard(ctx, ownerID, expiration, balance)
		assert.Error(t, err)
	})
}

func TestCardService_GetCard(t *testing.T) {
	ctx := context.Background()
	codec := newTestCodec(t)

	cardID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		card := &domain.Card{
			ID:              cardID,
			EncryptedNumber: codec.Encrypt("1234567812345678"),
			Balance:         decimal.NewFromInt(500),
			Status:          domain.CardStatusActive,
			OwnerUsername:   "testuser",
		}

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil).Once()

		view, err := svc.GetCard(ctx, cardID)
		require.NoError(t, err)

		assert.Equal(t, "**** **** **** 5678", view.Number)
		assert.Equal(t, "testuser", view.OwnerUsername)
		assert.True(t, view.Balance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("Not found", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(nil, domain.ErrCardNotFound).Once()

		_, err := svc.GetCard(ctx, cardID)
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})

	t.Run("Corrupted stored number", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		card := &domain.Card{ID: cardID, EncryptedNumber: "not-a-ciphertext"}

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil).Once()

		_, err := svc.GetCard(ctx, cardID)
		assert.ErrorIs(t, err, cardcipher.ErrDecrypt)
	})
}

func TestCardService_ListUserCards(t *testing.T) {
	ctx := context.Background()
	codec := newTestCodec(t)

	t.Run("Success", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		cards := []*domain.Card{
			{ID: uuid.New(), EncryptedNumber: codec.Encrypt("1234567812345678"), Status: domain.CardStatusActive, OwnerUsername: "testuser"},
			{ID: uuid.New(), EncryptedNumber: codec.Encrypt("8765432187654321"), Status: domain.CardStatusBlocked, OwnerUsername: "testuser"},
		}

		mockCardRepo.EXPECT().GetCardsByOwnerUsername(mock.Anything, "testuser", 2, 2).Return(cards, int64(7), nil).Once()

		page, err := svc.ListUserCards(ctx, "testuser", 1, 2)
		require.NoError(t, err)

		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 2, page.Size)
		assert.Equal(t, int64(7), page.Total)
		require.Len(t, page.Cards, 2)
		assert.Equal(t, "**** **** **** 5678", page.Cards[0].Number)
		assert.Equal(t, "**** **** **** 4321", page.Cards[1].Number)
	})

	t.Run("Defaults applied to page and size", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		mockCardRepo.EXPECT().GetCardsByOwnerUsername(mock.Anything, "testuser", DefaultPageSize, 0).
			Return(nil, int64(0), nil).Once()

		page, err := svc.ListUserCards(ctx, "testuser", -1, 0)
		require.NoError(t, err)

		assert.Equal(t, 0, page.Page)
		assert.Equal(t, DefaultPageSize, page.Size)
		assert.Empty(t, page.Cards)
	})

	t.Run("Size capped", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		mockCardRepo.EXPECT().GetCardsByOwnerUsername(mock.Anything, "testuser", MaxPageSize, 0).
			Return(nil, int64(0), nil).Once()

		_, err := svc.ListUserCards(ctx, "testuser", 0, 1000)
		require.NoError(t, err)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		mockCardRepo.EXPECT().GetCardsByOwnerUsername(mock.Anything, "testuser", DefaultPageSize, 0).
			Return(nil, int64(0), errors.New("db error")).Once()

		_, err := svc.ListUserCards(ctx, "testuser", 0, 0)
		assert.Error(t, err)
	})
}

func TestCardService_BlockCard(t *testing.T) {
	ctx := context.Background()
	codec := newTestCodec(t)

	cardID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		card := &domain.Card{
			ID:              cardID,
			EncryptedNumber: codec.Encrypt("1234567812345678"),
			Status:          domain.CardStatusActive,
		}

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil).Once()
		mockCardRepo.EXPECT().UpdateCardStatus(mock.Anything, cardID, domain.CardStatusBlocked).Return(nil).Once()

		view, err := svc.BlockCard(ctx, cardID)
		require.NoError(t, err)
		assert.Equal(t, domain.CardStatusBlocked, view.Status)
	})

	t.Run("Already blocked", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		card := &domain.Card{ID: cardID, Status: domain.CardStatusBlocked}

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil).Once()

		_, err := svc.BlockCard(ctx, cardID)
		assert.ErrorIs(t, err, domain.ErrCardAlreadyBlocked)
	})

	t.Run("Not found", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(nil, domain.ErrCardNotFound).Once()

		_, err := svc.BlockCard(ctx, cardID)
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})
}

func TestCardService_ActivateCard(t *testing.T) {
	ctx := context.Background()
	codec := newTestCodec(t)

	cardID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		card := &domain.Card{
			ID:              cardID,
			EncryptedNumber: codec.Encrypt("1234567812345678"),
			Status:          domain.CardStatusBlocked,
		}

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil).Once()
		mockCardRepo.EXPECT().UpdateCardStatus(mock.Anything, cardID, domain.CardStatusActive).Return(nil).Once()

		view, err := svc.ActivateCard(ctx, cardID)
		require.NoError(t, err)
		assert.Equal(t, domain.CardStatusActive, view.Status)
	})

	t.Run("Already active", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, codec)

		card := &domain.Card{ID: cardID, Status: domain.CardStatusActive}

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil).Once()

		_, err := svc.ActivateCard(ctx, cardID)
		assert.ErrorIs(t, err, domain.ErrCardAlreadyActive)
	})
}

func TestCardService_DeleteCard(t *testing.T) {
	ctx := context.Background()

	cardID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		mockCardRepo.EXPECT().DeleteCard(mock.Anything, cardID).Return(nil).Once()

		err := svc.DeleteCard(ctx, cardID)
		assert.NoError(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		mockCardRepo.EXPECT().DeleteCard(mock.Anything, cardID).Return(domain.ErrCardNotFound).Once()

		err := svc.DeleteCard(ctx, cardID)
		assert.ErrorIs(t, err, domain.ErrCardNotFound)
	})
}

func TestCardService_RequestBlock(t *testing.T) {
	ctx := context.Background()

	cardID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		card := &domain.Card{ID: cardID, Status: domain.CardStatusActive, OwnerUsername: "testuser"}

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil).Once()
		mockCardRepo.EXPECT().UpdateCardStatus(mock.Anything, cardID, domain.CardStatusBlocked).Return(nil).Once()

		err := svc.RequestBlock(ctx, cardID, "testuser")
		assert.NoError(t, err)
	})

	t.Run("Not card owner", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		card := &domain.Card{ID: cardID, Status: domain.CardStatusActive, OwnerUsername: "owner"}

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil).Once()

		err := svc.RequestBlock(ctx, cardID, "intruder")
		assert.ErrorIs(t, err, domain.ErrNotCardOwner)
	})

	t.Run("Already blocked", func(t *testing.T) {
		mockCardRepo := domainmocks.NewCardRepositoryMock(t)
		mockUserRepo := domainmocks.NewUserRepositoryMock(t)
		svc := NewCardService(mockCardRepo, mockUserRepo, newTestCodec(t))

		card := &domain.Card{ID: cardID, Status: domain.CardStatusBlocked, OwnerUsername: "testuser"}

		mockCardRepo.EXPECT().GetCardByID(mock.Anything, cardID).Return(card, nil).Once()

		err := svc.RequestBlock(ctx, cardID, "testuser")
		assert.ErrorIs(t, err, domain.ErrCardAlreadyBlocked)
	})
}
