package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/avc/bank-cards/internal/domain"
	domainmocks "github.com/avc/bank-cards/internal/domain/mocks"
)

func testPoolConfig() PoolConfig {
	return PoolConfig{
		Workers:      1,
		QueueSize:    10,
		ScanInterval: time.Minute,
		BatchLimit:   100,
	}
}

func TestPool_BlockExpiredCard(t *testing.T) {
	mockCardRepo := domainmocks.NewCardRepositoryMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(testPoolConfig(), mockCardRepo, logger)

	ctx := context.Background()
	cardID := uuid.New()

	mockCardRepo.EXPECT().UpdateCardStatus(mock.Anything, cardID, domain.CardStatusBlocked).Return(nil).Once()

	pool.blockExpiredCard(ctx, cardID)
}

func TestPool_BlockExpiredCard_CardDeleted(t *testing.T) {
	mockCardRepo := domainmocks.NewCardRepositoryMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(testPoolConfig(), mockCardRepo, logger)

	ctx := context.Background()
	cardID := uuid.New()

	// Карта удалена между сканом и обработкой
	mockCardRepo.EXPECT().UpdateCardStatus(mock.Anything, cardID, domain.CardStatusBlocked).
		Return(domain.ErrCardNotFound).Once()

	pool.blockExpiredCard(ctx, cardID)
}

func TestPool_ScanExpiredCards(t *testing.T) {
	mockCardRepo := domainmocks.NewCardRepositoryMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(testPoolConfig(), mockCardRepo, logger)

	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()

	mockCardRepo.EXPECT().GetExpiredActiveCardIDs(mock.Anything, mock.Anything, 100).
		Return([]uuid.UUID{first, second}, nil).Once()

	pool.scanExpiredCards(ctx)

	// Проверяем, что карты добавлены в очередь
	select {
	case id := <-pool.queue:
		if id != first && id != second {
			t.Errorf("unexpected card id in queue: %s", id)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("expected card in queue, got timeout")
	}
}

func TestPool_ScanExpiredCards_RepositoryError(t *testing.T) {
	mockCardRepo := domainmocks.NewCardRepositoryMock(t)
	logger, _ := zap.NewDevelopment()

	pool := NewPool(testPoolConfig(), mockCardRepo, logger)

	ctx := context.Background()

	mockCardRepo.EXPECT().GetExpiredActiveCardIDs(mock.Anything, mock.Anything, 100).
		Return(nil, errors.New("db error")).Once()

	pool.scanExpiredCards(ctx)

	select {
	case id := <-pool.queue:
		t.Errorf("unexpected card id in queue: %s", id)
	default:
	}
}

func TestPool_ScanExpiredCards_QueueFull(t *testing.T) {
	mockCardRepo := domainmocks.NewCardRepositoryMock(t)
	logger, _ := zap.NewDevelopment()

	cfg := testPoolConfig()
	cfg.QueueSize = 1
	pool := NewPool(cfg, mockCardRepo, logger)

	ctx := context.Background()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	mockCardRepo.EXPECT().GetExpiredActiveCardIDs(mock.Anything, mock.Anything, 100).
		Return(ids, nil).Once()

	// Очередь вмещает только одну карту, остальные отбрасываются до
	// следующего скана
	pool.scanExpiredCards(ctx)

	if got := len(pool.queue); got != 1 {
		t.Errorf("expected 1 card in queue, got %d", got)
	}
}

func TestPool_StartStop(t *testing.T) {
	mockCardRepo := domainmocks.NewCardRepositoryMock(t)
	logger, _ := zap.NewDevelopment()

	cfg := testPoolConfig()
	cfg.ScanInterval = 10 * time.Millisecond
	pool := NewPool(cfg, mockCardRepo, logger)

	cardID := uuid.New()
	blocked := make(chan struct{})

	mockCardRepo.EXPECT().GetExpiredActiveCardIDs(mock.Anything, mock.Anything, 100).
		Return([]uuid.UUID{cardID}, nil).Once()
	mockCardRepo.EXPECT().GetExpiredActiveCardIDs(mock.Anything, mock.Anything, 100).
		Return(nil, nil).Maybe()
	mockCardRepo.EXPECT().UpdateCardStatus(mock.Anything, cardID, domain.CardStatusBlocked).
		RunAndReturn(func(context.Context, uuid.UUID, domain.CardStatus) error {
			close(blocked)
			return nil
		}).Once()

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	select {
	case <-blocked:
	case <-time.After(time.Second):
		t.Fatal("expected expired card to be blocked, got timeout")
	}

	cancel()
	pool.Stop()
}
