package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/bank-cards/internal/domain"
)

// PoolConfig содержит настройки пула
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	BatchLimit   int
}

// Pool представляет пул воркеров, блокирующих карты с истекшим
// сроком действия. Сканер периодически выбирает активные карты,
// у которых expiration_date уже в прошлом, и отправляет их воркерам.
type Pool struct {
	workers      int
	queue        chan uuid.UUID
	cardRepo     domain.CardRepository
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
	batchLimit   int
}

// NewPool создает новый worker pool
func NewPool(cfg PoolConfig, cardRepo domain.CardRepository, logger *zap.Logger) *Pool {
	return &Pool{
		workers:      cfg.Workers,
		queue:        make(chan uuid.UUID, cfg.QueueSize),
		cardRepo:     cardRepo,
		logger:       logger,
		scanInterval: cfg.ScanInterval,
		batchLimit:   cfg.BatchLimit,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker блокирует карты из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("expiration worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("expiration worker stopping", zap.Int("worker_id", id))
			return
		case cardID, ok := <-p.queue:
			if !ok {
				return
			}
			p.blockExpiredCard(ctx, cardID)
		}
	}
}

// scanner периодически ищет просроченные активные карты
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("expiration scanner stopping")
			return
		case <-ticker.C:
			p.scanExpiredCards(ctx)
		}
	}
}

// scanExpiredCards выбирает просроченные карты и отправляет их в очередь
func (p *Pool) scanExpiredCards(ctx context.Context) {
	ids, err := p.cardRepo.GetExpiredActiveCardIDs(ctx, time.Now(), p.batchLimit)
	if err != nil {
		p.logger.Error("failed to get expired cards", zap.Error(err))
		return
	}

	for _, id := range ids {
		select {
		case p.queue <- id:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, карта попадет в следующий скан
			p.logger.Warn("queue is full, skipping card", zap.String("card_id", id.String()))
		}
	}
}

// blockExpiredCard блокирует одну просроченную карту
func (p *Pool) blockExpiredCard(ctx context.Context, cardID uuid.UUID) {
	err := p.cardRepo.UpdateCardStatus(ctx, cardID, domain.CardStatusBlocked)
	if err != nil {
		// Карту могли удалить между сканом и обработкой
		if errors.Is(err, domain.ErrCardNotFound) {
			return
		}
		p.logger.Error("failed to block expired card",
			zap.String("card_id", cardID.String()),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("expired card blocked", zap.String("card_id", cardID.String()))
}
