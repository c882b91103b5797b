package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avc/bank-cards/internal/domain"
	"github.com/avc/bank-cards/internal/utils/cardcipher"
	"github.com/avc/bank-cards/internal/utils/cardnumber"
)

const (
	// maxNumberAttempts ограничивает перегенерацию номера при коллизии
	maxNumberAttempts = 5

	// DefaultPageSize размер страницы карт по умолчанию
	DefaultPageSize = 5
	// MaxPageSize верхняя граница размера страницы
	MaxPageSize = 100
)

// CardService реализует domain.CardService: жизненный цикл карты
// и проекции для отображения
type CardService struct {
	cardRepo domain.CardRepository
	userRepo domain.UserRepository
	codec    *cardcipher.Codec
}

// NewCardService создает новый CardService
func NewCardService(cardRepo domain.CardRepository, userRepo domain.UserRepository, codec *cardcipher.Codec) *CardService {
	return &CardService{
		cardRepo: cardRepo,
		userRepo: userRepo,
		codec:    codec,
	}
}

// CreateCard выпускает новую карту для пользователя.
// Номер генерируется заново, если зашифрованный номер уже занят:
// шифрование детерминировано, поэтому коллизия шифротекста означает
// коллизию самого номера.
func (s *CardService) CreateCard(ctx context.Context, ownerID uuid.UUID, expirationDate time.Time, initialBalance decimal.Decimal) (*domain.CardView, error) {
	owner, err := s.userRepo.GetUserByID(ctx, ownerID)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("card service: failed to get owner %s: %w", ownerID, err)
	}

	if !expirationDate.After(time.Now()) {
		return nil, domain.ErrExpirationNotFuture
	}

	if initialBalance.IsNegative() {
		return nil, domain.ErrNegativeBalance
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		plainNumber, err := cardnumber.Generate()
		if err != nil {
			return nil, fmt.Errorf("card service: failed to generate card number: %w", err)
		}

		encrypted := s.codec.Encrypt(plainNumber)

		exists, err := s.cardRepo.ExistsByEncryptedNumber(ctx, encrypted)
		if err != nil {
			return nil, fmt.Errorf("card service: failed to check card number: %w", err)
		}
		if exists {
			continue
		}

		card, err := s.cardRepo.CreateCard(ctx, ownerID, encrypted, initialBalance, expirationDate)
		if err != nil {
			// Гонка между проверкой и вставкой: номер заняли, пробуем снова
			if errors.Is(err, domain.ErrCardNumberTaken) {
				continue
			}
			return nil, fmt.Errorf("card service: failed to create card for user %s: %w", ownerID, err)
		}

		card.OwnerUsername = owner.Username
		return s.cardView(card, plainNumber)
	}

	return nil, fmt.Errorf("card service: failed to generate unique card number after %d attempts", maxNumberAttempts)
}

// GetCard возвращает карту с маскированным номером
func (s *CardService) GetCard(ctx context.Context, id uuid.UUID) (*domain.CardView, error) {
	card, err := s.getCard(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.decryptedView(card)
}

// ListUserCards возвращает страницу карт пользователя
func (s *CardService) ListUserCards(ctx context.Context, username string, page, size int) (*domain.CardPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	cards, total, err := s.cardRepo.GetCardsByOwnerUsername(ctx, username, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("card service: failed to list cards for user %q: %w", username, err)
	}

	views := make([]*domain.CardView, 0, len(cards))
	for _, card := range cards {
		view, err := s.decryptedView(card)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return &domain.CardPage{
		Cards: views,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

// BlockCard блокирует карту
func (s *CardService) BlockCard(ctx context.Context, id uuid.UUID) (*domain.CardView, error) {
	return s.changeStatus(ctx, id, domain.CardStatusBlocked)
}

// ActivateCard активирует заблокированную карту
func (s *CardService) ActivateCard(ctx context.Context, id uuid.UUID) (*domain.CardView, error) {
	return s.changeStatus(ctx, id, domain.CardStatusActive)
}

// DeleteCard удаляет карту
func (s *CardService) DeleteCard(ctx context.Context, id uuid.UUID) error {
	err := s.cardRepo.DeleteCard(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return err
		}
		return fmt.Errorf("card service: failed to delete card %s: %w", id, err)
	}

	return nil
}

// RequestBlock обрабатывает запрос владельца на блокировку своей карты
func (s *CardService) RequestBlock(ctx context.Context, id uuid.UUID, actingUsername string) error {
	card, err := s.getCard(ctx, id)
	if err != nil {
		return err
	}

	if card.OwnerUsername != actingUsername {
		return domain.ErrNotCardOwner
	}

	if card.Status == domain.CardStatusBlocked {
		return domain.ErrCardAlreadyBlocked
	}

	if err := s.cardRepo.UpdateCardStatus(ctx, id, domain.CardStatusBlocked); err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return err
		}
		return fmt.Errorf("card service: failed to block card %s: %w", id, err)
	}

	return nil
}

// changeStatus выполняет переход ACTIVE <-> BLOCKED.
// Повторная установка текущего статуса отклоняется.
func (s *CardService) changeStatus(ctx context.Context, id uuid.UUID, status domain.CardStatus) (*domain.CardView, error) {
	card, err := s.getCard(ctx, id)
	if err != nil {
		return nil, err
	}

	if card.Status == status {
		if status == domain.CardStatusBlocked {
			return nil, domain.ErrCardAlreadyBlocked
		}
		return nil, domain.ErrCardAlreadyActive
	}

	if err := s.cardRepo.UpdateCardStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("card service: failed to update status of card %s: %w", id, err)
	}

	card.Status = status
	return s.decryptedView(card)
}

// getCard получает карту, не оборачивая ErrCardNotFound
func (s *CardService) getCard(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	card, err := s.cardRepo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("card service: failed to get card %s: %w", id, err)
	}

	return card, nil
}

// decryptedView расшифровывает хранимый номер и строит представление карты
func (s *CardService) decryptedView(card *domain.Card) (*domain.CardView, error) {
	plainNumber, err := s.codec.Decrypt(card.EncryptedNumber)
	if err != nil {
		// Ошибка аутентификации шифротекста означает порчу данных
		return nil, fmt.Errorf("card service: stored number of card %s is corrupted: %w", card.ID, err)
	}

	return s.cardView(card, plainNumber)
}

// cardView строит представление карты с маскированным номером
func (s *CardService) cardView(card *domain.Card, plainNumber string) (*domain.CardView, error) {
	masked, err := cardnumber.Mask(plainNumber)
	if err != nil {
		return nil, fmt.Errorf("card service: failed to mask number of card %s: %w", card.ID, err)
	}

	return &domain.CardView{
		ID:             card.ID,
		Number:         masked,
		OwnerUsername:  card.OwnerUsername,
		ExpirationDate: card.ExpirationDate,
		Status:         card.Status,
		Balance:        card.Balance,
	}, nil
}
