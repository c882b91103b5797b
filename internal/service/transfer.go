package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/avc/bank-cards/internal/domain"
)

// TransferService реализует domain.TransferService
type TransferService struct {
	cardRepo domain.CardRepository
	userRepo domain.UserRepository
}

// NewTransferService создает новый TransferService
func NewTransferService(cardRepo domain.CardRepository, userRepo domain.UserRepository) *TransferService {
	return &TransferService{
		cardRepo: cardRepo,
		userRepo: userRepo,
	}
}

// Transfer переводит средства между двумя картами одного пользователя.
// Предусловия проверяются по порядку, каждое со своей ошибкой; сам
// перевод выполняется репозиторием как одна транзакция, в которой
// статус и достаточность средств перепроверяются под блокировкой строк.
// Бизнес-ошибки детерминированы и не повторяются; domain.ErrTxConflict
// пробрасывается отдельно как повторяемая.
func (s *TransferService) Transfer(ctx context.Context, actingUserID, fromCardID, toCardID uuid.UUID, amount decimal.Decimal) error {
	if _, err := s.userRepo.GetUserByID(ctx, actingUserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("transfer service: failed to get user %s: %w", actingUserID, err)
	}

	fromCard, err := s.cardRepo.GetCardByID(ctx, fromCardID)
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return domain.ErrFromCardNotFound
		}
		return fmt.Errorf("transfer service: failed to get source card %s: %w", fromCardID, err)
	}

	toCard, err := s.cardRepo.GetCardByID(ctx, toCardID)
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return domain.ErrToCardNotFound
		}
		return fmt.Errorf("transfer service: failed to get destination card %s: %w", toCardID, err)
	}

	// Перевод возможен только между своими картами
	if fromCard.OwnerID != actingUserID || toCard.OwnerID != actingUserID {
		return domain.ErrNotCardOwner
	}

	if fromCardID == toCardID {
		return domain.ErrSameCardTransfer
	}

	if fromCard.Status != domain.CardStatusActive {
		return domain.ErrFromCardNotActive
	}
	if toCard.Status != domain.CardStatusActive {
		return domain.ErrToCardNotActive
	}

	if !amount.IsPositive() {
		return domain.ErrNonPositiveAmount
	}

	if fromCard.Balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}

	if err := s.cardRepo.TransferBalance(ctx, fromCardID, toCardID, amount); err != nil {
		switch {
		case errors.Is(err, domain.ErrFromCardNotFound),
			errors.Is(err, domain.ErrToCardNotFound),
			errors.Is(err, domain.ErrFromCardNotActive),
			errors.Is(err, domain.ErrToCardNotActive),
			errors.Is(err, domain.ErrInsufficientFunds),
			errors.Is(err, domain.ErrTxConflict):
			return err
		}
		return fmt.Errorf("transfer service: failed to transfer %s from %s to %s: %w",
			amount, fromCardID, toCardID, err)
	}

	return nil
}
