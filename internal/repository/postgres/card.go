package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/avc/bank-cards/internal/domain"
)

// CardRepository реализует domain.CardRepository.
// Баланс хранится как NUMERIC и передается в обе стороны текстом,
// чтобы не терять точность на float64.
type CardRepository struct {
	db DBTX
}

// NewCardRepository создает новый CardRepository
func NewCardRepository(db DBTX) *CardRepository {
	return &CardRepository{db: db}
}

const cardColumns = `c.id, c.encrypted_number, c.balance::text, c.status, c.expiration_date, c.user_id, u.username, c.created_at`

// CreateCard создает новую карту
func (r *CardRepository) CreateCard(ctx context.Context, ownerID uuid.UUID, encryptedNumber string, balance decimal.Decimal, expirationDate time.Time) (*domain.Card, error) {
	card := &domain.Card{}
	var balanceText string

	err := r.db.QueryRow(ctx,
		`INSERT INTO cards (id, encrypted_number, balance, status, expiration_date, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, encrypted_number, balance::text, status, expiration_date, user_id, created_at`,
		uuid.New(), encryptedNumber, balance.String(), domain.CardStatusActive, expirationDate, ownerID,
	).Scan(&card.ID, &card.EncryptedNumber, &balanceText, &card.Status, &card.ExpirationDate, &card.OwnerID, &card.CreatedAt)

	if err != nil {
		if pgUniqueViolation(err, "cards_encrypted_number_key") {
			return nil, domain.ErrCardNumberTaken
		}
		return nil, fmt.Errorf("repository: failed to create card for user %s: %w", ownerID, err)
	}

	card.Balance, err = decimal.NewFromString(balanceText)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to parse card balance %q: %w", balanceText, err)
	}

	return card, nil
}

// GetCardByID получает карту по ID вместе с именем владельца
func (r *CardRepository) GetCardByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	card, err := scanCard(r.db.QueryRow(ctx,
		`SELECT `+cardColumns+`
		 FROM cards c
		 JOIN users u ON u.id = c.user_id
		 WHERE c.id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("repository: failed to get card %s: %w", id, err)
	}

	return card, nil
}

// GetCardsByOwnerUsername получает страницу карт пользователя и их общее количество
func (r *CardRepository) GetCardsByOwnerUsername(ctx context.Context, username string, limit, offset int) ([]*domain.Card, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*)
		 FROM cards c
		 JOIN users u ON u.id = c.user_id
		 WHERE u.username = $1`,
		username,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count cards for user %q: %w", username, err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+cardColumns+`
		 FROM cards c
		 JOIN users u ON u.id = c.user_id
		 WHERE u.username = $1
		 ORDER BY c.created_at DESC
		 LIMIT $2 OFFSET $3`,
		username, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to get cards for user %q: %w", username, err)
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repository: failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository: error iterating cards: %w", err)
	}

	return cards, total, nil
}

// ExistsByEncryptedNumber проверяет, занят ли зашифрованный номер карты
func (r *CardRepository) ExistsByEncryptedNumber(ctx context.Context, encryptedNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM cards WHERE encrypted_number = $1)`,
		encryptedNumber,
	).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("repository: failed to check encrypted number: %w", err)
	}

	return exists, nil
}

// ExistsCard проверяет существование карты
func (r *CardRepository) ExistsCard(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM cards WHERE id = $1)`,
		id,
	).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("repository: failed to check card %s: %w", id, err)
	}

	return exists, nil
}

// UpdateCardStatus меняет статус карты
func (r *CardRepository) UpdateCardStatus(ctx context.Context, id uuid.UUID, status domain.CardStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cards SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update status of card %s: %w", id, asConflict(err))
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}

// DeleteCard удаляет карту
func (r *CardRepository) DeleteCard(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete card %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}

	return nil
}

// TransferBalance атомарно переводит средства между двумя картами.
// Обе строки блокируются SELECT ... FOR UPDATE, статус и достаточность
// средств перепроверяются уже под блокировкой: внешняя проверка к этому
// моменту могла устареть (классический lost update).
func (r *CardRepository) TransferBalance(ctx context.Context, fromID, toID uuid.UUID, amount decimal.Decimal) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transfer transaction: %w", asConflict(err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	// Блокируем строки в порядке возрастания id, чтобы два встречных
	// перевода по одной паре карт не взаимоблокировались
	first, second := fromID, toID
	if bytes.Compare(toID[:], fromID[:]) < 0 {
		first, second = toID, fromID
	}

	locked := make(map[uuid.UUID]*lockedCard, 2)
	for _, id := range []uuid.UUID{first, second} {
		lc, err := lockCard(ctx, tx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				if id == fromID {
					return domain.ErrFromCardNotFound
				}
				return domain.ErrToCardNotFound
			}
			return fmt.Errorf("repository: failed to lock card %s: %w", id, asConflict(err))
		}
		locked[id] = lc
	}

	from := locked[fromID]
	to := locked[toID]

	if from.status != domain.CardStatusActive {
		return domain.ErrFromCardNotActive
	}
	if to.status != domain.CardStatusActive {
		return domain.ErrToCardNotActive
	}
	if from.balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}

	_, err = tx.Exec(ctx,
		`UPDATE cards SET balance = $1 WHERE id = $2`,
		from.balance.Sub(amount).String(), fromID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to debit card %s: %w", fromID, asConflict(err))
	}

	_, err = tx.Exec(ctx,
		`UPDATE cards SET balance = $1 WHERE id = $2`,
		to.balance.Add(amount).String(), toID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to credit card %s: %w", toID, asConflict(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit transfer: %w", asConflict(err))
	}

	return nil
}

// GetExpiredActiveCardIDs возвращает ID активных карт с истекшим сроком действия
func (r *CardRepository) GetExpiredActiveCardIDs(ctx context.Context, asOf time.Time, limit int) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id
		 FROM cards
		 WHERE status = $1 AND expiration_date < $2
		 ORDER BY expiration_date
		 LIMIT $3`,
		domain.CardStatusActive, asOf, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get expired cards: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan expired card id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating expired cards: %w", err)
	}

	return ids, nil
}

// lockedCard хранит состояние строки карты, прочитанное под блокировкой
type lockedCard struct {
	status  domain.CardStatus
	balance decimal.Decimal
}

// lockCard блокирует строку карты и читает ее статус и баланс
func lockCard(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*lockedCard, error) {
	lc := &lockedCard{}
	var balanceText string

	err := tx.QueryRow(ctx,
		`SELECT status, balance::text FROM cards WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&lc.status, &balanceText)
	if err != nil {
		return nil, err
	}

	lc.balance, err = decimal.NewFromString(balanceText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance %q: %w", balanceText, err)
	}

	return lc, nil
}

// scanCard читает одну строку карты (с присоединенным именем владельца)
func scanCard(row pgx.Row) (*domain.Card, error) {
	card := &domain.Card{}
	var balanceText string

	err := row.Scan(&card.ID, &card.EncryptedNumber, &balanceText, &card.Status,
		&card.ExpirationDate, &card.OwnerID, &card.OwnerUsername, &card.CreatedAt)
	if err != nil {
		return nil, err
	}

	card.Balance, err = decimal.NewFromString(balanceText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance %q: %w", balanceText, err)
	}

	return card, nil
}
