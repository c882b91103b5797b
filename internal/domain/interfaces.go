package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash, email string, roles []Role) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*User, int64, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// CardRepository определяет методы для работы с картами
type CardRepository interface {
	CreateCard(ctx context.Context, ownerID uuid.UUID, encryptedNumber string, balance decimal.Decimal, expirationDate time.Time) (*Card, error)
	GetCardByID(ctx context.Context, id uuid.UUID) (*Card, error)
	GetCardsByOwnerUsername(ctx context.Context, username string, limit, offset int) ([]*Card, int64, error)
	ExistsByEncryptedNumber(ctx context.Context, encryptedNumber string) (bool, error)
	ExistsCard(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateCardStatus(ctx context.Context, id uuid.UUID, status CardStatus) error
	DeleteCard(ctx context.Context, id uuid.UUID) error
	TransferBalance(ctx context.Context, fromID, toID uuid.UUID, amount decimal.Decimal) error
	GetExpiredActiveCardIDs(ctx context.Context, asOf time.Time, limit int) ([]uuid.UUID, error)
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*TokenPair, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
}

// TokenPair представляет выданный токен с метаданными
type TokenPair struct {
	Token     string `json:"token"`
	TokenType string `json:"type"`
	Username  string `json:"username"`
}

// CardService определяет операции жизненного цикла карты
type CardService interface {
	CreateCard(ctx context.Context, ownerID uuid.UUID, expirationDate time.Time, initialBalance decimal.Decimal) (*CardView, error)
	GetCard(ctx context.Context, id uuid.UUID) (*CardView, error)
	ListUserCards(ctx context.Context, username string, page, size int) (*CardPage, error)
	BlockCard(ctx context.Context, id uuid.UUID) (*CardView, error)
	ActivateCard(ctx context.Context, id uuid.UUID) (*CardView, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	RequestBlock(ctx context.Context, id uuid.UUID, actingUsername string) error
}

// TransferService определяет перевод средств между картами
type TransferService interface {
	Transfer(ctx context.Context, actingUserID, fromCardID, toCardID uuid.UUID, amount decimal.Decimal) error
}

// UserService определяет административные операции над пользователями
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context, page, size int) (*UserPage, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
