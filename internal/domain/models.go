package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardStatus представляет статус карты
type CardStatus string

const (
	CardStatusActive  CardStatus = "ACTIVE"
	CardStatusBlocked CardStatus = "BLOCKED"
)

// Role представляет роль пользователя
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User представляет пользователя системы
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	Email        string    `json:"email"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasRole проверяет наличие роли у пользователя
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Card представляет банковскую карту.
// EncryptedNumber хранится как непрозрачный шифротекст и не покидает
// сервисный слой — наружу уходит только CardView с маскированным номером.
type Card struct {
	ID              uuid.UUID
	EncryptedNumber string
	Balance         decimal.Decimal
	Status          CardStatus
	ExpirationDate  time.Time
	OwnerID         uuid.UUID
	OwnerUsername   string
	CreatedAt       time.Time
}

// CardView представляет карту для отображения
type CardView struct {
	ID             uuid.UUID       `json:"id"`
	Number         string          `json:"number"`
	OwnerUsername  string          `json:"owner_username"`
	ExpirationDate time.Time       `json:"expiration_date"`
	Status         CardStatus      `json:"status"`
	Balance        decimal.Decimal `json:"balance"`
}

// CardPage представляет страницу карт пользователя
type CardPage struct {
	Cards []*CardView `json:"cards"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
	Total int64       `json:"total"`
}

// UserPage представляет страницу пользователей
type UserPage struct {
	Users []*User `json:"users"`
	Page  int     `json:"page"`
	Size  int     `json:"size"`
	Total int64   `json:"total"`
}
