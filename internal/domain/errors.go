package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists   = errors.New("user already exists")
	ErrEmailExists  = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки карт и их жизненного цикла
var (
	ErrCardNotFound       = errors.New("card not found")
	ErrCardAlreadyBlocked = errors.New("card is already blocked")
	ErrCardAlreadyActive  = errors.New("card is already active")
	ErrNotCardOwner       = errors.New("card belongs to another user")

	ErrExpirationNotFuture = errors.New("expiration date must be in the future")
	ErrNegativeBalance     = errors.New("initial balance must not be negative")
	ErrCardNumberTaken     = errors.New("card number is already in use")
)

// Ошибки переводов
var (
	ErrFromCardNotFound  = errors.New("source card not found")
	ErrToCardNotFound    = errors.New("destination card not found")
	ErrFromCardNotActive = errors.New("source card is not active")
	ErrToCardNotActive   = errors.New("destination card is not active")
	ErrSameCardTransfer  = errors.New("source and destination cards are the same")
	ErrNonPositiveAmount = errors.New("transfer amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds on source card")
)

// ErrTxConflict сигнализирует конфликт на уровне хранилища (блокировка,
// сериализация). В отличие от бизнес-ошибок такой вызов можно повторить.
var ErrTxConflict = errors.New("storage conflict, retry the operation")
