package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/bank-cards/internal/domain"
)

// apiError представляет тело ошибки в ответе API
type apiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// respondError переводит доменную ошибку в HTTP статус:
// not found -> 404, нарушение бизнес-правил -> 400, чужая карта -> 403,
// конфликт уникальности -> 409, все остальное -> 500.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrFromCardNotFound),
		errors.Is(err, domain.ErrToCardNotFound):
		status = http.StatusNotFound

	case errors.Is(err, domain.ErrExpirationNotFuture),
		errors.Is(err, domain.ErrNegativeBalance),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrSameCardTransfer),
		errors.Is(err, domain.ErrCardAlreadyBlocked),
		errors.Is(err, domain.ErrCardAlreadyActive),
		errors.Is(err, domain.ErrFromCardNotActive),
		errors.Is(err, domain.ErrToCardNotActive),
		errors.Is(err, domain.ErrInsufficientFunds):
		status = http.StatusBadRequest

	case errors.Is(err, domain.ErrNotCardOwner):
		status = http.StatusForbidden

	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrEmailExists):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error("internal error", zap.Error(err))
		writeJSON(w, status, apiError{Status: status, Message: "internal server error"})
		return
	}

	writeJSON(w, status, apiError{Status: status, Message: err.Error()})
}

// writeJSON сериализует тело ответа
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck // заголовки уже отправлены
}
