package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avc/bank-cards/internal/domain"
)

// expirationDateLayout формат даты окончания действия карты в API
const expirationDateLayout = "2006-01-02"

// CardsHandler обрабатывает операции с картами и переводы
type CardsHandler struct {
	cardService     domain.CardService
	transferService domain.TransferService
	logger          *zap.Logger
}

// NewCardsHandler создает новый CardsHandler
func NewCardsHandler(cardService domain.CardService, transferService domain.TransferService, logger *zap.Logger) *CardsHandler {
	return &CardsHandler{
		cardService:     cardService,
		transferService: transferService,
		logger:          logger,
	}
}

type createCardRequest struct {
	UserID         uuid.UUID       `json:"user_id"`
	ExpirationDate string          `json:"expiration_date"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// CreateCard обрабатывает POST /api/cards (только ADMIN)
func (h *CardsHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	expirationDate, err := time.Parse(expirationDateLayout, req.ExpirationDate)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	view, err := h.cardService.CreateCard(r.Context(), req.UserID, expirationDate, req.InitialBalance)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// GetUserCards обрабатывает GET /api/cards — карты текущего пользователя
func (h *CardsHandler) GetUserCards(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	cardPage, err := h.cardService.ListUserCards(r.Context(), identity.Username, page, size)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, cardPage)
}

// BlockCard обрабатывает PUT /api/cards/{id}/block (только ADMIN)
func (h *CardsHandler) BlockCard(w http.ResponseWriter, r *http.Request) {
	id, ok := cardIDFromURL(w, r)
	if !ok {
		return
	}

	view, err := h.cardService.BlockCard(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// ActivateCard обрабатывает PUT /api/cards/{id}/activate (только ADMIN)
func (h *CardsHandler) ActivateCard(w http.ResponseWriter, r *http.Request) {
	id, ok := cardIDFromURL(w, r)
	if !ok {
		return
	}

	view, err := h.cardService.ActivateCard(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// DeleteCard обрабатывает DELETE /api/cards/{id} (только ADMIN)
func (h *CardsHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, ok := cardIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RequestBlock обрабатывает POST /api/cards/{id}/request-block —
// запрос владельца на блокировку своей карты
func (h *CardsHandler) RequestBlock(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := cardIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.cardService.RequestBlock(r.Context(), id, identity.Username); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type transferRequest struct {
	FromCardID uuid.UUID       `json:"from_card_id"`
	ToCardID   uuid.UUID       `json:"to_card_id"`
	Amount     decimal.Decimal `json:"amount"`
}

// Transfer обрабатывает POST /api/cards/transfer — перевод между своими картами
func (h *CardsHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	identity, ok := GetIdentity(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err := h.transferService.Transfer(r.Context(), identity.UserID, req.FromCardID, req.ToCardID, req.Amount)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// cardIDFromURL извлекает UUID карты из пути запроса
func cardIDFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
