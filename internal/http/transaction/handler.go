package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sebok-dev/sebok/internal/transaction"
)

type Handler struct {
	txSvc *transaction.Service
}

func NewHandler(txSvc *transaction.Service) *Handler {
	return &Handler{txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type transactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Fingerprint string          `json:"fingerprint"`
	AccountID   string          `json:"account_id"`
	Date        time.Time       `json:"date"`
	DateUser    *time.Time      `json:"date_user,omitempty"`
	RefNum      string          `json:"refnum"`
	Memo        string          `json:"memo"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.txSvc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, toResponse(tx))
	}

	writeJSON(w, http.StatusOK, responses)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	tx, err := h.txSvc.Get(r.Context(), id)
	if err != nil {
		if err == transaction.ErrNotFound {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

func filterFromQuery(r *http.Request) (transaction.ListFilter, error) {
	var filter transaction.ListFilter

	if account := r.URL.Query().Get("account_id"); account != "" {
		filter.AccountID = &account
	}

	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return filter, err
		}

		filter.StartDate = &t
	}

	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return filter, err
		}

		filter.EndDate = &t
	}

	return filter, nil
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Fingerprint: tx.Fingerprint,
		AccountID:   tx.AccountID,
		Date:        tx.Date,
		DateUser:    tx.DateUser,
		RefNum:      tx.RefNum,
		Memo:        tx.Memo,
		Amount:      tx.Amount,
		CreatedAt:   tx.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
