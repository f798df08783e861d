package importxlsx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sebok-dev/sebok/internal/importer"
	"github.com/sebok-dev/sebok/internal/statement"
	"github.com/sebok-dev/sebok/internal/transaction"
)

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{bank}", h.importStatement)
}

type lineDTO struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	DateUser *time.Time      `json:"date_user,omitempty"`
	RefNum   string          `json:"refnum"`
	Memo     string          `json:"memo"`
	Amount   decimal.Decimal `json:"amount"`
}

type importResponse struct {
	BankID    string    `json:"bank_id"`
	Currency  string    `json:"currency"`
	AccountID string    `json:"account_id"`
	Imported  int       `json:"imported"`
	Skipped   int       `json:"skipped"`
	Lines     []lineDTO `json:"lines"`
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	bank := importer.Bank(chi.URLParam(r, "bank"))

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	st, err := h.importSvc.Import(bank, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.txSvc.ImportStatement(r.Context(), st)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toImportResponse(st, result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toImportResponse(st *statement.Statement, result *transaction.ImportResult) importResponse {
	resp := importResponse{
		BankID:    st.BankID,
		Currency:  st.Currency,
		AccountID: st.AccountID,
		Imported:  len(result.Imported),
		Skipped:   result.Skipped,
		Lines:     make([]lineDTO, 0, len(st.Lines)),
	}

	for _, line := range st.Lines {
		resp.Lines = append(resp.Lines, lineDTO{
			ID:       line.ID,
			Date:     line.Date,
			DateUser: line.DateUser,
			RefNum:   line.RefNum,
			Memo:     line.Memo,
			Amount:   line.Amount,
		})
	}

	return resp
}
