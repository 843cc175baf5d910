package ledger

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/http/response"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

type Reader interface {
	GetLedger(ctx context.Context, patientID uuid.UUID, window ledger.Window) ([]*ledger.Transaction, error)
}

type Handler struct {
	reader Reader
	now    func() time.Time
}

func NewHandler(reader Reader) *Handler {
	return &Handler{reader: reader, now: time.Now}
}

// Routes is mounted under /patients.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}/ledger", h.list)
}

type transactionResponse struct {
	ID          uuid.UUID          `json:"id"`
	Kind        ledger.Kind        `json:"kind"`
	Category    string             `json:"category"`
	Amount      int64              `json:"amount"`
	PaymentMode ledger.PaymentMode `json:"payment_mode,omitempty"`
	Status      ledger.Status      `json:"status"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	window := ledger.Window{To: h.now().UTC()}

	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid from: expected RFC3339", http.StatusBadRequest)
			return
		}

		window.From = t
	}

	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid to: expected RFC3339", http.StatusBadRequest)
			return
		}

		window.To = t
	}

	if !window.From.Before(window.To) {
		http.Error(w, "from must be before to", http.StatusBadRequest)
		return
	}

	txs, err := h.reader.GetLedger(r.Context(), patientID, window)
	if err != nil {
		response.Error(w, err)
		return
	}

	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = transactionResponse{
			ID:          tx.ID,
			Kind:        tx.Kind,
			Category:    tx.Category,
			Amount:      tx.Amount,
			PaymentMode: tx.PaymentMode,
			Status:      tx.Status,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		}
	}

	response.JSON(w, http.StatusOK, resp)
}
