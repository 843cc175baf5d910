package bed

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/http/response"
)

type Registry interface {
	Create(ctx context.Context, params bed.CreateParams) (*bed.Bed, error)
	List(ctx context.Context, status bed.Status) ([]*bed.Bed, error)
}

type Handler struct {
	registry Registry
}

func NewHandler(registry Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
}

type bedResponse struct {
	ID        uuid.UUID  `json:"id"`
	Label     string     `json:"label"`
	Ward      string     `json:"ward"`
	Status    bed.Status `json:"status"`
	PatientID *uuid.UUID `json:"patient_id,omitempty"`
	DailyRate int64      `json:"daily_rate"`
}

func toResponse(b *bed.Bed) bedResponse {
	return bedResponse{
		ID:        b.ID,
		Label:     b.Label,
		Ward:      b.Ward,
		Status:    b.Status,
		PatientID: b.PatientID,
		DailyRate: b.DailyRate,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	status := bed.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	beds, err := h.registry.List(r.Context(), status)
	if err != nil {
		response.Error(w, err)
		return
	}

	resp := make([]bedResponse, len(beds))
	for i, b := range beds {
		resp[i] = toResponse(b)
	}

	response.JSON(w, http.StatusOK, resp)
}

type createBedRequest struct {
	Label     string `json:"label"`
	Ward      string `json:"ward"`
	DailyRate int64  `json:"daily_rate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.registry.Create(r.Context(), bed.CreateParams{
		Label:     req.Label,
		Ward:      req.Ward,
		DailyRate: req.DailyRate,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, toResponse(b))
}
