package admission

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/http/response"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	"github.com/MrJamesThe3rd/ipdledger/internal/statement"
)

//go:generate mockgen -source=handler.go -destination=service_mock.go -package=admission
type Service interface {
	Admit(ctx context.Context, patientID, bedID uuid.UUID) (*admission.Admission, error)
	List(ctx context.Context, filter admission.ListFilter) ([]*admission.Admission, error)
	GetAdmission(ctx context.Context, id uuid.UUID) (*admission.Admission, error)
	Reconcile(ctx context.Context, id uuid.UUID) (billing.Summary, error)
	Transactions(ctx context.Context, id uuid.UUID) (*admission.Admission, []*ledger.Transaction, error)
	OrderService(ctx context.Context, id uuid.UUID, req catalog.OrderRequest) (*admission.Result, error)
	ChargeAccommodation(ctx context.Context, id uuid.UUID, days int64) (*admission.Result, error)
	RecordPayment(ctx context.Context, id uuid.UUID, req admission.PaymentRequest) (*admission.Result, error)
	VoidTransaction(ctx context.Context, id, txID uuid.UUID) (*admission.Result, error)
	Discharge(ctx context.Context, id uuid.UUID) (*admission.Admission, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.admit)
	r.Get("/", h.list)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Get("/balance", h.balance)
		r.Get("/statement", h.getStatement)
		r.Post("/services", h.orderService)
		r.Post("/accommodation", h.chargeAccommodation)
		r.Post("/payments", h.recordPayment)
		r.Post("/transactions/{txId}/void", h.voidTransaction)
		r.Post("/discharge", h.discharge)
	})
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		http.Error(w, "invalid "+param, http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

type admitRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	BedID     uuid.UUID `json:"bed_id"`
}

func (h *Handler) admit(w http.ResponseWriter, r *http.Request) {
	var req admitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.PatientID == uuid.Nil || req.BedID == uuid.Nil {
		http.Error(w, "patient_id and bed_id are required", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Admit(r.Context(), req.PatientID, req.BedID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, toAdmissionResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := admission.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = admission.Status(s)
		if !filter.Status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
	}

	if s := r.URL.Query().Get("patient_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid patient_id", http.StatusBadRequest)
			return
		}

		filter.PatientID = id
	}

	list, err := h.svc.List(r.Context(), filter)
	if err != nil {
		response.Error(w, err)
		return
	}

	resp := make([]admissionResponse, len(list))
	for i, a := range list {
		resp[i] = toAdmissionResponse(a)
	}

	response.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.svc.GetAdmission(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toAdmissionResponse(a))
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	sum, err := h.svc.Reconcile(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toSummaryResponse(sum))
}

func (h *Handler) getStatement(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	a, txs, err := h.svc.Transactions(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toStatementResponse(statement.Build(a, txs)))
}

type orderServiceRequest struct {
	ServiceName string `json:"service_name"`
	CustomName  string `json:"custom_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int64  `json:"quantity"`
	Category    string `json:"category"`
}

func (h *Handler) orderService(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req orderServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.OrderService(r.Context(), id, catalog.OrderRequest{
		ServiceName: req.ServiceName,
		CustomName:  req.CustomName,
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
		Category:    req.Category,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, toResultResponse(res))
}

type accommodationRequest struct {
	Days int64 `json:"days"`
}

func (h *Handler) chargeAccommodation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req accommodationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.ChargeAccommodation(r.Context(), id, req.Days)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, toResultResponse(res))
}

type paymentRequest struct {
	Amount      int64              `json:"amount"`
	Mode        ledger.PaymentMode `json:"mode"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.RecordPayment(r.Context(), id, admission.PaymentRequest{
		Amount:      req.Amount,
		Mode:        req.Mode,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, toResultResponse(res))
}

func (h *Handler) voidTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	txID, ok := parseID(w, r, "txId")
	if !ok {
		return
	}

	res, err := h.svc.VoidTransaction(r.Context(), id, txID)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toResultResponse(res))
}

func (h *Handler) discharge(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.svc.Discharge(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toAdmissionResponse(a))
}
