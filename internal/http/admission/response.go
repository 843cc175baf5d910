package admission

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/billing"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	"github.com/MrJamesThe3rd/ipdledger/internal/statement"
)

type admissionResponse struct {
	ID           uuid.UUID        `json:"id"`
	PatientID    uuid.UUID        `json:"patient_id"`
	BedID        uuid.UUID        `json:"bed_id"`
	Status       admission.Status `json:"status"`
	AdmittedAt   time.Time        `json:"admitted_at"`
	DischargedAt *time.Time       `json:"discharged_at,omitempty"`
	TotalCharges int64            `json:"total_charges"`
	TotalPaid    int64            `json:"total_paid"`
	BalanceDue   int64            `json:"balance_due"`
	ReconciledAt *time.Time       `json:"reconciled_at,omitempty"`
}

func toAdmissionResponse(a *admission.Admission) admissionResponse {
	return admissionResponse{
		ID:           a.ID,
		PatientID:    a.PatientID,
		BedID:        a.BedID,
		Status:       a.Status,
		AdmittedAt:   a.AdmittedAt,
		DischargedAt: a.DischargedAt,
		TotalCharges: a.TotalCharges,
		TotalPaid:    a.TotalPaid,
		BalanceDue:   a.BalanceDue,
		ReconciledAt: a.ReconciledAt,
	}
}

type summaryResponse struct {
	TotalCharges int64 `json:"total_charges"`
	TotalPaid    int64 `json:"total_paid"`
	BalanceDue   int64 `json:"balance_due"`
	Transactions int   `json:"transactions"`
}

func toSummaryResponse(s billing.Summary) summaryResponse {
	return summaryResponse{
		TotalCharges: s.TotalCharges,
		TotalPaid:    s.TotalPaid,
		BalanceDue:   s.BalanceDue,
		Transactions: s.Transactions,
	}
}

type transactionResponse struct {
	ID          uuid.UUID          `json:"id"`
	PatientID   uuid.UUID          `json:"patient_id"`
	Kind        ledger.Kind        `json:"kind"`
	Category    string             `json:"category"`
	Amount      int64              `json:"amount"`
	PaymentMode ledger.PaymentMode `json:"payment_mode,omitempty"`
	Status      ledger.Status      `json:"status"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"created_at"`
	VoidedAt    *time.Time         `json:"voided_at,omitempty"`
}

func toTransactionResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		PatientID:   tx.PatientID,
		Kind:        tx.Kind,
		Category:    tx.Category,
		Amount:      tx.Amount,
		PaymentMode: tx.PaymentMode,
		Status:      tx.Status,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
		VoidedAt:    tx.VoidedAt,
	}
}

type resultResponse struct {
	Transaction transactionResponse `json:"transaction"`
	Admission   admissionResponse   `json:"admission"`
}

func toResultResponse(res *admission.Result) resultResponse {
	return resultResponse{
		Transaction: toTransactionResponse(res.Transaction),
		Admission:   toAdmissionResponse(res.Admission),
	}
}

type statementLineResponse struct {
	TransactionID uuid.UUID          `json:"transaction_id"`
	Date          time.Time          `json:"date"`
	Kind          ledger.Kind        `json:"kind"`
	Category      string             `json:"category"`
	Description   string             `json:"description"`
	PaymentMode   ledger.PaymentMode `json:"payment_mode,omitempty"`
	Charge        int64              `json:"charge"`
	Payment       int64              `json:"payment"`
	Void          bool               `json:"void"`
	Balance       int64              `json:"balance"`
}

type statementResponse struct {
	Admission  admissionResponse       `json:"admission"`
	Lines      []statementLineResponse `json:"lines"`
	Totals     summaryResponse         `json:"totals"`
	ByCategory map[string]int64        `json:"by_category"`
}

func toStatementResponse(s *statement.Statement) statementResponse {
	lines := make([]statementLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = statementLineResponse{
			TransactionID: l.TransactionID,
			Date:          l.Date,
			Kind:          l.Kind,
			Category:      l.Category,
			Description:   l.Description,
			PaymentMode:   l.PaymentMode,
			Charge:        l.Charge,
			Payment:       l.Payment,
			Void:          l.Void,
			Balance:       l.Balance,
		}
	}

	return statementResponse{
		Admission: admissionResponse{
			ID:           s.AdmissionID,
			PatientID:    s.PatientID,
			BedID:        s.BedID,
			Status:       s.Status,
			AdmittedAt:   s.AdmittedAt,
			DischargedAt: s.DischargedAt,
			TotalCharges: s.Totals.TotalCharges,
			TotalPaid:    s.Totals.TotalPaid,
			BalanceDue:   s.Totals.BalanceDue,
		},
		Lines:      lines,
		Totals:     toSummaryResponse(s.Totals),
		ByCategory: s.ByCategory,
	}
}
