// Package response writes JSON bodies and maps domain errors to HTTP status
// codes for every handler.
package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/ipdledger/internal/admission"
	"github.com/MrJamesThe3rd/ipdledger/internal/bed"
	"github.com/MrJamesThe3rd/ipdledger/internal/catalog"
	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
	"github.com/MrJamesThe3rd/ipdledger/internal/patient"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

var statusByError = []struct {
	err    error
	status int
}{
	{ledger.ErrInvalidAmount, http.StatusBadRequest},
	{ledger.ErrInvalidKind, http.StatusBadRequest},
	{ledger.ErrInvalidPaymentMode, http.StatusBadRequest},
	{ledger.ErrMissingPatient, http.StatusBadRequest},
	{catalog.ErrInvalidQuantity, http.StatusBadRequest},
	{catalog.ErrMissingService, http.StatusBadRequest},
	{bed.ErrInvalidBed, http.StatusBadRequest},

	{ledger.ErrNotFound, http.StatusNotFound},
	{admission.ErrNotFound, http.StatusNotFound},
	{admission.ErrTransactionNotIncluded, http.StatusNotFound},
	{bed.ErrNotFound, http.StatusNotFound},
	{patient.ErrNotFound, http.StatusNotFound},
	{catalog.ErrNotFound, http.StatusNotFound},

	{bed.ErrBedUnavailable, http.StatusConflict},
	{admission.ErrPatientAlreadyAdmitted, http.StatusConflict},

	{admission.ErrNotActive, http.StatusUnprocessableEntity},
}

// Status returns the HTTP status for err; unknown errors are 500.
func Status(err error) int {
	for _, e := range statusByError {
		if errors.Is(err, e.err) {
			return e.status
		}
	}

	return http.StatusInternalServerError
}

// Error writes err as plain text. Internal errors are logged and hidden.
func Error(w http.ResponseWriter, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
		http.Error(w, "internal error", status)

		return
	}

	http.Error(w, err.Error(), status)
}
