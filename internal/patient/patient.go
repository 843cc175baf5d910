// Package patient is a read-only view of the patient registry. Demographics
// are owned elsewhere; billing only needs identity.
package patient

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("patient not found")

type Patient struct {
	ID        uuid.UUID
	FullName  string
	CreatedAt time.Time
}
