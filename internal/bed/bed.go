// Package bed is the bed registry: which beds exist, what they cost per day
// and whether they are free.
package bed

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusOccupied  Status = "OCCUPIED"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusOccupied
}

type Bed struct {
	ID        uuid.UUID
	Label     string
	Ward      string
	Status    Status
	PatientID *uuid.UUID // set while OCCUPIED
	DailyRate int64      // minor currency units
	UpdatedAt time.Time
}

type CreateParams struct {
	Label     string
	Ward      string
	DailyRate int64
}
