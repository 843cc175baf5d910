package bed

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bed
type Repository interface {
	CreateBed(ctx context.Context, b *Bed) error
	GetBed(ctx context.Context, id uuid.UUID) (*Bed, error)
	// ListBeds returns all beds when status is empty.
	ListBeds(ctx context.Context, status Status) ([]*Bed, error)
	// ReserveBed marks an AVAILABLE bed OCCUPIED by patientID in one
	// conditional write. It fails with ErrBedUnavailable when the bed is
	// already OCCUPIED.
	ReserveBed(ctx context.Context, id, patientID uuid.UUID) error
	ReleaseBed(ctx context.Context, id uuid.UUID) error
}

type Registry struct {
	repo Repository
}

func NewRegistry(repo Repository) *Registry {
	return &Registry{repo: repo}
}

func (r *Registry) Create(ctx context.Context, params CreateParams) (*Bed, error) {
	label := strings.TrimSpace(params.Label)
	if label == "" || params.DailyRate < 0 {
		return nil, ErrInvalidBed
	}

	b := &Bed{
		ID:        uuid.New(),
		Label:     label,
		Ward:      strings.TrimSpace(params.Ward),
		Status:    StatusAvailable,
		DailyRate: params.DailyRate,
	}

	if err := r.repo.CreateBed(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *Registry) Get(ctx context.Context, id uuid.UUID) (*Bed, error) {
	return r.repo.GetBed(ctx, id)
}

func (r *Registry) List(ctx context.Context, status Status) ([]*Bed, error) {
	return r.repo.ListBeds(ctx, status)
}

func (r *Registry) Reserve(ctx context.Context, id, patientID uuid.UUID) error {
	return r.repo.ReserveBed(ctx, id, patientID)
}

// Release frees the bed. Releasing an AVAILABLE bed is a no-op.
func (r *Registry) Release(ctx context.Context, id uuid.UUID) error {
	return r.repo.ReleaseBed(ctx, id)
}
