// Package memory provides an in-memory ledger.Repository for tests and local
// experiments.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/ipdledger/internal/ledger"
)

type Store struct {
	mu  sync.RWMutex
	txs map[uuid.UUID]ledger.Transaction
}

func New() *Store {
	return &Store{txs: make(map[uuid.UUID]ledger.Transaction)}
}

func (s *Store) CreateTransaction(_ context.Context, tx *ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs[tx.ID] = *tx

	return nil
}

func (s *Store) GetTransaction(_ context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[id]
	if !ok {
		return nil, ledger.ErrNotFound
	}

	return &tx, nil
}

func (s *Store) VoidTransaction(_ context.Context, id uuid.UUID, at time.Time) (*ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.txs[id]
	if !ok {
		return nil, ledger.ErrNotFound
	}

	if tx.Status == ledger.StatusVoid {
		return nil, ledger.ErrAlreadyVoid
	}

	tx.Status = ledger.StatusVoid
	tx.VoidedAt = &at
	s.txs[id] = tx

	return &tx, nil
}

func (s *Store) ListTransactions(_ context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := ledger.Window{From: filter.From, To: filter.To}

	var out []*ledger.Transaction

	for _, tx := range s.txs {
		if tx.PatientID != filter.PatientID || !window.Contains(tx.CreatedAt) {
			continue
		}

		if !filter.IncludeVoid && tx.Status != ledger.StatusCompleted {
			continue
		}

		out = append(out, &tx)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}

		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
