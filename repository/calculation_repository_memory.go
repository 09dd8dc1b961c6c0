package repository

import (
	"sync"

	"equity-calculator/domain"
)

// CalculationRepositoryMemory keeps the most recent calculations in memory,
// bounded by capacity.
type CalculationRepositoryMemory struct {
	mu       sync.Mutex
	capacity int
	data     []domain.CalculationResult
}

// NewCalculationRepositoryMemory creates an in-memory repository holding at
// most capacity results. A non-positive capacity keeps a single result.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	if capacity < 1 {
		capacity = 1
	}
	return &CalculationRepositoryMemory{
		capacity: capacity,
		data:     []domain.CalculationResult{},
	}
}

// Save stores the calculation result, evicting the oldest when full.
func (r *CalculationRepositoryMemory) Save(result domain.CalculationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == r.capacity {
		r.data = r.data[1:]
	}
	r.data = append(r.data, result)
	return nil
}

// Recent returns up to limit results, newest first.
func (r *CalculationRepositoryMemory) Recent(limit int) []domain.CalculationResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.CalculationResult, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out
}
