package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equity-calculator/domain"
)

func saveValuation(t *testing.T, r *CalculationRepositoryMemory, valuation float64) {
	t.Helper()
	err := r.Save(domain.CalculationResult{Valuation: valuation})
	require.NoError(t, err)
}

func TestCalculationRepositoryMemory_RecentNewestFirst(t *testing.T) {
	repo := NewCalculationRepositoryMemory(10)
	saveValuation(t, repo, 1)
	saveValuation(t, repo, 2)
	saveValuation(t, repo, 3)

	recent := repo.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, 3.0, recent[0].Valuation)
	assert.Equal(t, 2.0, recent[1].Valuation)

	assert.Len(t, repo.Recent(0), 3)
	assert.Len(t, repo.Recent(50), 3)
}

func TestCalculationRepositoryMemory_EvictsOldest(t *testing.T) {
	repo := NewCalculationRepositoryMemory(2)
	saveValuation(t, repo, 1)
	saveValuation(t, repo, 2)
	saveValuation(t, repo, 3)

	recent := repo.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, 3.0, recent[0].Valuation)
	assert.Equal(t, 2.0, recent[1].Valuation)
}

func TestCalculationRepositoryMemory_MinimumCapacity(t *testing.T) {
	repo := NewCalculationRepositoryMemory(0)
	saveValuation(t, repo, 1)
	saveValuation(t, repo, 2)

	recent := repo.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, 2.0, recent[0].Valuation)
}

func TestCalculationRepositoryMemory_ConcurrentSave(t *testing.T) {
	repo := NewCalculationRepositoryMemory(1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			_ = repo.Save(domain.CalculationResult{Valuation: v})
		}(float64(i))
	}
	wg.Wait()

	assert.Len(t, repo.Recent(0), 50)
}

func TestMockCache(t *testing.T) {
	cache := NewMockCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set("k", "v"))
	val, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}
