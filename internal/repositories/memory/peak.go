package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sbilibin2017/gamepeaks/internal/models"
)

// PeakStore holds the peak table shared by the read and write repositories.
// Its contents are lost on restart.
type PeakStore struct {
	mu   sync.RWMutex
	data map[string]int64
}

// NewPeakStore creates an empty PeakStore.
func NewPeakStore() *PeakStore {
	return &PeakStore{data: make(map[string]int64)}
}

// PeakWriteRepository provides write access to in-memory peaks.
type PeakWriteRepository struct {
	store *PeakStore
}

// NewPeakWriteRepository creates a new PeakWriteRepository.
func NewPeakWriteRepository(store *PeakStore) *PeakWriteRepository {
	return &PeakWriteRepository{store: store}
}

// Save raises the stored value for peak.Key to peak.Value. A lower value
// never replaces a higher one.
func (r *PeakWriteRepository) Save(
	ctx context.Context,
	peak *models.Peak,
) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if cur, ok := r.store.data[peak.Key]; ok && cur >= peak.Value {
		return nil
	}
	r.store.data[peak.Key] = peak.Value
	return nil
}

// PeakReadRepository provides read access to in-memory peaks.
type PeakReadRepository struct {
	store *PeakStore
}

// NewPeakReadRepository creates a new PeakReadRepository.
func NewPeakReadRepository(store *PeakStore) *PeakReadRepository {
	return &PeakReadRepository{store: store}
}

// Get returns the peak stored under key, or nil when there is none.
func (r *PeakReadRepository) Get(
	ctx context.Context,
	key string,
) (*models.Peak, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if v, ok := r.store.data[key]; ok {
		return &models.Peak{Key: key, Value: v}, nil
	}
	return nil, nil
}

// List returns all peaks sorted by key.
func (r *PeakReadRepository) List(
	ctx context.Context,
) ([]*models.Peak, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	peaks := make([]*models.Peak, 0, len(r.store.data))
	for k, v := range r.store.data {
		peaks = append(peaks, &models.Peak{Key: k, Value: v})
	}

	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Key < peaks[j].Key
	})

	return peaks, nil
}
