package file

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/sbilibin2017/gamepeaks/internal/models"
)

// PeakWriteRepository writes peak snapshots to a JSON lines file.
type PeakWriteRepository struct {
	path string
	mu   sync.Mutex
}

// NewPeakWriteRepository creates a new write repository.
func NewPeakWriteRepository(path string) *PeakWriteRepository {
	return &PeakWriteRepository{path: path}
}

// SaveAll replaces the snapshot with peaks. The file is written to a
// temporary sibling and renamed into place, so readers never see a partial
// snapshot.
func (r *PeakWriteRepository) SaveAll(ctx context.Context, peaks []*models.Peak) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	writer := bufio.NewWriter(tmp)
	encoder := json.NewEncoder(writer)
	for _, p := range peaks {
		if err := encoder.Encode(p); err != nil {
			tmp.Close()
			return err
		}
	}

	if err := writer.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), r.path)
}

// PeakReadRepository reads peak snapshots.
type PeakReadRepository struct {
	path string
	mu   sync.RWMutex
}

// NewPeakReadRepository creates a new read repository.
func NewPeakReadRepository(path string) *PeakReadRepository {
	return &PeakReadRepository{path: path}
}

// List reads the snapshot and returns one peak per key, sorted by key. When a
// key repeats the highest value wins. A missing file is an empty snapshot.
func (r *PeakReadRepository) List(ctx context.Context) ([]*models.Peak, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	byKey := make(map[string]int64)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var p models.Peak
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, err
		}
		if cur, ok := byKey[p.Key]; !ok || p.Value > cur {
			byKey[p.Key] = p.Value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	peaks := make([]*models.Peak, 0, len(byKey))
	for k, v := range byKey {
		peaks = append(peaks, &models.Peak{Key: k, Value: v})
	}
	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Key < peaks[j].Key
	})

	return peaks, nil
}
