package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"sidomulyo/models"

	"github.com/natefinch/atomic"
)

// StatistikStore keeps the statistik collection as a JSON array. Writes go
// to a sibling temp file that is then renamed over the canonical file, so
// readers never observe a partially written array.
type StatistikStore struct {
	path string
	mu   sync.Mutex
}

// NewStatistikStore returns a store backed by path.
func NewStatistikStore(path string) *StatistikStore {
	return &StatistikStore{path: path}
}

// Path returns the canonical file path.
func (s *StatistikStore) Path() string { return s.path }

// TempPath returns the sibling path used during writes,
// e.g. statistik.json -> statistik.tmp.json.
func (s *StatistikStore) TempPath() string {
	ext := filepath.Ext(s.path)
	if ext == "" {
		return s.path + ".tmp.json"
	}
	return strings.TrimSuffix(s.path, ext) + ".tmp" + ext
}

// Read returns the stored collection. A missing file is an empty collection.
func (s *StatistikStore) Read() ([]models.Statistik, error) {
	data, err := readJSONFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Statistik{}, nil
		}
		return nil, fmt.Errorf("read statistik: %w", err)
	}

	var items []models.Statistik
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if items == nil {
		items = []models.Statistik{}
	}
	return items, nil
}

// Write replaces the stored collection.
func (s *StatistikStore) Write(items []models.Statistik) error {
	if err := s.writeTemp(items); err != nil {
		return err
	}
	return s.commit()
}

func (s *StatistikStore) writeTemp(items []models.Statistik) error {
	if items == nil {
		items = []models.Statistik{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode statistik: %w", err)
	}
	if err := os.WriteFile(s.TempPath(), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.TempPath(), err)
	}
	return nil
}

func (s *StatistikStore) commit() error {
	if err := atomic.ReplaceFile(s.TempPath(), s.path); err != nil {
		log.Printf("Failed to replace %s: %v", s.path, err)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// NextID returns the id for the next inserted record.
func (s *StatistikStore) NextID(items []models.Statistik) int {
	return NextID(items)
}

// Update serialises read-modify-write cycles within this process.
func (s *StatistikStore) Update(fn func(items []models.Statistik) ([]models.Statistik, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.Read()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return s.Write(next)
}
