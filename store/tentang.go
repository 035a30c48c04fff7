package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"sidomulyo/models"
)

// TimestampLayout is the layout of the updatedAt stamps (UTC, millisecond precision).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// TentangStore keeps the about-page sections as one JSON object.
// Writes overwrite the file in place.
type TentangStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewTentangStore returns a store backed by path.
func NewTentangStore(path string) *TentangStore {
	return &TentangStore{path: path, now: time.Now}
}

// Path returns the backing file path.
func (s *TentangStore) Path() string { return s.path }

func (s *TentangStore) stamp() string {
	return s.now().UTC().Format(TimestampLayout)
}

// EnsureInitialized writes the default sections when the file does not exist yet.
func (s *TentangStore) EnsureInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}
	_, err := s.seed()
	return err
}

// Read returns all sections. When the file is missing the defaults are
// written first and returned.
func (s *TentangStore) Read() (models.Tentang, error) {
	data, err := readJSONFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s.seed()
		}
		return nil, fmt.Errorf("read tentang: %w", err)
	}
	return decodeTentang(data)
}

func (s *TentangStore) seed() (models.Tentang, error) {
	data, err := json.MarshalIndent(DefaultTentang(s.stamp()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tentang: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return nil, fmt.Errorf("write %s: %w", s.path, err)
	}
	log.Printf("Created %s with default content", s.path)
	return decodeTentang(data)
}

func decodeTentang(data []byte) (models.Tentang, error) {
	var t models.Tentang
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode tentang: %w", err)
	}
	if t == nil {
		t = models.Tentang{}
	}
	return t, nil
}

// Write overwrites the file with t.
func (s *TentangStore) Write(t models.Tentang) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tentang: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// UpdateSection replaces one section and stamps its updatedAt.
func (s *TentangStore) UpdateSection(key, expectedUpdatedAt string, fn func(current models.TentangSection) (models.TentangSection, error)) (models.TentangSection, error) {
	if !models.IsTentangSection(key) {
		return nil, ErrUnknownSection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.Read()
	if err != nil {
		return nil, err
	}
	next, err := applySection(t, key, expectedUpdatedAt, s.stamp(), fn)
	if err != nil {
		return nil, err
	}
	if err := s.Write(t); err != nil {
		return nil, err
	}
	return next, nil
}

// applySection runs fn against t[key] and stores the result back into t.
func applySection(t models.Tentang, key, expectedUpdatedAt, stamp string, fn func(models.TentangSection) (models.TentangSection, error)) (models.TentangSection, error) {
	current := t[key]
	if expectedUpdatedAt != "" && current.UpdatedAt() != expectedUpdatedAt {
		return nil, ErrStaleSection
	}

	working := models.TentangSection{}
	for k, v := range current {
		working[k] = v
	}
	next, err := fn(working)
	if err != nil {
		return nil, err
	}
	if next == nil {
		next = working
	}
	if id, ok := current["id"]; ok {
		next["id"] = id
	}
	next["updatedAt"] = advanceStamp(current.UpdatedAt(), stamp)
	t[key] = next
	return next, nil
}

// advanceStamp returns stamp, or prev+1ms when stamp would not move past
// prev. Every write must change updatedAt for the stale check to hold.
func advanceStamp(prev, stamp string) string {
	before, err := time.Parse(TimestampLayout, prev)
	if err != nil {
		return stamp
	}
	after, err := time.Parse(TimestampLayout, stamp)
	if err != nil || after.After(before) {
		return stamp
	}
	return before.Add(time.Millisecond).UTC().Format(TimestampLayout)
}
