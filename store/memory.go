package store

import (
	"encoding/json"
	"sync"
	"time"

	"sidomulyo/models"
)

// MemoryStatistik is an in-process StatistikRepository.
type MemoryStatistik struct {
	mu    sync.Mutex
	items []models.Statistik
}

// NewMemoryStatistik returns a repository holding a copy of items.
func NewMemoryStatistik(items ...models.Statistik) *MemoryStatistik {
	return &MemoryStatistik{items: append([]models.Statistik{}, items...)}
}

func (m *MemoryStatistik) Read() ([]models.Statistik, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Statistik{}, m.items...), nil
}

func (m *MemoryStatistik) Write(items []models.Statistik) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]models.Statistik{}, items...)
	return nil
}

func (m *MemoryStatistik) NextID(items []models.Statistik) int { return NextID(items) }

func (m *MemoryStatistik) Update(fn func([]models.Statistik) ([]models.Statistik, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, err := fn(append([]models.Statistik{}, m.items...))
	if err != nil {
		return err
	}
	m.items = append([]models.Statistik{}, next...)
	return nil
}

// MemoryTentang is an in-process TentangRepository. Content is kept in its
// JSON form so values read back have the same shapes as the file store's.
type MemoryTentang struct {
	mu   sync.Mutex
	data []byte
	Now  func() time.Time
}

// NewMemoryTentang returns an empty repository; the defaults appear on first read.
func NewMemoryTentang() *MemoryTentang {
	return &MemoryTentang{Now: time.Now}
}

func (m *MemoryTentang) stamp() string {
	return m.Now().UTC().Format(TimestampLayout)
}

func (m *MemoryTentang) EnsureInitialized() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.read()
	return err
}

func (m *MemoryTentang) Read() (models.Tentang, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.read()
}

func (m *MemoryTentang) read() (models.Tentang, error) {
	if m.data == nil {
		if err := m.write(DefaultTentang(m.stamp())); err != nil {
			return nil, err
		}
	}
	return decodeTentang(m.data)
}

func (m *MemoryTentang) Write(t models.Tentang) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.write(t)
}

func (m *MemoryTentang) write(t models.Tentang) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

func (m *MemoryTentang) UpdateSection(key, expectedUpdatedAt string, fn func(models.TentangSection) (models.TentangSection, error)) (models.TentangSection, error) {
	if !models.IsTentangSection(key) {
		return nil, ErrUnknownSection
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.read()
	if err != nil {
		return nil, err
	}
	next, err := applySection(t, key, expectedUpdatedAt, m.stamp(), fn)
	if err != nil {
		return nil, err
	}
	if err := m.write(t); err != nil {
		return nil, err
	}
	return next, nil
}
