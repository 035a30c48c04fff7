// Package store keeps the two resources that live in flat JSON files
// instead of the relational database: the statistik dashboard and the
// tentang (about page) sections.
package store

import (
	"errors"
	"fmt"
	"os"

	"sidomulyo/models"

	"github.com/tailscale/hujson"
)

var (
	ErrUnknownSection = errors.New("unknown tentang section")
	ErrStaleSection   = errors.New("tentang section was modified by another request")
)

// StatistikRepository persists the statistik collection.
type StatistikRepository interface {
	Read() ([]models.Statistik, error)
	Write(items []models.Statistik) error
	NextID(items []models.Statistik) int
	// Update runs fn on the current collection and writes its result,
	// holding the store lock for the whole cycle.
	Update(fn func(items []models.Statistik) ([]models.Statistik, error)) error
}

// TentangRepository persists the about-page sections.
type TentangRepository interface {
	Read() (models.Tentang, error)
	Write(t models.Tentang) error
	EnsureInitialized() error
	// UpdateSection replaces one section with the result of fn. When
	// expectedUpdatedAt is non-empty it must match the stored stamp.
	UpdateSection(key, expectedUpdatedAt string, fn func(current models.TentangSection) (models.TentangSection, error)) (models.TentangSection, error)
}

// NextID returns one more than the largest id in items, or 1 when items is empty.
func NextID(items []models.Statistik) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// readJSONFile loads path and standardizes it so hand-edited files with
// comments or trailing commas still parse.
func readJSONFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return std, nil
}
