package service

import (
	"errors"
	"fmt"
	"sort"

	"sidomulyo/core"
	"sidomulyo/models"
	"sidomulyo/store"
)

// StatistikService manages the dashboard numbers kept in the statistik file
type StatistikService struct {
	repo store.StatistikRepository
}

// NewStatistikService constructs a statistik service
func NewStatistikService(repo store.StatistikRepository) *StatistikService {
	return &StatistikService{repo: repo}
}

func sortStatistik(items []models.Statistik) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Kategori != items[j].Kategori {
			return items[i].Kategori < items[j].Kategori
		}
		return items[i].Label < items[j].Label
	})
}

// Grouped returns the records keyed by kategori, each group sorted by label.
// A non-empty kategori restricts the result to that group.
func (s *StatistikService) Grouped(kategori string) (map[string][]models.Statistik, error) {
	items, err := s.repo.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read statistik: %w", err)
	}
	sortStatistik(items)

	out := make(map[string][]models.Statistik)
	for _, it := range items {
		if kategori != "" && it.Kategori != kategori {
			continue
		}
		out[it.Kategori] = append(out[it.Kategori], it)
	}
	return out, nil
}

// ByKategori returns one kategori's records sorted by label.
func (s *StatistikService) ByKategori(kategori string) ([]models.Statistik, error) {
	items, err := s.repo.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read statistik: %w", err)
	}
	sortStatistik(items)

	out := []models.Statistik{}
	for _, it := range items {
		if it.Kategori == kategori {
			out = append(out, it)
		}
	}
	return out, nil
}

// Overview counts records and distinct kategori
func (s *StatistikService) Overview() (*models.StatistikOverview, error) {
	items, err := s.repo.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read statistik: %w", err)
	}
	kategori := make(map[string]struct{})
	for _, it := range items {
		kategori[it.Kategori] = struct{}{}
	}
	return &models.StatistikOverview{TotalItems: len(items), TotalKategori: len(kategori)}, nil
}

func validateStatistik(in *models.StatistikInput) error {
	in.Normalize()
	var errs core.ValidationErrors
	if in.Kategori == "" {
		errs = append(errs, core.FieldError{Field: "kategori", Msg: "Kategori wajib diisi"})
	}
	if in.Label == "" {
		errs = append(errs, core.FieldError{Field: "label", Msg: "Label wajib diisi"})
	}
	if in.Value == nil || *in.Value < 0 {
		errs = append(errs, core.FieldError{Field: "value", Msg: "Value harus berupa angka positif"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func errDuplicateStatistik() error {
	return core.NewDuplicateError("Statistik dengan kategori dan label yang sama sudah ada", 400)
}

// Create appends a record; (kategori, label) must be unique.
func (s *StatistikService) Create(in models.StatistikInput) (*models.Statistik, error) {
	if err := validateStatistik(&in); err != nil {
		return nil, err
	}

	var created models.Statistik
	err := s.repo.Update(func(items []models.Statistik) ([]models.Statistik, error) {
		for _, it := range items {
			if it.Kategori == in.Kategori && it.Label == in.Label {
				return nil, errDuplicateStatistik()
			}
		}
		created = models.Statistik{
			ID:       s.repo.NextID(items),
			Kategori: in.Kategori,
			Label:    in.Label,
			Value:    *in.Value,
			Color:    in.Color,
		}
		return append(items, created), nil
	})
	if err != nil {
		return nil, wrapStoreError("create statistik", err)
	}
	return &created, nil
}

// Update replaces a record's fields. An empty color keeps the stored one.
func (s *StatistikService) Update(id int, in models.StatistikInput) (*models.Statistik, error) {
	if err := validateStatistik(&in); err != nil {
		return nil, err
	}

	var updated models.Statistik
	err := s.repo.Update(func(items []models.Statistik) ([]models.Statistik, error) {
		idx := -1
		for i, it := range items {
			if it.ID == id {
				idx = i
			} else if it.Kategori == in.Kategori && it.Label == in.Label {
				return nil, errDuplicateStatistik()
			}
		}
		if idx < 0 {
			return nil, core.NewNotFoundError("Statistik tidak ditemukan")
		}
		items[idx].Kategori = in.Kategori
		items[idx].Label = in.Label
		items[idx].Value = *in.Value
		if in.Color != "" {
			items[idx].Color = in.Color
		}
		updated = items[idx]
		return items, nil
	})
	if err != nil {
		return nil, wrapStoreError("update statistik", err)
	}
	return &updated, nil
}

// Delete removes a record by id
func (s *StatistikService) Delete(id int) error {
	err := s.repo.Update(func(items []models.Statistik) ([]models.Statistik, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, core.NewNotFoundError("Statistik tidak ditemukan")
	})
	return wrapStoreError("delete statistik", err)
}

// BulkUpdate sets the value of each listed id. Unknown ids are skipped.
func (s *StatistikService) BulkUpdate(values []models.StatistikValue) (int, error) {
	changed := 0
	err := s.repo.Update(func(items []models.Statistik) ([]models.Statistik, error) {
		index := make(map[int]int, len(items))
		for i, it := range items {
			index[it.ID] = i
		}
		for _, v := range values {
			i, ok := index[v.ID]
			if !ok || v.Value == nil {
				continue
			}
			items[i].Value = *v.Value
			changed++
		}
		return items, nil
	})
	if err != nil {
		return 0, wrapStoreError("bulk update statistik", err)
	}
	return changed, nil
}

// wrapStoreError adds context to storage failures while letting
// AppError values through untouched.
func wrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *core.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
