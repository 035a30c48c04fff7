package service

import (
	"errors"
	"fmt"
	"strings"

	"sidomulyo/core"
	"sidomulyo/models"

	"gorm.io/gorm"
)

// StrukturService handles the village government structure
type StrukturService struct {
	db *gorm.DB
}

// NewStrukturService constructs a struktur service
func NewStrukturService(db *gorm.DB) *StrukturService {
	return &StrukturService{db: db}
}

// tipeRank orders rows by models.StrukturTipe, unknown tipes last.
func tipeRank() string {
	var b strings.Builder
	b.WriteString("CASE tipe")
	for i, t := range models.StrukturTipe {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", t, i)
	}
	fmt.Fprintf(&b, " ELSE %d END", len(models.StrukturTipe))
	return b.String()
}

// List returns the structure ordered by tipe rank then name.
func (s *StrukturService) List() ([]models.Struktur, error) {
	var items []models.Struktur
	if err := s.db.Order(tipeRank()).Order("nama ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list struktur: %w", err)
	}
	return items, nil
}

// ListByTipe returns the positions of one tipe ordered by name.
func (s *StrukturService) ListByTipe(tipe string) ([]models.Struktur, error) {
	var items []models.Struktur
	if err := s.db.Where("tipe = ?", tipe).Order("nama ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list struktur: %w", err)
	}
	return items, nil
}

// Get fetches a position by ID
func (s *StrukturService) Get(id uint) (*models.Struktur, error) {
	var item models.Struktur
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Struktur organisasi tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get struktur: %w", err)
	}
	return &item, nil
}

func (s *StrukturService) checkJabatan(tipe, jabatan string, excludeID uint) error {
	var count int64
	query := s.db.Model(&models.Struktur{}).Where("tipe = ? AND jabatan = ?", tipe, jabatan)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check struktur: %w", err)
	}
	if count > 0 {
		return core.NewDuplicateError("Struktur dengan tipe dan jabatan yang sama sudah ada", 400)
	}
	return nil
}

// Create stores a new position; (tipe, jabatan) must be unique.
func (s *StrukturService) Create(in models.StrukturInput, foto *string) (*models.Struktur, error) {
	in.Normalize()
	if err := s.checkJabatan(in.Tipe, in.Jabatan, 0); err != nil {
		return nil, err
	}

	item := models.Struktur{Nama: in.Nama, Jabatan: in.Jabatan, Tipe: in.Tipe, Foto: foto}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create struktur: %w", err)
	}
	return &item, nil
}

// Update replaces a position. foto keeps the current photo when nil.
func (s *StrukturService) Update(id uint, in models.StrukturInput, foto *string) (*models.Struktur, error) {
	in.Normalize()
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkJabatan(in.Tipe, in.Jabatan, id); err != nil {
		return nil, err
	}

	item.Nama = in.Nama
	item.Jabatan = in.Jabatan
	item.Tipe = in.Tipe
	if foto != nil {
		item.Foto = foto
	}
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update struktur: %w", err)
	}
	return item, nil
}

// Delete removes a position
func (s *StrukturService) Delete(id uint) error {
	res := s.db.Delete(&models.Struktur{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete struktur: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return core.NewNotFoundError("Struktur organisasi tidak ditemukan")
	}
	return nil
}

// Overview counts positions per tipe
func (s *StrukturService) Overview() (*models.StrukturOverview, error) {
	type row struct {
		Tipe  string
		Total int64
	}
	var rows []row
	if err := s.db.Model(&models.Struktur{}).Select("tipe, COUNT(*) AS total").Group("tipe").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count struktur: %w", err)
	}

	out := &models.StrukturOverview{}
	for _, r := range rows {
		out.Total += r.Total
		switch r.Tipe {
		case "kepala_desa":
			out.KepalaDesa = r.Total
		case "sekretaris":
			out.Sekretaris = r.Total
		case "kaur":
			out.Kaur = r.Total
		case "kasi":
			out.Kasi = r.Total
		case "kasun":
			out.Kasun = r.Total
		}
	}
	return out, nil
}
