package service

import (
	"errors"
	"fmt"
	"strings"

	"sidomulyo/core"
	"sidomulyo/models"

	"gorm.io/gorm"
)

// PariwisataService handles tourism listings
type PariwisataService struct {
	db *gorm.DB
}

// NewPariwisataService constructs a pariwisata service
func NewPariwisataService(db *gorm.DB) *PariwisataService {
	return &PariwisataService{db: db}
}

// ListPage returns pariwisata with pagination, newest first.
func (s *PariwisataService) ListPage(page, limit int) ([]models.Pariwisata, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := s.db.Model(&models.Pariwisata{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pariwisata: %w", err)
	}

	var items []models.Pariwisata
	if err := s.db.Order("created_at DESC, id DESC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list pariwisata: %w", err)
	}
	return items, total, nil
}

// Get fetches a pariwisata by ID
func (s *PariwisataService) Get(id uint) (*models.Pariwisata, error) {
	var item models.Pariwisata
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Pariwisata tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get pariwisata: %w", err)
	}
	return &item, nil
}

func optionalDate(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Create stores a new pariwisata
func (s *PariwisataService) Create(in models.PariwisataInput, img *string) (*models.Pariwisata, error) {
	item := models.Pariwisata{
		Nama:      strings.TrimSpace(in.Nama),
		Deskripsi: in.Deskripsi,
		Img:       img,
		Tanggal:   optionalDate(in.Tanggal),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create pariwisata: %w", err)
	}
	return &item, nil
}

// Update replaces a pariwisata. img keeps the current image when nil.
func (s *PariwisataService) Update(id uint, in models.PariwisataInput, img *string) (*models.Pariwisata, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Nama = strings.TrimSpace(in.Nama)
	item.Deskripsi = in.Deskripsi
	item.Tanggal = optionalDate(in.Tanggal)
	if img != nil {
		item.Img = img
	}
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update pariwisata: %w", err)
	}
	return item, nil
}

// Delete removes a pariwisata
func (s *PariwisataService) Delete(id uint) error {
	res := s.db.Delete(&models.Pariwisata{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete pariwisata: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return core.NewNotFoundError("Pariwisata tidak ditemukan")
	}
	return nil
}
