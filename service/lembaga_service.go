package service

import (
	"errors"
	"fmt"
	"strings"

	"sidomulyo/core"
	"sidomulyo/models"

	"gorm.io/gorm"
)

// LembagaService handles village institutions and their boards
type LembagaService struct {
	db *gorm.DB
}

// NewLembagaService constructs a lembaga service
func NewLembagaService(db *gorm.DB) *LembagaService {
	return &LembagaService{db: db}
}

func pengurusByJabatan(db *gorm.DB) *gorm.DB {
	return db.Order("jabatan ASC, id ASC")
}

// List returns all lembaga ordered by name, each with its pengurus.
func (s *LembagaService) List() ([]models.Lembaga, error) {
	var items []models.Lembaga
	if err := s.db.Preload("Pengurus", pengurusByJabatan).Order("nama_lembaga ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list lembaga: %w", err)
	}
	for i := range items {
		if items[i].Pengurus == nil {
			items[i].Pengurus = []models.Pengurus{}
		}
	}
	return items, nil
}

// Get fetches a lembaga with its pengurus
func (s *LembagaService) Get(id uint) (*models.Lembaga, error) {
	var item models.Lembaga
	if err := s.db.Preload("Pengurus", pengurusByJabatan).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Lembaga tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get lembaga: %w", err)
	}
	if item.Pengurus == nil {
		item.Pengurus = []models.Pengurus{}
	}
	return &item, nil
}

func (s *LembagaService) checkNama(nama string, excludeID uint) error {
	var count int64
	query := s.db.Model(&models.Lembaga{}).Where("nama_lembaga = ?", nama)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check lembaga: %w", err)
	}
	if count > 0 {
		return core.NewDuplicateError("Lembaga dengan nama yang sama sudah ada", 400)
	}
	return nil
}

// Create stores a new lembaga
func (s *LembagaService) Create(in models.LembagaInput) (*models.Lembaga, error) {
	in.Normalize()
	if in.Deskripsi != nil && *in.Deskripsi == "" {
		return nil, core.Invalid("deskripsi", "Deskripsi tidak boleh kosong jika diisi")
	}
	if err := s.checkNama(in.NamaLembaga, 0); err != nil {
		return nil, err
	}

	item := models.Lembaga{NamaLembaga: in.NamaLembaga, Deskripsi: in.Deskripsi}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create lembaga: %w", err)
	}
	return &item, nil
}

// Update renames or redescribes a lembaga
func (s *LembagaService) Update(id uint, in models.LembagaInput) (*models.Lembaga, error) {
	in.Normalize()
	if in.Deskripsi != nil && *in.Deskripsi == "" {
		return nil, core.Invalid("deskripsi", "Deskripsi tidak boleh kosong jika diisi")
	}

	var item models.Lembaga
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Lembaga tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get lembaga: %w", err)
	}
	if err := s.checkNama(in.NamaLembaga, id); err != nil {
		return nil, err
	}

	item.NamaLembaga = in.NamaLembaga
	item.Deskripsi = in.Deskripsi
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update lembaga: %w", err)
	}
	return &item, nil
}

// Delete removes a lembaga and its pengurus
func (s *LembagaService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item models.Lembaga
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return core.NewNotFoundError("Lembaga tidak ditemukan")
			}
			return fmt.Errorf("failed to get lembaga: %w", err)
		}
		if err := tx.Where("lembaga_id = ?", id).Delete(&models.Pengurus{}).Error; err != nil {
			return fmt.Errorf("failed to delete pengurus: %w", err)
		}
		if err := tx.Delete(&item).Error; err != nil {
			return fmt.Errorf("failed to delete lembaga: %w", err)
		}
		return nil
	})
}

// AddPengurus adds a board member to a lembaga
func (s *LembagaService) AddPengurus(lembagaID uint, in models.PengurusInput, foto *string) (*models.Pengurus, error) {
	var count int64
	if err := s.db.Model(&models.Lembaga{}).Where("id = ?", lembagaID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check lembaga: %w", err)
	}
	if count == 0 {
		return nil, core.NewNotFoundError("Lembaga tidak ditemukan")
	}

	item := models.Pengurus{
		LembagaID: lembagaID,
		Nama:      strings.TrimSpace(in.Nama),
		Jabatan:   strings.TrimSpace(in.Jabatan),
		Foto:      foto,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create pengurus: %w", err)
	}
	return &item, nil
}

func (s *LembagaService) getPengurus(id uint) (*models.Pengurus, error) {
	var item models.Pengurus
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Pengurus tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get pengurus: %w", err)
	}
	return &item, nil
}

// UpdatePengurus replaces a board member. foto keeps the current photo when nil.
func (s *LembagaService) UpdatePengurus(id uint, in models.PengurusInput, foto *string) (*models.Pengurus, error) {
	item, err := s.getPengurus(id)
	if err != nil {
		return nil, err
	}

	item.Nama = strings.TrimSpace(in.Nama)
	item.Jabatan = strings.TrimSpace(in.Jabatan)
	if foto != nil {
		item.Foto = foto
	}
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update pengurus: %w", err)
	}
	return item, nil
}

// DeletePengurus removes a board member
func (s *LembagaService) DeletePengurus(id uint) error {
	res := s.db.Delete(&models.Pengurus{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete pengurus: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return core.NewNotFoundError("Pengurus tidak ditemukan")
	}
	return nil
}
