package service

import (
	"errors"
	"fmt"
	"strings"

	"sidomulyo/core"
	"sidomulyo/models"

	"gorm.io/gorm"
)

// SuratStatuses lists the surat workflow states.
var SuratStatuses = []string{models.SuratMenunggu, models.SuratDiproses, models.SuratSelesai}

// SuratService handles letter requests
type SuratService struct {
	db *gorm.DB
}

// NewSuratService constructs a surat service
func NewSuratService(db *gorm.DB) *SuratService {
	return &SuratService{db: db}
}

func (s *SuratService) withUser() *gorm.DB {
	return s.db.Table("surat AS t").
		Select("t.*, u.username AS username, u.nama AS user_nama").
		Joins("LEFT JOIN users u ON t.user_id = u.id")
}

// SuratFilter narrows the admin listing.
type SuratFilter struct {
	Status     string
	JenisSurat string
	UserID     uint
}

// List returns a page of surat, newest first.
func (s *SuratService) List(f SuratFilter, page, limit int) ([]models.Surat, int64, error) {
	page, limit = normalizePage(page, limit)

	count := s.db.Model(&models.Surat{})
	query := s.withUser()
	if f.Status != "" {
		count = count.Where("status = ?", f.Status)
		query = query.Where("t.status = ?", f.Status)
	}
	if f.JenisSurat != "" {
		count = count.Where("jenis_surat = ?", f.JenisSurat)
		query = query.Where("t.jenis_surat = ?", f.JenisSurat)
	}
	if f.UserID != 0 {
		count = count.Where("user_id = ?", f.UserID)
		query = query.Where("t.user_id = ?", f.UserID)
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count surat: %w", err)
	}

	var items []models.Surat
	if err := query.Order("t.tanggal_pengajuan DESC, t.id DESC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list surat: %w", err)
	}
	return items, total, nil
}

// Get fetches a surat with its attachments. Non-admin viewers only see their own.
func (s *SuratService) Get(id uint, viewer *models.User) (*models.Surat, error) {
	query := s.withUser().Where("t.id = ?", id)
	if !viewer.IsAdmin() {
		query = query.Where("t.user_id = ?", viewer.ID)
	}

	var item models.Surat
	if err := query.Take(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Surat tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get surat: %w", err)
	}

	if err := s.db.Where("surat_id = ?", id).Order("id ASC").Find(&item.Lampiran).Error; err != nil {
		return nil, fmt.Errorf("failed to load lampiran: %w", err)
	}
	if item.Lampiran == nil {
		item.Lampiran = []models.LampiranSurat{}
	}
	return &item, nil
}

// Create stores a surat request and its attachments for userID.
func (s *SuratService) Create(userID uint, in models.SuratInput, lampiran []models.LampiranSurat) (*models.Surat, error) {
	if strings.Trim(in.NIK, "0123456789") != "" {
		return nil, core.Invalid("nik", "NIK harus 16 digit")
	}

	item := models.Surat{
		UserID:          userID,
		Nama:            strings.TrimSpace(in.Nama),
		NIK:             in.NIK,
		JenisKelamin:    in.JenisKelamin,
		TempatLahir:     strings.TrimSpace(in.TempatLahir),
		TanggalLahir:    in.TanggalLahir,
		Pekerjaan:       strings.TrimSpace(in.Pekerjaan),
		Kewarganegaraan: strings.TrimSpace(in.Kewarganegaraan),
		Agama:           strings.TrimSpace(in.Agama),
		NoHP:            strings.TrimSpace(in.NoHP),
		AlamatKTP:       in.AlamatKTP,
		AlamatSekarang:  in.AlamatSekarang,
		JenisSurat:      strings.TrimSpace(in.JenisSurat),
		Status:          models.SuratMenunggu,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lampiran").Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create surat: %w", err)
		}
		for i := range lampiran {
			lampiran[i].SuratID = item.ID
			if lampiran[i].JenisPersyaratan == "" {
				lampiran[i].JenisPersyaratan = "Dokumen Pendukung"
			}
		}
		if len(lampiran) > 0 {
			if err := tx.Create(&lampiran).Error; err != nil {
				return fmt.Errorf("failed to create lampiran: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateStatus moves a surat to another workflow state.
func (s *SuratService) UpdateStatus(id uint, status string) (*models.Surat, error) {
	if !contains(SuratStatuses, status) {
		return nil, core.Invalid("status", "Status tidak valid")
	}

	var item models.Surat
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Surat tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get surat: %w", err)
	}
	if err := s.db.Model(&item).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update surat: %w", err)
	}
	item.Status = status
	return &item, nil
}

// Delete removes a surat and its attachments
func (s *SuratService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Surat{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check surat: %w", err)
		}
		if count == 0 {
			return core.NewNotFoundError("Surat tidak ditemukan")
		}
		if err := tx.Where("surat_id = ?", id).Delete(&models.LampiranSurat{}).Error; err != nil {
			return fmt.Errorf("failed to delete lampiran: %w", err)
		}
		if err := tx.Delete(&models.Surat{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete surat: %w", err)
		}
		return nil
	})
}

// Stats counts surat per status
func (s *SuratService) Stats() (*models.SuratStats, error) {
	counts, err := countByStatus(s.db.Model(&models.Surat{}))
	if err != nil {
		return nil, fmt.Errorf("failed to count surat: %w", err)
	}
	out := &models.SuratStats{
		Menunggu: counts[models.SuratMenunggu],
		Diproses: counts[models.SuratDiproses],
		Selesai:  counts[models.SuratSelesai],
	}
	for _, n := range counts {
		out.Total += n
	}
	return out, nil
}

func countByStatus(query *gorm.DB) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := query.Select("status, COUNT(*) AS total").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Total
	}
	return out, nil
}
