package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"sidomulyo/core"
	"sidomulyo/models"

	"gorm.io/gorm"
)

// PengaduanStatuses lists the complaint workflow states.
var PengaduanStatuses = []string{models.PengaduanBaru, models.PengaduanDiproses, models.PengaduanSelesai}

var (
	nikPattern     = regexp.MustCompile(`^\d{16}$`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// PengaduanService handles citizen complaints
type PengaduanService struct {
	db *gorm.DB
}

// NewPengaduanService constructs a pengaduan service
func NewPengaduanService(db *gorm.DB) *PengaduanService {
	return &PengaduanService{db: db}
}

// List returns a page of pengaduan, newest first, optionally filtered by status.
func (s *PengaduanService) List(status string, page, limit int) ([]models.Pengaduan, int64, error) {
	page, limit = normalizePage(page, limit)

	query := s.db.Model(&models.Pengaduan{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pengaduan: %w", err)
	}

	var items []models.Pengaduan
	if err := query.Order("created_at DESC, id DESC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list pengaduan: %w", err)
	}
	return items, total, nil
}

// ListByUser returns a page of the complaints filed by userID.
func (s *PengaduanService) ListByUser(userID uint, page, limit int) ([]models.Pengaduan, int64, error) {
	page, limit = normalizePage(page, limit)

	query := s.db.Model(&models.Pengaduan{}).Where("user_id = ?", userID)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pengaduan: %w", err)
	}

	var items []models.Pengaduan
	if err := query.Order("tanggal_pengaduan DESC, id DESC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list pengaduan: %w", err)
	}
	return items, total, nil
}

// Get fetches a pengaduan by ID
func (s *PengaduanService) Get(id uint) (*models.Pengaduan, error) {
	var item models.Pengaduan
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Pengaduan tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get pengaduan: %w", err)
	}
	return &item, nil
}

// Create files a complaint. The contact email comes from the reporter's account.
func (s *PengaduanService) Create(reporter *models.User, in models.PengaduanInput, lampiran *string) (*models.Pengaduan, error) {
	email := strings.TrimSpace(in.Email)
	if reporter != nil {
		email = reporter.Email
	}

	item := models.Pengaduan{
		Nama:             strings.TrimSpace(in.Nama),
		Email:            email,
		NoHP:             strings.TrimSpace(in.NoHP),
		Alamat:           strings.TrimSpace(in.Alamat),
		Judul:            strings.TrimSpace(in.Judul),
		Uraian:           strings.TrimSpace(in.Uraian),
		NIK:              strings.TrimSpace(in.NIK),
		TanggalPengaduan: strings.TrimSpace(in.TanggalPengaduan),
		Lampiran:         lampiran,
		Status:           models.PengaduanBaru,
	}
	if reporter != nil {
		item.UserID = &reporter.ID
	}

	switch {
	case item.Nama == "" || item.Email == "" || item.NoHP == "" || item.Alamat == "" ||
		item.Judul == "" || item.Uraian == "" || item.NIK == "" || item.TanggalPengaduan == "":
		return nil, core.NewBadRequestError("Semua field wajib diisi.")
	case reporter == nil && !emailPattern.MatchString(item.Email):
		return nil, core.NewBadRequestError("Email tidak valid.")
	case !nikPattern.MatchString(item.NIK):
		return nil, core.NewBadRequestError("NIK harus 16 digit.")
	case !isoDatePattern.MatchString(item.TanggalPengaduan):
		return nil, core.NewBadRequestError("Tanggal pengaduan wajib format YYYY-MM-DD.")
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create pengaduan: %w", err)
	}
	return &item, nil
}

// UpdateStatus moves a pengaduan to another workflow state.
func (s *PengaduanService) UpdateStatus(id uint, status string) (*models.Pengaduan, error) {
	if !contains(PengaduanStatuses, status) {
		return nil, core.Invalid("status", "Status tidak valid")
	}
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(item).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update pengaduan: %w", err)
	}
	item.Status = status
	return item, nil
}

// Delete removes a pengaduan
func (s *PengaduanService) Delete(id uint) error {
	res := s.db.Delete(&models.Pengaduan{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete pengaduan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return core.NewNotFoundError("Pengaduan tidak ditemukan")
	}
	return nil
}

// Stats counts pengaduan per status
func (s *PengaduanService) Stats() (*models.PengaduanStats, error) {
	counts, err := countByStatus(s.db.Model(&models.Pengaduan{}))
	if err != nil {
		return nil, fmt.Errorf("failed to count pengaduan: %w", err)
	}
	out := &models.PengaduanStats{
		Baru:     counts[models.PengaduanBaru],
		Diproses: counts[models.PengaduanDiproses],
		Selesai:  counts[models.PengaduanSelesai],
	}
	for _, n := range counts {
		out.Total += n
	}
	return out, nil
}
