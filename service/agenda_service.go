package service

import (
	"errors"
	"fmt"
	"strings"

	"sidomulyo/core"
	"sidomulyo/models"

	"gorm.io/gorm"
)

// AgendaService handles village events
type AgendaService struct {
	db *gorm.DB
}

// NewAgendaService constructs an agenda service
func NewAgendaService(db *gorm.DB) *AgendaService {
	return &AgendaService{db: db}
}

// padWaktu turns "8:30" into "08:30" so times sort as text.
func padWaktu(w string) string {
	if i := strings.IndexByte(w, ':'); i == 1 {
		return "0" + w
	}
	return w
}

// List returns agenda ordered by date and time, optionally filtered by status.
func (s *AgendaService) List(status string) ([]models.Agenda, error) {
	query := withAuthor(s.db, "agenda")
	if status != "" {
		query = query.Where("t.status = ?", status)
	}

	var items []models.Agenda
	if err := query.Order("t.tanggal ASC, t.waktu ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list agenda: %w", err)
	}
	return items, nil
}

// Get fetches an agenda by ID
func (s *AgendaService) Get(id uint) (*models.Agenda, error) {
	var item models.Agenda
	if err := withAuthor(s.db, "agenda").Where("t.id = ?", id).Take(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Agenda tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get agenda: %w", err)
	}
	return &item, nil
}

// Create stores a new agenda authored by userID.
func (s *AgendaService) Create(in models.AgendaInput, img *string, userID uint) (*models.Agenda, error) {
	in.Normalize()

	var count int64
	if err := s.db.Model(&models.Agenda{}).Where("title = ? AND tanggal = ?", in.Title, in.Tanggal).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check agenda: %w", err)
	}
	if count > 0 {
		return nil, core.NewDuplicateError("Agenda dengan judul dan tanggal yang sama sudah ada.", 409)
	}

	item := models.Agenda{
		Title:     in.Title,
		Deskripsi: in.Deskripsi,
		Tanggal:   in.Tanggal,
		Waktu:     padWaktu(in.Waktu),
		Lokasi:    in.Lokasi,
		Status:    in.Status,
		Img:       img,
		CreatedBy: &userID,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create agenda: %w", err)
	}
	return &item, nil
}

// Update replaces an agenda. img keeps the current image when nil.
func (s *AgendaService) Update(id uint, in models.AgendaInput, img *string) (*models.Agenda, error) {
	in.Normalize()
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Deskripsi = in.Deskripsi
	item.Tanggal = in.Tanggal
	item.Waktu = padWaktu(in.Waktu)
	item.Lokasi = in.Lokasi
	item.Status = in.Status
	if img != nil {
		item.Img = img
	}
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update agenda: %w", err)
	}
	return item, nil
}

// Delete removes an agenda
func (s *AgendaService) Delete(id uint) error {
	res := s.db.Delete(&models.Agenda{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete agenda: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return core.NewNotFoundError("Agenda tidak ditemukan")
	}
	return nil
}
