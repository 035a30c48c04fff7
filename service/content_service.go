package service

import (
	"errors"
	"fmt"

	"sidomulyo/core"
	"sidomulyo/models"

	"gorm.io/gorm"
)

// withAuthor selects rows of table together with the creator's name.
func withAuthor(db *gorm.DB, table string) *gorm.DB {
	return db.Table(table + " AS t").
		Select("t.*, u.nama AS created_by_name").
		Joins("LEFT JOIN users u ON t.created_by = u.id")
}

func checkArticle(in *models.ArticleInput, kategori []string) error {
	in.Normalize()
	if !contains(kategori, in.Kategori) {
		return core.Invalid("kategori", "Kategori tidak valid")
	}
	return nil
}

// BeritaService handles news articles
type BeritaService struct {
	db *gorm.DB
}

// NewBeritaService constructs a berita service
func NewBeritaService(db *gorm.DB) *BeritaService {
	return &BeritaService{db: db}
}

// List returns a page of berita, newest first, optionally filtered by kategori.
func (s *BeritaService) List(kategori string, page, limit int) ([]models.Berita, int64, error) {
	page, limit = normalizePage(page, limit)

	count := s.db.Model(&models.Berita{})
	query := withAuthor(s.db, "berita")
	if kategori != "" {
		count = count.Where("kategori = ?", kategori)
		query = query.Where("t.kategori = ?", kategori)
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count berita: %w", err)
	}

	var items []models.Berita
	if err := query.Order("t.created_at DESC, t.id DESC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list berita: %w", err)
	}
	return items, total, nil
}

// Get fetches a berita by ID
func (s *BeritaService) Get(id uint) (*models.Berita, error) {
	var item models.Berita
	if err := withAuthor(s.db, "berita").Where("t.id = ?", id).Take(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Berita tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get berita: %w", err)
	}
	return &item, nil
}

// Create stores a new berita authored by userID.
func (s *BeritaService) Create(in models.ArticleInput, img *string, userID uint) (*models.Berita, error) {
	if err := checkArticle(&in, models.BeritaKategori); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Berita{}).Where("title = ? AND tanggal = ?", in.Title, in.Tanggal).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check berita: %w", err)
	}
	if count > 0 {
		return nil, core.NewDuplicateError("Berita dengan judul dan tanggal yang sama sudah ada.", 409)
	}

	item := models.Berita{
		Title:     in.Title,
		Content:   in.Content,
		Kategori:  in.Kategori,
		Img:       img,
		Tanggal:   in.Tanggal,
		CreatedBy: &userID,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create berita: %w", err)
	}
	return &item, nil
}

// Update replaces a berita. img keeps the current image when nil.
func (s *BeritaService) Update(id uint, in models.ArticleInput, img *string) (*models.Berita, error) {
	if err := checkArticle(&in, models.BeritaKategori); err != nil {
		return nil, err
	}
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Content = in.Content
	item.Kategori = in.Kategori
	item.Tanggal = in.Tanggal
	if img != nil {
		item.Img = img
	}
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update berita: %w", err)
	}
	return item, nil
}

// Delete removes a berita
func (s *BeritaService) Delete(id uint) error {
	res := s.db.Delete(&models.Berita{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete berita: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return core.NewNotFoundError("Berita tidak ditemukan")
	}
	return nil
}

// PengumumanService handles announcements
type PengumumanService struct {
	db *gorm.DB
}

// NewPengumumanService constructs a pengumuman service
func NewPengumumanService(db *gorm.DB) *PengumumanService {
	return &PengumumanService{db: db}
}

// List returns a page of pengumuman, newest first, optionally filtered by kategori.
func (s *PengumumanService) List(kategori string, page, limit int) ([]models.Pengumuman, int64, error) {
	page, limit = normalizePage(page, limit)

	count := s.db.Model(&models.Pengumuman{})
	query := withAuthor(s.db, "pengumuman")
	if kategori != "" {
		count = count.Where("kategori = ?", kategori)
		query = query.Where("t.kategori = ?", kategori)
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pengumuman: %w", err)
	}

	var items []models.Pengumuman
	if err := query.Order("t.created_at DESC, t.id DESC").Offset((page - 1) * limit).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list pengumuman: %w", err)
	}
	return items, total, nil
}

// Get fetches a pengumuman by ID
func (s *PengumumanService) Get(id uint) (*models.Pengumuman, error) {
	var item models.Pengumuman
	if err := withAuthor(s.db, "pengumuman").Where("t.id = ?", id).Take(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Pengumuman tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get pengumuman: %w", err)
	}
	return &item, nil
}

// Create stores a new pengumuman authored by userID.
func (s *PengumumanService) Create(in models.ArticleInput, img *string, userID uint) (*models.Pengumuman, error) {
	if err := checkArticle(&in, models.PengumumanKategori); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Pengumuman{}).Where("title = ? AND tanggal = ?", in.Title, in.Tanggal).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check pengumuman: %w", err)
	}
	if count > 0 {
		return nil, core.NewDuplicateError("Pengumuman dengan judul dan tanggal yang sama sudah ada.", 409)
	}

	item := models.Pengumuman{
		Title:     in.Title,
		Content:   in.Content,
		Kategori:  in.Kategori,
		Img:       img,
		Tanggal:   in.Tanggal,
		CreatedBy: &userID,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create pengumuman: %w", err)
	}
	return &item, nil
}

// Update replaces a pengumuman. img keeps the current image when nil.
func (s *PengumumanService) Update(id uint, in models.ArticleInput, img *string) (*models.Pengumuman, error) {
	if err := checkArticle(&in, models.PengumumanKategori); err != nil {
		return nil, err
	}
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Content = in.Content
	item.Kategori = in.Kategori
	item.Tanggal = in.Tanggal
	if img != nil {
		item.Img = img
	}
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update pengumuman: %w", err)
	}
	return item, nil
}

// Delete removes a pengumuman
func (s *PengumumanService) Delete(id uint) error {
	res := s.db.Delete(&models.Pengumuman{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete pengumuman: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return core.NewNotFoundError("Pengumuman tidak ditemukan")
	}
	return nil
}
