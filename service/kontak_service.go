package service

import (
	"errors"
	"fmt"
	"strings"

	"sidomulyo/core"
	"sidomulyo/models"

	"gorm.io/gorm"
)

const kontakDesaID = 1

// KontakService handles contact-form messages and the village contact card
type KontakService struct {
	db *gorm.DB
}

// NewKontakService constructs a kontak service
func NewKontakService(db *gorm.DB) *KontakService {
	return &KontakService{db: db}
}

// CreatePesan stores a contact-form message
func (s *KontakService) CreatePesan(in models.PesanKontakInput) (*models.PesanKontak, error) {
	item := models.PesanKontak{
		Nama:  strings.TrimSpace(in.Nama),
		Email: strings.TrimSpace(in.Email),
		Pesan: in.Pesan,
	}
	if phone := strings.TrimSpace(in.NoHP); phone != "" {
		item.NoHP = &phone
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create pesan: %w", err)
	}
	return &item, nil
}

// ListPesan returns all messages, newest first
func (s *KontakService) ListPesan() ([]models.PesanKontak, error) {
	var items []models.PesanKontak
	if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list pesan: %w", err)
	}
	return items, nil
}

// GetKontakDesa returns the village contact card
func (s *KontakService) GetKontakDesa() (*models.KontakDesa, error) {
	var item models.KontakDesa
	if err := s.db.Order("id ASC").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("Kontak desa belum diatur")
		}
		return nil, fmt.Errorf("failed to get kontak desa: %w", err)
	}
	return &item, nil
}

// UpdateKontakDesa creates or replaces the village contact card
func (s *KontakService) UpdateKontakDesa(in models.KontakDesaInput) (*models.KontakDesa, error) {
	item := models.KontakDesa{
		ID:        kontakDesaID,
		Alamat:    strings.TrimSpace(in.Alamat),
		Email:     strings.TrimSpace(in.Email),
		Whatsapp:  in.Whatsapp,
		Instagram: in.Instagram,
		Facebook:  in.Facebook,
	}
	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to update kontak desa: %w", err)
	}
	return &item, nil
}
