package models

import "strings"

// Statistik is one labeled number of the public statistics dashboard.
type Statistik struct {
	ID       int    `json:"id"`
	Kategori string `json:"kategori"`
	Label    string `json:"label"`
	Value    int    `json:"value"`
	Color    string `json:"color,omitempty"`
}

// StatistikInput is the payload for creating and updating a statistik record.
type StatistikInput struct {
	Kategori string `json:"kategori" binding:"required"`
	Label    string `json:"label" binding:"required"`
	Value    *int   `json:"value" binding:"required,min=0"`
	Color    string `json:"color" binding:"omitempty,hexcolor"`
}

// Normalize trims whitespace from input fields
func (s *StatistikInput) Normalize() {
	s.Kategori = strings.TrimSpace(s.Kategori)
	s.Label = strings.TrimSpace(s.Label)
	s.Color = strings.TrimSpace(s.Color)
}

// StatistikValue sets the value of one record in a bulk update.
type StatistikValue struct {
	ID    int  `json:"id" binding:"required"`
	Value *int `json:"value" binding:"required,min=0"`
}

// StatistikBulkUpdate is the payload of PUT /api/statistik/bulk/update.
type StatistikBulkUpdate struct {
	Statistik []StatistikValue `json:"statistik" binding:"required,dive"`
}

// StatistikOverview summarises the statistik collection.
type StatistikOverview struct {
	TotalItems    int `json:"total_items"`
	TotalKategori int `json:"total_kategori"`
}
