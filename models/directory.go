package models

import (
	"strings"
	"time"
)

// Lembaga is a village institution (lembaga desa) with its board members.
type Lembaga struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	NamaLembaga string     `gorm:"column:nama_lembaga;uniqueIndex;size:255;not null" json:"nama_lembaga"`
	Deskripsi   *string    `gorm:"type:text" json:"deskripsi"`
	Pengurus    []Pengurus `gorm:"foreignKey:LembagaID" json:"pengurus,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Lembaga) TableName() string { return "lembaga_desa" }

// LembagaInput is the payload for creating and updating a lembaga.
type LembagaInput struct {
	NamaLembaga string  `json:"nama_lembaga" binding:"required"`
	Deskripsi   *string `json:"deskripsi"`
}

// Normalize trims whitespace from input fields
func (l *LembagaInput) Normalize() {
	l.NamaLembaga = strings.TrimSpace(l.NamaLembaga)
	if l.Deskripsi != nil {
		d := strings.TrimSpace(*l.Deskripsi)
		l.Deskripsi = &d
	}
}

// Pengurus is a board member of a lembaga.
type Pengurus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LembagaID uint      `gorm:"column:lembaga_id;index;not null" json:"lembaga_id"`
	Nama      string    `gorm:"size:128;not null" json:"nama"`
	Jabatan   string    `gorm:"size:128;not null" json:"jabatan"`
	Foto      *string   `json:"foto"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Pengurus) TableName() string { return "pengurus_lembaga" }

// PengurusInput is the form for board members.
type PengurusInput struct {
	Nama    string `form:"nama" json:"nama" binding:"required"`
	Jabatan string `form:"jabatan" json:"jabatan" binding:"required"`
}

// StrukturTipe values in display order.
var StrukturTipe = []string{"kepala_desa", "sekretaris", "kaur", "kasi", "kasun"}

// Struktur is a position in the village government structure.
type Struktur struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:128;not null" json:"nama"`
	Jabatan   string    `gorm:"size:128;not null;index:idx_struktur_tipe_jabatan" json:"jabatan"`
	Foto      *string   `json:"foto"`
	Tipe      string    `gorm:"size:32;not null;index:idx_struktur_tipe_jabatan" json:"tipe"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Struktur) TableName() string { return "struktur_organisasi" }

// StrukturInput is the form for structure positions.
type StrukturInput struct {
	Nama    string `form:"nama" json:"nama" binding:"required"`
	Jabatan string `form:"jabatan" json:"jabatan" binding:"required"`
	Tipe    string `form:"tipe" json:"tipe" binding:"required,oneof=kepala_desa sekretaris kaur kasi kasun"`
}

// Normalize trims whitespace from input fields
func (s *StrukturInput) Normalize() {
	s.Nama = strings.TrimSpace(s.Nama)
	s.Jabatan = strings.TrimSpace(s.Jabatan)
	s.Tipe = strings.TrimSpace(s.Tipe)
}

// StrukturOverview counts positions per tipe.
type StrukturOverview struct {
	Total      int64 `json:"total"`
	KepalaDesa int64 `json:"kepala_desa"`
	Sekretaris int64 `json:"sekretaris"`
	Kaur       int64 `json:"kaur"`
	Kasi       int64 `json:"kasi"`
	Kasun      int64 `json:"kasun"`
}
