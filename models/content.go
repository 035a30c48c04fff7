package models

import (
	"strings"
	"time"
)

// Berita is a news article.
type Berita struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null;index:idx_berita_title_tanggal" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Kategori      string    `gorm:"size:32;not null;index" json:"kategori"`
	Img           *string   `json:"img"`
	Tanggal       string    `gorm:"size:10;not null;index:idx_berita_title_tanggal" json:"tanggal"`
	CreatedBy     *uint     `gorm:"column:created_by;index" json:"created_by"`
	CreatedByName *string   `gorm:"->;-:migration" json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Berita) TableName() string { return "berita" }

// BeritaKategori lists the accepted news categories.
var BeritaKategori = []string{"Pembangunan", "Sosial", "Agenda", "Pendidikan", "Lingkungan", "Kesehatan", "Pariwisata"}

// Pengumuman is an announcement.
type Pengumuman struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null;index:idx_pengumuman_title_tanggal" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Kategori      string    `gorm:"size:32;not null;index" json:"kategori"`
	Img           *string   `json:"img"`
	Tanggal       string    `gorm:"size:10;not null;index:idx_pengumuman_title_tanggal" json:"tanggal"`
	CreatedBy     *uint     `gorm:"column:created_by;index" json:"created_by"`
	CreatedByName *string   `gorm:"->;-:migration" json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Pengumuman) TableName() string { return "pengumuman" }

// PengumumanKategori lists the accepted announcement categories.
var PengumumanKategori = []string{"Umum", "Penting", "Darurat", "Informasi", "Layanan", "Kesehatan", "Pendidikan"}

// ArticleInput is the shared form for berita and pengumuman.
type ArticleInput struct {
	Title    string `form:"title" json:"title" binding:"required"`
	Content  string `form:"content" json:"content" binding:"required"`
	Kategori string `form:"kategori" json:"kategori" binding:"required"`
	Tanggal  string `form:"tanggal" json:"tanggal" binding:"required,datetime=2006-01-02"`
}

// Normalize trims whitespace from input fields
func (a *ArticleInput) Normalize() {
	a.Title = strings.TrimSpace(a.Title)
	a.Kategori = strings.TrimSpace(a.Kategori)
	a.Tanggal = strings.TrimSpace(a.Tanggal)
}

const (
	AgendaAkanDatang        = "Akan Datang"
	AgendaSedangBerlangsung = "Sedang Berlangsung"
	AgendaSelesai           = "Selesai"
)

// Agenda is a scheduled village event.
type Agenda struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null;index:idx_agenda_title_tanggal" json:"title"`
	Deskripsi     string    `gorm:"type:text;not null" json:"deskripsi"`
	Tanggal       string    `gorm:"size:10;not null;index:idx_agenda_title_tanggal" json:"tanggal"`
	Waktu         string    `gorm:"size:5;not null" json:"waktu"`
	Lokasi        string    `gorm:"size:255;not null" json:"lokasi"`
	Status        string    `gorm:"size:32;not null;default:'Akan Datang'" json:"status"`
	Img           *string   `json:"img"`
	CreatedBy     *uint     `gorm:"column:created_by;index" json:"created_by"`
	CreatedByName *string   `gorm:"->;-:migration" json:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Agenda) TableName() string { return "agenda" }

// AgendaInput is the form for creating and updating agenda entries.
type AgendaInput struct {
	Title     string `form:"title" json:"title" binding:"required"`
	Deskripsi string `form:"deskripsi" json:"deskripsi" binding:"required"`
	Tanggal   string `form:"tanggal" json:"tanggal" binding:"required,datetime=2006-01-02"`
	Waktu     string `form:"waktu" json:"waktu" binding:"required,hhmm"`
	Lokasi    string `form:"lokasi" json:"lokasi" binding:"required"`
	Status    string `form:"status" json:"status" binding:"required,oneof='Akan Datang' 'Sedang Berlangsung' 'Selesai'"`
}

// Normalize trims whitespace from input fields
func (a *AgendaInput) Normalize() {
	a.Title = strings.TrimSpace(a.Title)
	a.Tanggal = strings.TrimSpace(a.Tanggal)
	a.Waktu = strings.TrimSpace(a.Waktu)
	a.Lokasi = strings.TrimSpace(a.Lokasi)
	a.Status = strings.TrimSpace(a.Status)
}

// Pariwisata is a tourism listing.
type Pariwisata struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:255;not null" json:"nama"`
	Deskripsi string    `gorm:"type:text;not null" json:"deskripsi"`
	Img       *string   `json:"img"`
	Tanggal   *string   `gorm:"size:10" json:"tanggal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Pariwisata) TableName() string { return "pariwisata" }

// PariwisataInput is the form for tourism listings.
type PariwisataInput struct {
	Nama      string `form:"nama" json:"nama" binding:"required"`
	Deskripsi string `form:"deskripsi" json:"deskripsi" binding:"required"`
	Tanggal   string `form:"tanggal" json:"tanggal" binding:"omitempty,datetime=2006-01-02"`
}
