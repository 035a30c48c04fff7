package service

import (
	"sidomulyo/core"
	"sidomulyo/store"

	"gorm.io/gorm"
)

// Services is the global service container
type Services struct {
	Auth       *AuthService
	Berita     *BeritaService
	Pengumuman *PengumumanService
	Agenda     *AgendaService
	Pariwisata *PariwisataService
	Lembaga    *LembagaService
	Struktur   *StrukturService
	Surat      *SuratService
	Pengaduan  *PengaduanService
	Kontak     *KontakService
	Statistik  *StatistikService
	Tentang    *TentangService
	ErrorLog   *ErrorLogService
}

// GlobalServices is the global service instance
var GlobalServices *Services

// InitServices initializes all services
func InitServices(db *gorm.DB, statistik store.StatistikRepository, tentang store.TentangRepository, auth AuthConfig) {
	GlobalServices = NewServices(db, statistik, tentang, auth)
}

// NewServices wires every service against the given backends.
func NewServices(db *gorm.DB, statistik store.StatistikRepository, tentang store.TentangRepository, auth AuthConfig) *Services {
	return &Services{
		Auth:       NewAuthService(db, auth),
		Berita:     NewBeritaService(db),
		Pengumuman: NewPengumumanService(db),
		Agenda:     NewAgendaService(db),
		Pariwisata: NewPariwisataService(db),
		Lembaga:    NewLembagaService(db),
		Struktur:   NewStrukturService(db),
		Surat:      NewSuratService(db),
		Pengaduan:  NewPengaduanService(db),
		Kontak:     NewKontakService(db),
		Statistik:  NewStatistikService(statistik),
		Tentang:    NewTentangService(tentang),
		ErrorLog:   NewErrorLogService(core.ErrorLoggerInstance),
	}
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePage applies the listing defaults to page and limit.
func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
