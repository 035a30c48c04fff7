package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"sidomulyo/core"
	"sidomulyo/models"
	"sidomulyo/store"
)

var sectionAliases = map[string]string{
	"visi-misi":        models.SectionVisiMisi,
	"selayang-pandang": models.SectionSelayangPandang,
}

// ResolveSection maps a URL segment to its section key.
func ResolveSection(name string) string {
	if key, ok := sectionAliases[name]; ok {
		return key
	}
	return name
}

// TentangService manages the about-page sections
type TentangService struct {
	repo store.TentangRepository
}

// NewTentangService constructs a tentang service
func NewTentangService(repo store.TentangRepository) *TentangService {
	return &TentangService{repo: repo}
}

// All returns every section
func (s *TentangService) All() (models.Tentang, error) {
	t, err := s.repo.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read tentang: %w", err)
	}
	return t, nil
}

// Section returns one section; name may be a key or one of its URL aliases.
func (s *TentangService) Section(name string) (models.TentangSection, error) {
	t, err := s.All()
	if err != nil {
		return nil, err
	}
	section, ok := t[ResolveSection(name)]
	if !ok {
		return nil, core.NewNotFoundError("Section tidak ditemukan")
	}
	return section, nil
}

// Overview lists each section's title and last update in display order.
func (s *TentangService) Overview() ([]models.TentangSummary, error) {
	t, err := s.All()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(t))
	for _, key := range models.TentangSections {
		if _, ok := t[key]; ok {
			keys = append(keys, key)
		}
	}
	// hand-added sections follow the fixed ones
	var extra []string
	for key := range t {
		if !models.IsTentangSection(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	keys = append(keys, extra...)

	out := make([]models.TentangSummary, 0, len(keys))
	for _, key := range keys {
		section := t[key]
		out = append(out, models.TentangSummary{Section: key, Judul: section.Judul(), UpdatedAt: section.UpdatedAt()})
	}
	return out, nil
}

func optionalURL(v *string) any {
	if v == nil {
		return nil
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		return trimmed
	}
	return nil
}

// UpdateSelayangPandang replaces the selayang pandang text
func (s *TentangService) UpdateSelayangPandang(in models.TentangTextInput) (models.TentangSection, error) {
	return s.updateText(models.SectionSelayangPandang, in)
}

// UpdateSejarah replaces the sejarah text
func (s *TentangService) UpdateSejarah(in models.TentangTextInput) (models.TentangSection, error) {
	return s.updateText(models.SectionSejarah, in)
}

func (s *TentangService) updateText(key string, in models.TentangTextInput) (models.TentangSection, error) {
	return s.update(key, in.ExpectedUpdatedAt, func(cur models.TentangSection) {
		cur["judul"] = in.Judul
		cur["konten"] = in.Konten
		cur["gambar"] = optionalURL(in.Gambar)
	})
}

// UpdateVisiMisi replaces the vision and mission list
func (s *TentangService) UpdateVisiMisi(in models.VisiMisiInput) (models.TentangSection, error) {
	return s.update(models.SectionVisiMisi, in.ExpectedUpdatedAt, func(cur models.TentangSection) {
		cur["judul"] = in.Judul
		cur["visi"] = in.Visi
		cur["misi"] = in.Misi
	})
}

// UpdateGeografis replaces the geography section
func (s *TentangService) UpdateGeografis(in models.GeografisInput) (models.TentangSection, error) {
	return s.update(models.SectionGeografis, in.ExpectedUpdatedAt, func(cur models.TentangSection) {
		cur["judul"] = in.Judul
		cur["konten"] = in.Konten
		cur["batasUtara"] = in.BatasUtara
		cur["batasSelatan"] = in.BatasSelatan
		cur["batasBarat"] = in.BatasBarat
		cur["batasTimur"] = in.BatasTimur
		cur["luasWilayah"] = in.LuasWilayah
		cur["jumlahPenduduk"] = in.JumlahPenduduk
		cur["gambar"] = optionalURL(in.Gambar)
	})
}

// UpdateDemografis replaces the demography section
func (s *TentangService) UpdateDemografis(in models.DemografisInput) (models.TentangSection, error) {
	return s.update(models.SectionDemografis, in.ExpectedUpdatedAt, func(cur models.TentangSection) {
		cur["judul"] = in.Judul
		cur["konten"] = in.Konten
		cur["jumlahKK"] = in.JumlahKK
		cur["jumlahLakiLaki"] = in.JumlahLakiLaki
		cur["jumlahPerempuan"] = in.JumlahPerempuan
		cur["agama"] = in.Agama
		cur["pendidikan"] = in.Pendidikan
	})
}

func (s *TentangService) update(key, expected string, apply func(models.TentangSection)) (models.TentangSection, error) {
	section, err := s.repo.UpdateSection(key, strings.TrimSpace(expected), func(cur models.TentangSection) (models.TentangSection, error) {
		apply(cur)
		return cur, nil
	})
	switch {
	case err == nil:
		return section, nil
	case errors.Is(err, store.ErrStaleSection):
		return nil, core.NewConflictError("Data telah diubah oleh admin lain, silakan muat ulang halaman")
	case errors.Is(err, store.ErrUnknownSection):
		return nil, core.NewNotFoundError("Section tidak ditemukan")
	default:
		return nil, fmt.Errorf("failed to update tentang %s: %w", key, err)
	}
}
