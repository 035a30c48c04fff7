package service

import (
	"testing"
	"time"

	"sidomulyo/core"
	"sidomulyo/models"
	"sidomulyo/store"

	"github.com/stretchr/testify/require"
)

func newTestTentang(t *testing.T) (*TentangService, *time.Time) {
	t.Helper()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	repo := store.NewMemoryTentang()
	repo.Now = func() time.Time { return now }
	return NewTentangService(repo), &now
}

func TestTentang_SectionAliases(t *testing.T) {
	svc, _ := newTestTentang(t)

	for _, name := range []string{"visi-misi", "visiMisi"} {
		section, err := svc.Section(name)
		require.NoError(t, err)
		require.Equal(t, "Visi & Misi", section.Judul())
	}
	section, err := svc.Section("selayang-pandang")
	require.NoError(t, err)
	require.Equal(t, "Selayang Pandang", section.Judul())

	_, err = svc.Section("struktur")
	requireAppError(t, err, 404, "Section tidak ditemukan")
}

func TestTentang_Overview(t *testing.T) {
	svc, _ := newTestTentang(t)

	rows, err := svc.Overview()
	require.NoError(t, err)
	require.Len(t, rows, len(models.TentangSections))
	require.Equal(t, models.TentangSummary{Section: "selayangPandang", Judul: "Selayang Pandang", UpdatedAt: "2024-05-01T08:00:00.000Z"}, rows[0])
	require.Equal(t, "demografis", rows[4].Section)
}

func TestTentang_OverviewIncludesHandAddedSections(t *testing.T) {
	repo := store.NewMemoryTentang()
	all, err := repo.Read()
	require.NoError(t, err)
	all["zonaWisata"] = models.TentangSection{"judul": "Zona Wisata"}
	all["aparatur"] = models.TentangSection{"judul": "Aparatur"}
	require.NoError(t, repo.Write(all))

	rows, err := NewTentangService(repo).Overview()
	require.NoError(t, err)
	require.Len(t, rows, len(models.TentangSections)+2)
	require.Equal(t, "demografis", rows[4].Section)
	require.Equal(t, "aparatur", rows[5].Section)
	require.Equal(t, "zonaWisata", rows[6].Section)
}

func TestTentang_UpdateTextStampsAndClearsGambar(t *testing.T) {
	svc, now := newTestTentang(t)
	_, err := svc.All()
	require.NoError(t, err)

	*now = now.Add(time.Hour)
	empty := " "
	section, err := svc.UpdateSejarah(models.TentangTextInput{Judul: "Sejarah", Konten: "Baru", Gambar: &empty})
	require.NoError(t, err)
	require.Equal(t, "2024-05-01T09:00:00.000Z", section.UpdatedAt())
	require.Nil(t, section["gambar"])
	require.Equal(t, float64(3), section["id"])

	url := "https://example.com/a.jpg"
	section, err = svc.UpdateSelayangPandang(models.TentangTextInput{Judul: "SP", Konten: "Isi", Gambar: &url})
	require.NoError(t, err)
	require.Equal(t, url, section["gambar"])

	all, err := svc.All()
	require.NoError(t, err)
	require.Equal(t, "Baru", all[models.SectionSejarah]["konten"])
	require.Equal(t, "Visi & Misi", all[models.SectionVisiMisi].Judul())
}

func TestTentang_UpdateOtherSections(t *testing.T) {
	svc, _ := newTestTentang(t)

	visi, err := svc.UpdateVisiMisi(models.VisiMisiInput{Judul: "VM", Visi: "Maju", Misi: []string{"Satu", "Dua"}})
	require.NoError(t, err)
	require.Equal(t, "Maju", visi["visi"])

	geo, err := svc.UpdateGeografis(models.GeografisInput{
		Judul: "Geo", Konten: "K", BatasUtara: "A", BatasSelatan: "B", BatasBarat: "C", BatasTimur: "D",
		LuasWilayah: "10 ha", JumlahPenduduk: "100 jiwa",
	})
	require.NoError(t, err)
	require.Equal(t, "A", geo["batasUtara"])
	require.Nil(t, geo["gambar"])

	demo, err := svc.UpdateDemografis(models.DemografisInput{
		Judul: "Demo", Konten: "K", JumlahKK: "10", JumlahLakiLaki: "5", JumlahPerempuan: "5",
		Agama: map[string]any{"Islam": "90%"}, Pendidikan: map[string]any{"SD": "20%"},
	})
	require.NoError(t, err)
	require.Equal(t, "10", demo["jumlahKK"])

	section, err := svc.Section("demografis")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"Islam": "90%"}, section["agama"])
}

func TestTentang_StaleUpdateConflictsWithFrozenClock(t *testing.T) {
	svc, _ := newTestTentang(t)

	section, err := svc.Section("sejarah")
	require.NoError(t, err)
	seen := section.UpdatedAt()

	first, err := svc.UpdateSejarah(models.TentangTextInput{Judul: "A", Konten: "pertama", ExpectedUpdatedAt: seen})
	require.NoError(t, err)
	require.NotEqual(t, seen, first.UpdatedAt())

	_, err = svc.UpdateSejarah(models.TentangTextInput{Judul: "B", Konten: "kedua", ExpectedUpdatedAt: seen})
	requireAppError(t, err, 409, "Data telah diubah oleh admin lain, silakan muat ulang halaman")
}

func TestTentang_StaleUpdateConflicts(t *testing.T) {
	svc, now := newTestTentang(t)
	section, err := svc.Section("sejarah")
	require.NoError(t, err)
	seen := section.UpdatedAt()

	*now = now.Add(time.Minute)
	_, err = svc.UpdateSejarah(models.TentangTextInput{Judul: "A", Konten: "pertama", ExpectedUpdatedAt: seen})
	require.NoError(t, err)

	_, err = svc.UpdateSejarah(models.TentangTextInput{Judul: "B", Konten: "kedua", ExpectedUpdatedAt: seen})
	require.ErrorIs(t, err, core.ErrConflict)

	section, err = svc.Section("sejarah")
	require.NoError(t, err)
	require.Equal(t, "pertama", section["konten"])
}
