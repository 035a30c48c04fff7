package service

import (
	"testing"

	"sidomulyo/core"
	"sidomulyo/models"

	"github.com/stretchr/testify/require"
)

func validSurat() models.SuratInput {
	return models.SuratInput{
		Nama:            "Budi Santoso",
		NIK:             "3507010101010001",
		JenisKelamin:    "Laki-laki",
		TempatLahir:     "Malang",
		TanggalLahir:    "1990-01-01",
		Pekerjaan:       "Petani",
		Kewarganegaraan: "WNI",
		Agama:           "Islam",
		NoHP:            "081234567890",
		AlamatKTP:       "Dusun Krajan RT 01",
		AlamatSekarang:  "Dusun Krajan RT 01",
		JenisSurat:      "Surat Keterangan Domisili",
	}
}

func TestSurat_CreateAndGet(t *testing.T) {
	svc, db := newTestServices(t)
	owner := createUser(t, db, "budi", models.RoleWarga)

	created, err := svc.Surat.Create(owner.ID, validSurat(), []models.LampiranSurat{
		{NamaFile: "ktp.jpg", URLFile: "/uploads/files-a.jpg", JenisPersyaratan: "KTP"},
		{NamaFile: "kk.pdf", URLFile: "/uploads/files-b.pdf"},
	})
	require.NoError(t, err)
	require.Equal(t, models.SuratMenunggu, created.Status)

	got, err := svc.Surat.Get(created.ID, owner)
	require.NoError(t, err)
	require.Equal(t, "budi", *got.Username)
	require.Equal(t, "User budi", *got.UserNama)
	require.Len(t, got.Lampiran, 2)
	require.Equal(t, "KTP", got.Lampiran[0].JenisPersyaratan)
	require.Equal(t, "Dokumen Pendukung", got.Lampiran[1].JenisPersyaratan)
}

func TestSurat_GetHiddenFromOtherWarga(t *testing.T) {
	svc, db := newTestServices(t)
	owner := createUser(t, db, "budi", models.RoleWarga)
	other := createUser(t, db, "siti", models.RoleWarga)
	admin := createUser(t, db, "admin", models.RoleAdmin)

	created, err := svc.Surat.Create(owner.ID, validSurat(), nil)
	require.NoError(t, err)

	_, err = svc.Surat.Get(created.ID, other)
	requireAppError(t, err, 404, "Surat tidak ditemukan")

	got, err := svc.Surat.Get(created.ID, admin)
	require.NoError(t, err)
	require.Empty(t, got.Lampiran)
}

func TestSurat_RejectsNonNumericNIK(t *testing.T) {
	svc, db := newTestServices(t)
	owner := createUser(t, db, "budi", models.RoleWarga)

	in := validSurat()
	in.NIK = "35070101010100AB"
	_, err := svc.Surat.Create(owner.ID, in, nil)
	require.ErrorIs(t, err, core.ErrInvalidRequest)
}

func TestSurat_ListFiltersAndPaging(t *testing.T) {
	svc, db := newTestServices(t)
	budi := createUser(t, db, "budi", models.RoleWarga)
	siti := createUser(t, db, "siti", models.RoleWarga)

	for i := 0; i < 3; i++ {
		_, err := svc.Surat.Create(budi.ID, validSurat(), nil)
		require.NoError(t, err)
	}
	in := validSurat()
	in.JenisSurat = "Surat Keterangan Usaha"
	usaha, err := svc.Surat.Create(siti.ID, in, nil)
	require.NoError(t, err)
	_, err = svc.Surat.UpdateStatus(usaha.ID, models.SuratSelesai)
	require.NoError(t, err)

	items, total, err := svc.Surat.List(SuratFilter{}, 1, 2)
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Len(t, items, 2)

	items, total, err = svc.Surat.List(SuratFilter{JenisSurat: "Surat Keterangan Usaha"}, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, usaha.ID, items[0].ID)

	_, total, err = svc.Surat.List(SuratFilter{Status: models.SuratMenunggu}, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 3, total)

	_, total, err = svc.Surat.List(SuratFilter{UserID: siti.ID}, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}

func TestSurat_UpdateStatus(t *testing.T) {
	svc, db := newTestServices(t)
	owner := createUser(t, db, "budi", models.RoleWarga)
	created, err := svc.Surat.Create(owner.ID, validSurat(), nil)
	require.NoError(t, err)

	updated, err := svc.Surat.UpdateStatus(created.ID, models.SuratDiproses)
	require.NoError(t, err)
	require.Equal(t, models.SuratDiproses, updated.Status)

	_, err = svc.Surat.UpdateStatus(created.ID, "Ditolak")
	require.ErrorIs(t, err, core.ErrInvalidRequest)

	_, err = svc.Surat.UpdateStatus(9999, models.SuratSelesai)
	requireAppError(t, err, 404, "Surat tidak ditemukan")
}

func TestSurat_DeleteRemovesLampiran(t *testing.T) {
	svc, db := newTestServices(t)
	owner := createUser(t, db, "budi", models.RoleWarga)
	created, err := svc.Surat.Create(owner.ID, validSurat(), []models.LampiranSurat{{NamaFile: "ktp.jpg", URLFile: "/uploads/ktp.jpg"}})
	require.NoError(t, err)

	require.NoError(t, svc.Surat.Delete(created.ID))

	var count int64
	require.NoError(t, db.Model(&models.LampiranSurat{}).Count(&count).Error)
	require.Zero(t, count)

	err = svc.Surat.Delete(created.ID)
	requireAppError(t, err, 404, "Surat tidak ditemukan")
}

func TestSurat_Stats(t *testing.T) {
	svc, db := newTestServices(t)
	owner := createUser(t, db, "budi", models.RoleWarga)
	var ids []uint
	for i := 0; i < 4; i++ {
		s, err := svc.Surat.Create(owner.ID, validSurat(), nil)
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}
	_, err := svc.Surat.UpdateStatus(ids[0], models.SuratDiproses)
	require.NoError(t, err)
	_, err = svc.Surat.UpdateStatus(ids[1], models.SuratSelesai)
	require.NoError(t, err)

	stats, err := svc.Surat.Stats()
	require.NoError(t, err)
	require.Equal(t, models.SuratStats{Total: 4, Menunggu: 2, Diproses: 1, Selesai: 1}, *stats)
}
