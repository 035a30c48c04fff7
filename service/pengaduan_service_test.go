package service

import (
	"testing"

	"sidomulyo/models"

	"github.com/stretchr/testify/require"
)

func validPengaduan() models.PengaduanInput {
	return models.PengaduanInput{
		Nama:             "Budi Santoso",
		Email:            "ignored@example.com",
		NoHP:             "081234567890",
		Alamat:           "Dusun Krajan RT 01",
		Judul:            "Jalan rusak",
		Uraian:           "Jalan desa berlubang di dekat balai.",
		NIK:              "3507010101010001",
		TanggalPengaduan: "2024-05-01",
	}
}

func TestPengaduan_CreateUsesAccountEmail(t *testing.T) {
	svc, db := newTestServices(t)
	reporter := createUser(t, db, "budi", models.RoleWarga)
	img := "/uploads/img-1.jpg"

	item, err := svc.Pengaduan.Create(reporter, validPengaduan(), &img)
	require.NoError(t, err)
	require.Equal(t, "budi@example.com", item.Email)
	require.Equal(t, models.PengaduanBaru, item.Status)
	require.Equal(t, reporter.ID, *item.UserID)
	require.Equal(t, img, *item.Lampiran)
}

func TestPengaduan_CreateValidation(t *testing.T) {
	svc, db := newTestServices(t)
	reporter := createUser(t, db, "budi", models.RoleWarga)

	cases := []struct {
		mutate func(*models.PengaduanInput)
		msg    string
	}{
		{func(in *models.PengaduanInput) { in.Judul = " " }, "Semua field wajib diisi."},
		{func(in *models.PengaduanInput) { in.NIK = "12345" }, "NIK harus 16 digit."},
		{func(in *models.PengaduanInput) { in.NIK = "350701010101000X" }, "NIK harus 16 digit."},
		{func(in *models.PengaduanInput) { in.TanggalPengaduan = "01-05-2024" }, "Tanggal pengaduan wajib format YYYY-MM-DD."},
	}
	for _, c := range cases {
		in := validPengaduan()
		c.mutate(&in)
		_, err := svc.Pengaduan.Create(reporter, in, nil)
		requireAppError(t, err, 400, c.msg)
	}
}

func TestPengaduan_ListByUserAndStatus(t *testing.T) {
	svc, db := newTestServices(t)
	budi := createUser(t, db, "budi", models.RoleWarga)
	siti := createUser(t, db, "siti", models.RoleWarga)

	older := validPengaduan()
	older.TanggalPengaduan = "2024-01-01"
	first, err := svc.Pengaduan.Create(budi, older, nil)
	require.NoError(t, err)
	second, err := svc.Pengaduan.Create(budi, validPengaduan(), nil)
	require.NoError(t, err)
	_, err = svc.Pengaduan.Create(siti, validPengaduan(), nil)
	require.NoError(t, err)

	mine, total, err := svc.Pengaduan.ListByUser(budi.ID, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Equal(t, second.ID, mine[0].ID)
	require.Equal(t, first.ID, mine[1].ID)

	_, err = svc.Pengaduan.UpdateStatus(first.ID, models.PengaduanSelesai)
	require.NoError(t, err)
	done, total, err := svc.Pengaduan.List(models.PengaduanSelesai, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, first.ID, done[0].ID)
}

func TestPengaduan_StatusDeleteStats(t *testing.T) {
	svc, db := newTestServices(t)
	reporter := createUser(t, db, "budi", models.RoleWarga)
	a, err := svc.Pengaduan.Create(reporter, validPengaduan(), nil)
	require.NoError(t, err)
	b, err := svc.Pengaduan.Create(reporter, validPengaduan(), nil)
	require.NoError(t, err)

	_, err = svc.Pengaduan.UpdateStatus(a.ID, "Ditutup")
	require.Error(t, err)
	updated, err := svc.Pengaduan.UpdateStatus(a.ID, models.PengaduanDiproses)
	require.NoError(t, err)
	require.Equal(t, models.PengaduanDiproses, updated.Status)

	stats, err := svc.Pengaduan.Stats()
	require.NoError(t, err)
	require.Equal(t, models.PengaduanStats{Total: 2, Baru: 1, Diproses: 1}, *stats)

	require.NoError(t, svc.Pengaduan.Delete(b.ID))
	err = svc.Pengaduan.Delete(b.ID)
	requireAppError(t, err, 404, "Pengaduan tidak ditemukan")
	_, err = svc.Pengaduan.Get(b.ID)
	requireAppError(t, err, 404, "Pengaduan tidak ditemukan")
}
