package service

import (
	"testing"

	"sidomulyo/core"
	"sidomulyo/models"

	"github.com/stretchr/testify/require"
)

func article(title, kategori, tanggal string) models.ArticleInput {
	return models.ArticleInput{Title: title, Content: "Isi " + title, Kategori: kategori, Tanggal: tanggal}
}

func TestBerita_CreateListGet(t *testing.T) {
	svc, db := newTestServices(t)
	admin := createUser(t, db, "admin", models.RoleAdmin)

	img := "/uploads/img-1.jpg"
	first, err := svc.Berita.Create(article("Gotong royong", "Sosial", "2024-03-01"), &img, admin.ID)
	require.NoError(t, err)
	_, err = svc.Berita.Create(article("Jembatan baru", "Pembangunan", "2024-03-02"), nil, admin.ID)
	require.NoError(t, err)

	items, total, err := svc.Berita.List("", 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, items, 2)

	items, total, err = svc.Berita.List("Sosial", 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, first.ID, items[0].ID)

	got, err := svc.Berita.Get(first.ID)
	require.NoError(t, err)
	require.Equal(t, "User admin", *got.CreatedByName)
	require.Equal(t, img, *got.Img)
}

func TestBerita_Rules(t *testing.T) {
	svc, db := newTestServices(t)
	admin := createUser(t, db, "admin", models.RoleAdmin)

	_, err := svc.Berita.Create(article("Judul", "Gosip", "2024-03-01"), nil, admin.ID)
	require.ErrorIs(t, err, core.ErrInvalidRequest)

	_, err = svc.Berita.Create(article("Judul", "Sosial", "2024-03-01"), nil, admin.ID)
	require.NoError(t, err)
	_, err = svc.Berita.Create(article(" Judul ", "Sosial", "2024-03-01"), nil, admin.ID)
	requireAppError(t, err, 409, "Berita dengan judul dan tanggal yang sama sudah ada.")
}

func TestBerita_UpdateKeepsImage(t *testing.T) {
	svc, db := newTestServices(t)
	admin := createUser(t, db, "admin", models.RoleAdmin)
	img := "/uploads/img-1.jpg"
	item, err := svc.Berita.Create(article("Lama", "Sosial", "2024-03-01"), &img, admin.ID)
	require.NoError(t, err)

	updated, err := svc.Berita.Update(item.ID, article("Baru", "Kesehatan", "2024-03-05"), nil)
	require.NoError(t, err)
	require.Equal(t, "Baru", updated.Title)
	require.Equal(t, img, *updated.Img)

	require.NoError(t, svc.Berita.Delete(item.ID))
	err = svc.Berita.Delete(item.ID)
	requireAppError(t, err, 404, "Berita tidak ditemukan")
}

func TestPengumuman_KategoriAndDuplicate(t *testing.T) {
	svc, db := newTestServices(t)
	admin := createUser(t, db, "admin", models.RoleAdmin)

	_, err := svc.Pengumuman.Create(article("Posyandu", "Sosial", "2024-04-01"), nil, admin.ID)
	require.ErrorIs(t, err, core.ErrInvalidRequest)

	item, err := svc.Pengumuman.Create(article("Posyandu", "Kesehatan", "2024-04-01"), nil, admin.ID)
	require.NoError(t, err)
	_, err = svc.Pengumuman.Create(article("Posyandu", "Umum", "2024-04-01"), nil, admin.ID)
	require.ErrorIs(t, err, core.ErrDuplicate)

	got, err := svc.Pengumuman.Get(item.ID)
	require.NoError(t, err)
	require.Equal(t, "Kesehatan", got.Kategori)
}

func TestAgenda_OrderAndPadding(t *testing.T) {
	svc, db := newTestServices(t)
	admin := createUser(t, db, "admin", models.RoleAdmin)

	in := models.AgendaInput{Title: "Rapat", Deskripsi: "Rapat desa", Tanggal: "2024-06-02", Waktu: "8:30", Lokasi: "Balai", Status: models.AgendaAkanDatang}
	late, err := svc.Agenda.Create(in, nil, admin.ID)
	require.NoError(t, err)
	require.Equal(t, "08:30", late.Waktu)

	in.Title = "Kerja bakti"
	in.Waktu = "07:00"
	early, err := svc.Agenda.Create(in, nil, admin.ID)
	require.NoError(t, err)

	in.Title = "Pengajian"
	in.Tanggal = "2024-06-01"
	in.Waktu = "19:00"
	in.Status = models.AgendaSelesai
	first, err := svc.Agenda.Create(in, nil, admin.ID)
	require.NoError(t, err)

	items, err := svc.Agenda.List("")
	require.NoError(t, err)
	require.Equal(t, []uint{first.ID, early.ID, late.ID}, []uint{items[0].ID, items[1].ID, items[2].ID})

	items, err = svc.Agenda.List(models.AgendaSelesai)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = svc.Agenda.Create(in, nil, admin.ID)
	requireAppError(t, err, 409, "Agenda dengan judul dan tanggal yang sama sudah ada.")
}

func TestPariwisata_CRUD(t *testing.T) {
	svc, _ := newTestServices(t)

	foto := "/uploads/foto-1.jpg"
	item, err := svc.Pariwisata.Create(models.PariwisataInput{Nama: "Air Terjun", Deskripsi: "Sejuk"}, &foto)
	require.NoError(t, err)
	require.Nil(t, item.Tanggal)

	updated, err := svc.Pariwisata.Update(item.ID, models.PariwisataInput{Nama: "Air Terjun Coban", Deskripsi: "Sejuk", Tanggal: "2024-01-01"}, nil)
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", *updated.Tanggal)
	require.Equal(t, foto, *updated.Img)

	items, total, err := svc.Pariwisata.ListPage(1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Air Terjun Coban", items[0].Nama)

	require.NoError(t, svc.Pariwisata.Delete(item.ID))
	_, err = svc.Pariwisata.Get(item.ID)
	require.ErrorIs(t, err, core.ErrNotFound)
}
