package service

import (
	"testing"

	"sidomulyo/models"

	"github.com/stretchr/testify/require"
)

func TestKontak_Pesan(t *testing.T) {
	svc, _ := newTestServices(t)

	first, err := svc.Kontak.CreatePesan(models.PesanKontakInput{Nama: "Budi", Email: "budi@example.com", Pesan: "Halo"})
	require.NoError(t, err)
	require.Nil(t, first.NoHP)
	second, err := svc.Kontak.CreatePesan(models.PesanKontakInput{Nama: "Siti", Email: "siti@example.com", NoHP: "0812", Pesan: "Tanya"})
	require.NoError(t, err)
	require.Equal(t, "0812", *second.NoHP)

	items, err := svc.Kontak.ListPesan()
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, second.ID, items[0].ID)
}

func TestKontak_DesaUpsert(t *testing.T) {
	svc, db := newTestServices(t)

	_, err := svc.Kontak.GetKontakDesa()
	requireAppError(t, err, 404, "Kontak desa belum diatur")

	wa := "081234567890"
	_, err = svc.Kontak.UpdateKontakDesa(models.KontakDesaInput{Alamat: "Jl. Raya 1", Email: "desa@example.com", Whatsapp: &wa})
	require.NoError(t, err)
	_, err = svc.Kontak.UpdateKontakDesa(models.KontakDesaInput{Alamat: "Jl. Raya 2", Email: "desa@example.com"})
	require.NoError(t, err)

	got, err := svc.Kontak.GetKontakDesa()
	require.NoError(t, err)
	require.EqualValues(t, 1, got.ID)
	require.Equal(t, "Jl. Raya 2", got.Alamat)
	require.Nil(t, got.Whatsapp)

	var count int64
	require.NoError(t, db.Model(&models.KontakDesa{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
