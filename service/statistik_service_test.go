package service

import (
	"errors"
	"testing"

	"sidomulyo/core"
	"sidomulyo/models"
	"sidomulyo/store"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func seededStatistik() *StatistikService {
	return NewStatistikService(store.NewMemoryStatistik(
		models.Statistik{ID: 1, Kategori: "penduduk", Label: "Perempuan", Value: 1200},
		models.Statistik{ID: 2, Kategori: "penduduk", Label: "Laki-laki", Value: 1180, Color: "#3b82f6"},
		models.Statistik{ID: 5, Kategori: "agama", Label: "Islam", Value: 2300},
	))
}

func TestStatistik_Grouped(t *testing.T) {
	svc := seededStatistik()

	grouped, err := svc.Grouped("")
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Equal(t, "Laki-laki", grouped["penduduk"][0].Label)
	require.Equal(t, "Perempuan", grouped["penduduk"][1].Label)

	only, err := svc.Grouped("agama")
	require.NoError(t, err)
	require.Len(t, only, 1)
	require.Len(t, only["agama"], 1)

	none, err := svc.ByKategori("pekerjaan")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestStatistik_CreateAssignsNextID(t *testing.T) {
	svc := seededStatistik()

	created, err := svc.Create(models.StatistikInput{Kategori: " agama ", Label: "Kristen", Value: intPtr(40)})
	require.NoError(t, err)
	require.Equal(t, 6, created.ID)
	require.Equal(t, "agama", created.Kategori)

	_, err = svc.Create(models.StatistikInput{Kategori: "agama", Label: "Kristen", Value: intPtr(1)})
	requireAppError(t, err, 400, "Statistik dengan kategori dan label yang sama sudah ada")

	overview, err := svc.Overview()
	require.NoError(t, err)
	require.Equal(t, models.StatistikOverview{TotalItems: 4, TotalKategori: 2}, *overview)
}

func TestStatistik_UpdateKeepsColor(t *testing.T) {
	svc := seededStatistik()

	updated, err := svc.Update(2, models.StatistikInput{Kategori: "penduduk", Label: "Laki-laki", Value: intPtr(1190)})
	require.NoError(t, err)
	require.Equal(t, "#3b82f6", updated.Color)
	require.Equal(t, 1190, updated.Value)

	updated, err = svc.Update(2, models.StatistikInput{Kategori: "penduduk", Label: "Laki-laki", Value: intPtr(1190), Color: "#fff"})
	require.NoError(t, err)
	require.Equal(t, "#fff", updated.Color)

	_, err = svc.Update(99, models.StatistikInput{Kategori: "x", Label: "y", Value: intPtr(0)})
	requireAppError(t, err, 404, "Statistik tidak ditemukan")
}

func TestStatistik_UpdateRejectsDuplicatePair(t *testing.T) {
	svc := seededStatistik()

	_, err := svc.Update(2, models.StatistikInput{Kategori: "penduduk", Label: " Perempuan ", Value: intPtr(5)})
	requireAppError(t, err, 400, "Statistik dengan kategori dan label yang sama sudah ada")

	items, err := svc.ByKategori("penduduk")
	require.NoError(t, err)
	labels := map[int]string{}
	for _, it := range items {
		labels[it.ID] = it.Label
	}
	require.Equal(t, "Laki-laki", labels[2])

	// keeping its own pair is not a clash
	_, err = svc.Update(1, models.StatistikInput{Kategori: "penduduk", Label: "Perempuan", Value: intPtr(1201)})
	require.NoError(t, err)
}

func TestStatistik_BlankKategoriAndLabel(t *testing.T) {
	svc := seededStatistik()
	before, err := svc.Overview()
	require.NoError(t, err)

	_, err = svc.Create(models.StatistikInput{Kategori: "   ", Label: "  ", Value: intPtr(1)})
	var verrs core.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, core.ValidationErrors{
		{Field: "kategori", Msg: "Kategori wajib diisi"},
		{Field: "label", Msg: "Label wajib diisi"},
	}, verrs)

	_, err = svc.Update(1, models.StatistikInput{Kategori: "penduduk", Label: " ", Value: intPtr(1)})
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "label", verrs[0].Field)

	after, err := svc.Overview()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestStatistik_Delete(t *testing.T) {
	svc := seededStatistik()

	require.NoError(t, svc.Delete(1))
	err := svc.Delete(1)
	require.ErrorIs(t, err, core.ErrNotFound)

	items, err := svc.ByKategori("penduduk")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestStatistik_BulkUpdateSkipsUnknown(t *testing.T) {
	svc := seededStatistik()

	changed, err := svc.BulkUpdate([]models.StatistikValue{
		{ID: 1, Value: intPtr(10)},
		{ID: 42, Value: intPtr(99)},
		{ID: 5, Value: intPtr(0)},
	})
	require.NoError(t, err)
	require.Equal(t, 2, changed)

	grouped, err := svc.Grouped("")
	require.NoError(t, err)
	require.Equal(t, 0, grouped["agama"][0].Value)
	require.Equal(t, 10, grouped["penduduk"][1].Value)
}

type failingStatistik struct{ store.StatistikRepository }

func (failingStatistik) Read() ([]models.Statistik, error) { return nil, errors.New("disk gone") }

func (failingStatistik) Update(func([]models.Statistik) ([]models.Statistik, error)) error {
	return errors.New("disk gone")
}

func TestStatistik_StorageErrorsPropagate(t *testing.T) {
	svc := NewStatistikService(failingStatistik{})

	_, err := svc.Grouped("")
	require.ErrorContains(t, err, "disk gone")

	_, err = svc.Create(models.StatistikInput{Kategori: "a", Label: "b", Value: intPtr(1)})
	require.ErrorContains(t, err, "failed to create statistik")
	var appErr *core.AppError
	require.False(t, errors.As(err, &appErr))
}
