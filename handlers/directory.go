package handlers

import (
	"net/http"

	"sidomulyo/models"
	"sidomulyo/service"

	"github.com/gin-gonic/gin"
)

func pengurusOut(c *gin.Context, p models.Pengurus) models.Pengurus {
	p.Foto = absoluteURL(c, p.Foto)
	return p
}

func lembagaOut(c *gin.Context, l models.Lembaga) models.Lembaga {
	if l.Pengurus != nil {
		pengurus := make([]models.Pengurus, 0, len(l.Pengurus))
		for _, p := range l.Pengurus {
			pengurus = append(pengurus, pengurusOut(c, p))
		}
		l.Pengurus = pengurus
	}
	return l
}

func strukturOut(c *gin.Context, s models.Struktur) models.Struktur {
	s.Foto = absoluteURL(c, s.Foto)
	return s
}

// ListLembaga lists village institutions with their board members
func ListLembaga(c *gin.Context) {
	items, err := service.GlobalServices.Lembaga.List()
	if err != nil {
		respondError(c, "lembaga.List", err)
		return
	}
	for i := range items {
		items[i] = lembagaOut(c, items[i])
	}
	c.JSON(http.StatusOK, gin.H{"lembaga": items})
}

// GetLembaga returns one institution
func GetLembaga(c *gin.Context) {
	id, ok := paramID(c, "id", "Lembaga tidak ditemukan")
	if !ok {
		return
	}
	item, err := service.GlobalServices.Lembaga.Get(id)
	if err != nil {
		respondError(c, "lembaga.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lembaga": lembagaOut(c, *item)})
}

// CreateLembaga stores an institution
func CreateLembaga(c *gin.Context) {
	var in models.LembagaInput
	if !bindJSON(c, &in) {
		return
	}
	item, err := service.GlobalServices.Lembaga.Create(in)
	if err != nil {
		respondError(c, "lembaga.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Lembaga berhasil ditambahkan", "lembaga": item})
}

// UpdateLembaga renames or redescribes an institution
func UpdateLembaga(c *gin.Context) {
	id, ok := paramID(c, "id", "Lembaga tidak ditemukan")
	if !ok {
		return
	}
	var in models.LembagaInput
	if !bindJSON(c, &in) {
		return
	}
	item, err := service.GlobalServices.Lembaga.Update(id, in)
	if err != nil {
		respondError(c, "lembaga.Update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lembaga berhasil diupdate", "lembaga": item})
}

// DeleteLembaga removes an institution and its board
func DeleteLembaga(c *gin.Context) {
	id, ok := paramID(c, "id", "Lembaga tidak ditemukan")
	if !ok {
		return
	}
	if err := service.GlobalServices.Lembaga.Delete(id); err != nil {
		respondError(c, "lembaga.Delete", err)
		return
	}
	respondMessage(c, http.StatusOK, "Lembaga berhasil dihapus")
}

// AddPengurus adds a board member to an institution
func AddPengurus(c *gin.Context) {
	id, ok := paramID(c, "id", "Lembaga tidak ditemukan")
	if !ok {
		return
	}
	var in models.PengurusInput
	if !bindForm(c, &in) {
		return
	}
	foto, err := uploadImage(c, fotoFields)
	if err != nil {
		respondError(c, "lembaga.AddPengurus", err)
		return
	}
	item, err := service.GlobalServices.Lembaga.AddPengurus(id, in, foto)
	if err != nil {
		respondError(c, "lembaga.AddPengurus", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pengurus berhasil ditambahkan", "pengurus": pengurusOut(c, *item)})
}

// UpdatePengurus replaces a board member
func UpdatePengurus(c *gin.Context) {
	id, ok := paramID(c, "pengurusId", "Pengurus tidak ditemukan")
	if !ok {
		return
	}
	var in models.PengurusInput
	if !bindForm(c, &in) {
		return
	}
	foto, err := uploadImage(c, fotoFields)
	if err != nil {
		respondError(c, "lembaga.UpdatePengurus", err)
		return
	}
	item, err := service.GlobalServices.Lembaga.UpdatePengurus(id, in, foto)
	if err != nil {
		respondError(c, "lembaga.UpdatePengurus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pengurus berhasil diupdate", "pengurus": pengurusOut(c, *item)})
}

// DeletePengurus removes a board member
func DeletePengurus(c *gin.Context) {
	id, ok := paramID(c, "pengurusId", "Pengurus tidak ditemukan")
	if !ok {
		return
	}
	if err := service.GlobalServices.Lembaga.DeletePengurus(id); err != nil {
		respondError(c, "lembaga.DeletePengurus", err)
		return
	}
	respondMessage(c, http.StatusOK, "Pengurus berhasil dihapus")
}

func strukturList(c *gin.Context, items []models.Struktur) []models.Struktur {
	out := make([]models.Struktur, 0, len(items))
	for _, it := range items {
		out = append(out, strukturOut(c, it))
	}
	return out
}

// ListStruktur lists the village government structure
func ListStruktur(c *gin.Context) {
	items, err := service.GlobalServices.Struktur.List()
	if err != nil {
		respondError(c, "struktur.List", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"struktur": strukturList(c, items)})
}

// ListStrukturByTipe lists the positions of one tipe
func ListStrukturByTipe(c *gin.Context) {
	items, err := service.GlobalServices.Struktur.ListByTipe(c.Param("tipe"))
	if err != nil {
		respondError(c, "struktur.ListByTipe", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"struktur": strukturList(c, items)})
}

// GetStruktur returns one position
func GetStruktur(c *gin.Context) {
	id, ok := paramID(c, "id", "Struktur organisasi tidak ditemukan")
	if !ok {
		return
	}
	item, err := service.GlobalServices.Struktur.Get(id)
	if err != nil {
		respondError(c, "struktur.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"struktur": strukturOut(c, *item)})
}

// CreateStruktur stores a position
func CreateStruktur(c *gin.Context) {
	var in models.StrukturInput
	if !bindForm(c, &in) {
		return
	}
	foto, err := uploadImage(c, fotoFields)
	if err != nil {
		respondError(c, "struktur.Create", err)
		return
	}
	item, err := service.GlobalServices.Struktur.Create(in, foto)
	if err != nil {
		respondError(c, "struktur.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Struktur organisasi berhasil ditambahkan", "struktur": strukturOut(c, *item)})
}

// UpdateStruktur replaces a position
func UpdateStruktur(c *gin.Context) {
	id, ok := paramID(c, "id", "Struktur organisasi tidak ditemukan")
	if !ok {
		return
	}
	var in models.StrukturInput
	if !bindForm(c, &in) {
		return
	}
	foto, err := uploadImage(c, fotoFields)
	if err != nil {
		respondError(c, "struktur.Update", err)
		return
	}
	item, err := service.GlobalServices.Struktur.Update(id, in, foto)
	if err != nil {
		respondError(c, "struktur.Update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Struktur organisasi berhasil diupdate", "struktur": strukturOut(c, *item)})
}

// DeleteStruktur removes a position
func DeleteStruktur(c *gin.Context) {
	id, ok := paramID(c, "id", "Struktur organisasi tidak ditemukan")
	if !ok {
		return
	}
	if err := service.GlobalServices.Struktur.Delete(id); err != nil {
		respondError(c, "struktur.Delete", err)
		return
	}
	respondMessage(c, http.StatusOK, "Struktur organisasi berhasil dihapus")
}

// StrukturOverview counts positions per tipe
func StrukturOverview(c *gin.Context) {
	overview, err := service.GlobalServices.Struktur.Overview()
	if err != nil {
		respondError(c, "struktur.Overview", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
