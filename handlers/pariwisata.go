package handlers

import (
	"net/http"

	"sidomulyo/models"
	"sidomulyo/service"

	"github.com/gin-gonic/gin"
)

func pariwisataOut(c *gin.Context, p models.Pariwisata) models.Pariwisata {
	p.Img = absoluteURL(c, p.Img)
	return p
}

// ListPariwisata lists tourism spots
func ListPariwisata(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := service.GlobalServices.Pariwisata.ListPage(page, limit)
	if err != nil {
		respondError(c, "pariwisata.List", err)
		return
	}
	out := make([]models.Pariwisata, 0, len(items))
	for _, it := range items {
		out = append(out, pariwisataOut(c, it))
	}
	c.JSON(http.StatusOK, gin.H{"pariwisata": out, "pagination": pagination(page, limit, total)})
}

// GetPariwisata returns one tourism spot
func GetPariwisata(c *gin.Context) {
	id, ok := paramID(c, "id", "Pariwisata tidak ditemukan")
	if !ok {
		return
	}
	item, err := service.GlobalServices.Pariwisata.Get(id)
	if err != nil {
		respondError(c, "pariwisata.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pariwisata": pariwisataOut(c, *item)})
}

// CreatePariwisata stores a tourism spot
func CreatePariwisata(c *gin.Context) {
	var in models.PariwisataInput
	if !bindForm(c, &in) {
		return
	}
	img, err := uploadImage(c, fotoFields)
	if err != nil {
		respondError(c, "pariwisata.Create", err)
		return
	}
	item, err := service.GlobalServices.Pariwisata.Create(in, img)
	if err != nil {
		respondError(c, "pariwisata.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pariwisata berhasil ditambahkan", "pariwisata": pariwisataOut(c, *item)})
}

// UpdatePariwisata replaces a tourism spot
func UpdatePariwisata(c *gin.Context) {
	id, ok := paramID(c, "id", "Pariwisata tidak ditemukan")
	if !ok {
		return
	}
	var in models.PariwisataInput
	if !bindForm(c, &in) {
		return
	}
	img, err := uploadImage(c, fotoFields)
	if err != nil {
		respondError(c, "pariwisata.Update", err)
		return
	}
	item, err := service.GlobalServices.Pariwisata.Update(id, in, img)
	if err != nil {
		respondError(c, "pariwisata.Update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pariwisata berhasil diupdate", "pariwisata": pariwisataOut(c, *item)})
}

// DeletePariwisata removes a tourism spot
func DeletePariwisata(c *gin.Context) {
	id, ok := paramID(c, "id", "Pariwisata tidak ditemukan")
	if !ok {
		return
	}
	if err := service.GlobalServices.Pariwisata.Delete(id); err != nil {
		respondError(c, "pariwisata.Delete", err)
		return
	}
	respondMessage(c, http.StatusOK, "Pariwisata berhasil dihapus")
}
