package handlers

import (
	"net/http"

	"sidomulyo/models"
	"sidomulyo/service"

	"github.com/gin-gonic/gin"
)

func beritaOut(c *gin.Context, b models.Berita) models.Berita {
	b.Img = absoluteURL(c, b.Img)
	return b
}

func pengumumanOut(c *gin.Context, p models.Pengumuman) models.Pengumuman {
	p.Img = absoluteURL(c, p.Img)
	return p
}

func listBerita(c *gin.Context, kategori string) {
	page, limit := pageParams(c)
	items, total, err := service.GlobalServices.Berita.List(kategori, page, limit)
	if err != nil {
		respondError(c, "berita.List", err)
		return
	}
	out := make([]models.Berita, 0, len(items))
	for _, it := range items {
		out = append(out, beritaOut(c, it))
	}
	c.JSON(http.StatusOK, gin.H{"berita": out, "pagination": pagination(page, limit, total)})
}

// ListBerita lists berita, optionally filtered by ?kategori
func ListBerita(c *gin.Context) {
	listBerita(c, c.Query("kategori"))
}

// ListBeritaByKategori lists one kategori of berita
func ListBeritaByKategori(c *gin.Context) {
	listBerita(c, c.Param("kategori"))
}

// GetBerita returns one berita
func GetBerita(c *gin.Context) {
	id, ok := paramID(c, "id", "Berita tidak ditemukan")
	if !ok {
		return
	}
	item, err := service.GlobalServices.Berita.Get(id)
	if err != nil {
		respondError(c, "berita.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"berita": beritaOut(c, *item)})
}

// CreateBerita stores a new berita with an optional image
func CreateBerita(c *gin.Context) {
	var in models.ArticleInput
	if !bindForm(c, &in) {
		return
	}
	img, err := uploadImage(c, articleImageFields)
	if err != nil {
		respondError(c, "berita.Create", err)
		return
	}
	item, err := service.GlobalServices.Berita.Create(in, img, currentUser(c).ID)
	if err != nil {
		respondError(c, "berita.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Berita berhasil ditambahkan", "berita": beritaOut(c, *item)})
}

// UpdateBerita replaces a berita
func UpdateBerita(c *gin.Context) {
	id, ok := paramID(c, "id", "Berita tidak ditemukan")
	if !ok {
		return
	}
	var in models.ArticleInput
	if !bindForm(c, &in) {
		return
	}
	img, err := uploadImage(c, articleImageFields)
	if err != nil {
		respondError(c, "berita.Update", err)
		return
	}
	item, err := service.GlobalServices.Berita.Update(id, in, img)
	if err != nil {
		respondError(c, "berita.Update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Berita berhasil diupdate", "berita": beritaOut(c, *item)})
}

// DeleteBerita removes a berita
func DeleteBerita(c *gin.Context) {
	id, ok := paramID(c, "id", "Berita tidak ditemukan")
	if !ok {
		return
	}
	if err := service.GlobalServices.Berita.Delete(id); err != nil {
		respondError(c, "berita.Delete", err)
		return
	}
	respondMessage(c, http.StatusOK, "Berita berhasil dihapus")
}

// ListPengumuman lists announcements, optionally filtered by ?kategori
func ListPengumuman(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := service.GlobalServices.Pengumuman.List(c.Query("kategori"), page, limit)
	if err != nil {
		respondError(c, "pengumuman.List", err)
		return
	}
	out := make([]models.Pengumuman, 0, len(items))
	for _, it := range items {
		out = append(out, pengumumanOut(c, it))
	}
	c.JSON(http.StatusOK, gin.H{"pengumuman": out, "pagination": pagination(page, limit, total)})
}

// GetPengumuman returns one announcement
func GetPengumuman(c *gin.Context) {
	id, ok := paramID(c, "id", "Pengumuman tidak ditemukan")
	if !ok {
		return
	}
	item, err := service.GlobalServices.Pengumuman.Get(id)
	if err != nil {
		respondError(c, "pengumuman.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pengumuman": pengumumanOut(c, *item)})
}

// CreatePengumuman stores a new announcement
func CreatePengumuman(c *gin.Context) {
	var in models.ArticleInput
	if !bindForm(c, &in) {
		return
	}
	img, err := uploadImage(c, articleImageFields)
	if err != nil {
		respondError(c, "pengumuman.Create", err)
		return
	}
	item, err := service.GlobalServices.Pengumuman.Create(in, img, currentUser(c).ID)
	if err != nil {
		respondError(c, "pengumuman.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pengumuman berhasil ditambahkan", "pengumuman": pengumumanOut(c, *item)})
}

// UpdatePengumuman replaces an announcement
func UpdatePengumuman(c *gin.Context) {
	id, ok := paramID(c, "id", "Pengumuman tidak ditemukan")
	if !ok {
		return
	}
	var in models.ArticleInput
	if !bindForm(c, &in) {
		return
	}
	img, err := uploadImage(c, articleImageFields)
	if err != nil {
		respondError(c, "pengumuman.Update", err)
		return
	}
	item, err := service.GlobalServices.Pengumuman.Update(id, in, img)
	if err != nil {
		respondError(c, "pengumuman.Update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pengumuman berhasil diupdate", "pengumuman": pengumumanOut(c, *item)})
}

// DeletePengumuman removes an announcement
func DeletePengumuman(c *gin.Context) {
	id, ok := paramID(c, "id", "Pengumuman tidak ditemukan")
	if !ok {
		return
	}
	if err := service.GlobalServices.Pengumuman.Delete(id); err != nil {
		respondError(c, "pengumuman.Delete", err)
		return
	}
	respondMessage(c, http.StatusOK, "Pengumuman berhasil dihapus")
}
