package handlers

import (
	"net/http"

	"sidomulyo/models"
	"sidomulyo/service"

	"github.com/gin-gonic/gin"
)

func suratOut(c *gin.Context, s models.Surat) models.Surat {
	if s.Lampiran != nil {
		lampiran := make([]models.LampiranSurat, 0, len(s.Lampiran))
		for _, l := range s.Lampiran {
			if u := absoluteURL(c, &l.URLFile); u != nil {
				l.URLFile = *u
			}
			lampiran = append(lampiran, l)
		}
		s.Lampiran = lampiran
	}
	return s
}

func listSurat(c *gin.Context, f service.SuratFilter) {
	page, limit := pageParams(c)
	items, total, err := service.GlobalServices.Surat.List(f, page, limit)
	if err != nil {
		respondError(c, "surat.List", err)
		return
	}
	if items == nil {
		items = []models.Surat{}
	}
	c.JSON(http.StatusOK, gin.H{"surat": items, "pagination": pagination(page, limit, total)})
}

// ListSurat lists all letter requests for admins
func ListSurat(c *gin.Context) {
	listSurat(c, service.SuratFilter{Status: c.Query("status"), JenisSurat: c.Query("jenis_surat")})
}

// ListMySurat lists the caller's letter requests
func ListMySurat(c *gin.Context) {
	listSurat(c, service.SuratFilter{UserID: currentUser(c).ID})
}

// GetSurat returns one request with its attachments
func GetSurat(c *gin.Context) {
	id, ok := paramID(c, "id", "Surat tidak ditemukan")
	if !ok {
		return
	}
	item, err := service.GlobalServices.Surat.Get(id, currentUser(c))
	if err != nil {
		respondError(c, "surat.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"surat": suratOut(c, *item)})
}

// CreateSurat files a letter request with up to five attachments
func CreateSurat(c *gin.Context) {
	var in models.SuratInput
	if !bindForm(c, &in) {
		return
	}
	lampiran, err := uploadLampiran(c)
	if err != nil {
		respondError(c, "surat.Create", err)
		return
	}
	item, err := service.GlobalServices.Surat.Create(currentUser(c).ID, in, lampiran)
	if err != nil {
		respondError(c, "surat.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Surat berhasil diajukan", "surat": item})
}

// UpdateSuratStatus moves a request through its workflow
func UpdateSuratStatus(c *gin.Context) {
	id, ok := paramID(c, "id", "Surat tidak ditemukan")
	if !ok {
		return
	}
	var in models.StatusUpdate
	if !bindJSON(c, &in) {
		return
	}
	item, err := service.GlobalServices.Surat.UpdateStatus(id, in.Status)
	if err != nil {
		respondError(c, "surat.UpdateStatus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status surat berhasil diupdate", "surat": item})
}

// DeleteSurat removes a request and its attachments
func DeleteSurat(c *gin.Context) {
	id, ok := paramID(c, "id", "Surat tidak ditemukan")
	if !ok {
		return
	}
	if err := service.GlobalServices.Surat.Delete(id); err != nil {
		respondError(c, "surat.Delete", err)
		return
	}
	respondMessage(c, http.StatusOK, "Surat berhasil dihapus")
}

// SuratStats counts requests per status
func SuratStats(c *gin.Context) {
	stats, err := service.GlobalServices.Surat.Stats()
	if err != nil {
		respondError(c, "surat.Stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func pengaduanOut(c *gin.Context, p models.Pengaduan) models.Pengaduan {
	p.Lampiran = absoluteURL(c, p.Lampiran)
	return p
}

func pengaduanPage(c *gin.Context, items []models.Pengaduan, page, limit int, total int64) {
	out := make([]models.Pengaduan, 0, len(items))
	for _, it := range items {
		out = append(out, pengaduanOut(c, it))
	}
	c.JSON(http.StatusOK, gin.H{"pengaduan": out, "pagination": pagination(page, limit, total)})
}

// ListPengaduan lists complaints for admins
func ListPengaduan(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := service.GlobalServices.Pengaduan.List(c.Query("status"), page, limit)
	if err != nil {
		respondError(c, "pengaduan.List", err)
		return
	}
	pengaduanPage(c, items, page, limit, total)
}

// ListMyPengaduan lists the caller's complaints
func ListMyPengaduan(c *gin.Context) {
	page, limit := pageParams(c)
	items, total, err := service.GlobalServices.Pengaduan.ListByUser(currentUser(c).ID, page, limit)
	if err != nil {
		respondError(c, "pengaduan.ListByUser", err)
		return
	}
	pengaduanPage(c, items, page, limit, total)
}

// GetPengaduan returns one complaint
func GetPengaduan(c *gin.Context) {
	id, ok := paramID(c, "id", "Pengaduan tidak ditemukan")
	if !ok {
		return
	}
	item, err := service.GlobalServices.Pengaduan.Get(id)
	if err != nil {
		respondError(c, "pengaduan.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pengaduan": pengaduanOut(c, *item)})
}

// CreatePengaduan files a complaint with an optional photo
func CreatePengaduan(c *gin.Context) {
	var in models.PengaduanInput
	if !bindForm(c, &in) {
		return
	}
	img, err := uploadImage(c, pengaduanFields)
	if err != nil {
		respondError(c, "pengaduan.Create", err)
		return
	}
	item, err := service.GlobalServices.Pengaduan.Create(currentUser(c), in, img)
	if err != nil {
		respondError(c, "pengaduan.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pengaduan berhasil dikirim", "pengaduan": pengaduanOut(c, *item)})
}

// UpdatePengaduanStatus moves a complaint through its workflow
func UpdatePengaduanStatus(c *gin.Context) {
	id, ok := paramID(c, "id", "Pengaduan tidak ditemukan")
	if !ok {
		return
	}
	var in models.StatusUpdate
	if !bindJSON(c, &in) {
		return
	}
	item, err := service.GlobalServices.Pengaduan.UpdateStatus(id, in.Status)
	if err != nil {
		respondError(c, "pengaduan.UpdateStatus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status pengaduan berhasil diupdate", "pengaduan": pengaduanOut(c, *item)})
}

// DeletePengaduan removes a complaint
func DeletePengaduan(c *gin.Context) {
	id, ok := paramID(c, "id", "Pengaduan tidak ditemukan")
	if !ok {
		return
	}
	if err := service.GlobalServices.Pengaduan.Delete(id); err != nil {
		respondError(c, "pengaduan.Delete", err)
		return
	}
	respondMessage(c, http.StatusOK, "Pengaduan berhasil dihapus")
}

// PengaduanStats counts complaints per status
func PengaduanStats(c *gin.Context) {
	stats, err := service.GlobalServices.Pengaduan.Stats()
	if err != nil {
		respondError(c, "pengaduan.Stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreatePesanKontak stores a contact-form message
func CreatePesanKontak(c *gin.Context) {
	var in models.PesanKontakInput
	if !bindJSON(c, &in) {
		return
	}
	if _, err := service.GlobalServices.Kontak.CreatePesan(in); err != nil {
		respondError(c, "kontak.CreatePesan", err)
		return
	}
	respondMessage(c, http.StatusCreated, "Pesan berhasil dikirim")
}

// ListPesanKontak lists contact-form messages for admins
func ListPesanKontak(c *gin.Context) {
	items, err := service.GlobalServices.Kontak.ListPesan()
	if err != nil {
		respondError(c, "kontak.ListPesan", err)
		return
	}
	if items == nil {
		items = []models.PesanKontak{}
	}
	c.JSON(http.StatusOK, gin.H{"pesan": items})
}

// GetKontakDesa returns the village contact card
func GetKontakDesa(c *gin.Context) {
	item, err := service.GlobalServices.Kontak.GetKontakDesa()
	if err != nil {
		respondError(c, "kontak.GetKontakDesa", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kontak": item})
}

// UpdateKontakDesa replaces the village contact card
func UpdateKontakDesa(c *gin.Context) {
	var in models.KontakDesaInput
	if !bindJSON(c, &in) {
		return
	}
	if _, err := service.GlobalServices.Kontak.UpdateKontakDesa(in); err != nil {
		respondError(c, "kontak.UpdateKontakDesa", err)
		return
	}
	respondMessage(c, http.StatusOK, "Kontak desa berhasil diperbarui")
}
