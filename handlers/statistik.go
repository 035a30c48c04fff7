package handlers

import (
	"net/http"
	"strconv"

	"sidomulyo/models"
	"sidomulyo/service"

	"github.com/gin-gonic/gin"
)

func statistikID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Statistik tidak ditemukan"})
		return 0, false
	}
	return id, true
}

// ListStatistik returns the dashboard grouped by kategori
func ListStatistik(c *gin.Context) {
	grouped, err := service.GlobalServices.Statistik.Grouped(c.Query("kategori"))
	if err != nil {
		respondError(c, "statistik.List", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistik": grouped})
}

// ListStatistikByKategori returns one kategori sorted by label
func ListStatistikByKategori(c *gin.Context) {
	items, err := service.GlobalServices.Statistik.ByKategori(c.Param("kategori"))
	if err != nil {
		respondError(c, "statistik.ByKategori", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistik": items})
}

// StatistikOverview counts records and kategori
func StatistikOverview(c *gin.Context) {
	overview, err := service.GlobalServices.Statistik.Overview()
	if err != nil {
		respondError(c, "statistik.Overview", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// CreateStatistik appends a record
func CreateStatistik(c *gin.Context) {
	var in models.StatistikInput
	if !bindJSON(c, &in) {
		return
	}
	item, err := service.GlobalServices.Statistik.Create(in)
	if err != nil {
		respondError(c, "statistik.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Statistik berhasil ditambahkan", "statistik": item})
}

// UpdateStatistik replaces a record
func UpdateStatistik(c *gin.Context) {
	id, ok := statistikID(c)
	if !ok {
		return
	}
	var in models.StatistikInput
	if !bindJSON(c, &in) {
		return
	}
	item, err := service.GlobalServices.Statistik.Update(id, in)
	if err != nil {
		respondError(c, "statistik.Update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Statistik berhasil diupdate", "statistik": item})
}

// DeleteStatistik removes a record
func DeleteStatistik(c *gin.Context) {
	id, ok := statistikID(c)
	if !ok {
		return
	}
	if err := service.GlobalServices.Statistik.Delete(id); err != nil {
		respondError(c, "statistik.Delete", err)
		return
	}
	respondMessage(c, http.StatusOK, "Statistik berhasil dihapus")
}

// BulkUpdateStatistik sets many values at once
func BulkUpdateStatistik(c *gin.Context) {
	var in models.StatistikBulkUpdate
	if !bindJSON(c, &in) {
		return
	}
	if _, err := service.GlobalServices.Statistik.BulkUpdate(in.Statistik); err != nil {
		respondError(c, "statistik.BulkUpdate", err)
		return
	}
	respondMessage(c, http.StatusOK, "Statistik berhasil diupdate secara massal")
}
