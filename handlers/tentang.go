package handlers

import (
	"net/http"

	"sidomulyo/models"
	"sidomulyo/service"

	"github.com/gin-gonic/gin"
)

// GetTentang returns every about-page section
func GetTentang(c *gin.Context) {
	t, err := service.GlobalServices.Tentang.All()
	if err != nil {
		respondError(c, "tentang.All", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tentang": t})
}

// GetTentangSection returns one section by key or alias
func GetTentangSection(c *gin.Context) {
	section, err := service.GlobalServices.Tentang.Section(c.Param("section"))
	if err != nil {
		respondError(c, "tentang.Section", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tentang": section})
}

// TentangOverview lists section titles and update stamps
func TentangOverview(c *gin.Context) {
	rows, err := service.GlobalServices.Tentang.Overview()
	if err != nil {
		respondError(c, "tentang.Overview", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalSections": len(rows), "sections": rows})
}

func respondSection(c *gin.Context, source, message string, section models.TentangSection, err error) {
	if err != nil {
		respondError(c, source, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "tentang": section})
}

// UpdateSelayangPandang replaces the introduction
func UpdateSelayangPandang(c *gin.Context) {
	var in models.TentangTextInput
	if !bindJSON(c, &in) {
		return
	}
	section, err := service.GlobalServices.Tentang.UpdateSelayangPandang(in)
	respondSection(c, "tentang.UpdateSelayangPandang", "Selayang pandang berhasil diupdate", section, err)
}

// UpdateVisiMisi replaces the vision and missions
func UpdateVisiMisi(c *gin.Context) {
	var in models.VisiMisiInput
	if !bindJSON(c, &in) {
		return
	}
	section, err := service.GlobalServices.Tentang.UpdateVisiMisi(in)
	respondSection(c, "tentang.UpdateVisiMisi", "Visi & Misi berhasil diupdate", section, err)
}

// UpdateSejarah replaces the history text
func UpdateSejarah(c *gin.Context) {
	var in models.TentangTextInput
	if !bindJSON(c, &in) {
		return
	}
	section, err := service.GlobalServices.Tentang.UpdateSejarah(in)
	respondSection(c, "tentang.UpdateSejarah", "Sejarah berhasil diupdate", section, err)
}

// UpdateGeografis replaces the geography section
func UpdateGeografis(c *gin.Context) {
	var in models.GeografisInput
	if !bindJSON(c, &in) {
		return
	}
	section, err := service.GlobalServices.Tentang.UpdateGeografis(in)
	respondSection(c, "tentang.UpdateGeografis", "Kondisi geografis berhasil diupdate", section, err)
}

// UpdateDemografis replaces the demography section
func UpdateDemografis(c *gin.Context) {
	var in models.DemografisInput
	if !bindJSON(c, &in) {
		return
	}
	section, err := service.GlobalServices.Tentang.UpdateDemografis(in)
	respondSection(c, "tentang.UpdateDemografis", "Kondisi demografis berhasil diupdate", section, err)
}
