package handlers

import (
	"net/http"

	"sidomulyo/models"
	"sidomulyo/service"

	"github.com/gin-gonic/gin"
)

func agendaOut(c *gin.Context, a models.Agenda) models.Agenda {
	a.Img = absoluteURL(c, a.Img)
	return a
}

// ListAgenda lists events ordered by date and time
func ListAgenda(c *gin.Context) {
	items, err := service.GlobalServices.Agenda.List(c.Query("status"))
	if err != nil {
		respondError(c, "agenda.List", err)
		return
	}
	out := make([]models.Agenda, 0, len(items))
	for _, it := range items {
		out = append(out, agendaOut(c, it))
	}
	c.JSON(http.StatusOK, gin.H{"agenda": out})
}

// GetAgenda returns one event
func GetAgenda(c *gin.Context) {
	id, ok := paramID(c, "id", "Agenda tidak ditemukan")
	if !ok {
		return
	}
	item, err := service.GlobalServices.Agenda.Get(id)
	if err != nil {
		respondError(c, "agenda.Get", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agenda": agendaOut(c, *item)})
}

// CreateAgenda stores a new event
func CreateAgenda(c *gin.Context) {
	var in models.AgendaInput
	if !bindForm(c, &in) {
		return
	}
	img, err := uploadImage(c, articleImageFields)
	if err != nil {
		respondError(c, "agenda.Create", err)
		return
	}
	item, err := service.GlobalServices.Agenda.Create(in, img, currentUser(c).ID)
	if err != nil {
		respondError(c, "agenda.Create", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Agenda berhasil ditambahkan", "agenda": agendaOut(c, *item)})
}

// UpdateAgenda replaces an event
func UpdateAgenda(c *gin.Context) {
	id, ok := paramID(c, "id", "Agenda tidak ditemukan")
	if !ok {
		return
	}
	var in models.AgendaInput
	if !bindForm(c, &in) {
		return
	}
	img, err := uploadImage(c, articleImageFields)
	if err != nil {
		respondError(c, "agenda.Update", err)
		return
	}
	item, err := service.GlobalServices.Agenda.Update(id, in, img)
	if err != nil {
		respondError(c, "agenda.Update", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Agenda berhasil diupdate", "agenda": agendaOut(c, *item)})
}

// DeleteAgenda removes an event
func DeleteAgenda(c *gin.Context) {
	id, ok := paramID(c, "id", "Agenda tidak ditemukan")
	if !ok {
		return
	}
	if err := service.GlobalServices.Agenda.Delete(id); err != nil {
		respondError(c, "agenda.Delete", err)
		return
	}
	respondMessage(c, http.StatusOK, "Agenda berhasil dihapus")
}
