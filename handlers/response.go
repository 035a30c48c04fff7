package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"sidomulyo/config"
	"sidomulyo/core"
	"sidomulyo/models"

	"github.com/gin-gonic/gin"
)

const serverErrorMessage = "Terjadi kesalahan server"

// respondError maps service errors to the public error envelope. Anything
// that is not a known application error is logged and answered with 500.
func respondError(c *gin.Context, source string, err error) {
	var verrs core.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	var appErr *core.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	log.Printf("%s error: %v", source, err)
	core.LogErrorWithContext(source, serverErrorMessage, err.Error(), map[string]interface{}{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	})
	c.JSON(http.StatusInternalServerError, gin.H{"error": serverErrorMessage})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// paramID parses a numeric path parameter. A malformed id cannot match any
// row, so it is reported as not found.
func paramID(c *gin.Context, name, notFound string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

// pageParams reads ?page and ?limit with the listing defaults applied.
func pageParams(c *gin.Context) (int, int) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func pagination(page, limit int, total int64) models.Pagination {
	return models.NewPagination(page, limit, total)
}

// baseURL is the origin prepended to stored /uploads paths.
func baseURL(c *gin.Context) string {
	if config.Settings.IsProduction() && config.Settings.BaseURL != "" {
		return strings.TrimRight(config.Settings.BaseURL, "/")
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}

// absoluteURL turns a stored relative path into a link clients can follow.
func absoluteURL(c *gin.Context, p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	if strings.HasPrefix(*p, "http://") || strings.HasPrefix(*p, "https://") {
		return p
	}
	abs := baseURL(c) + *p
	return &abs
}
