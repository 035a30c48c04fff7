package handlers

import (
	"context"
	"net/http"
	"time"

	"sidomulyo/config"
	"sidomulyo/database"
	"sidomulyo/service"
	"sidomulyo/version"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports service and database status
func HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	dbHealthy := database.DB != nil && database.Ping(ctx, database.DB)

	health := gin.H{
		"status":      "OK",
		"message":     "WebSidomulyo API is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": config.Settings.AppEnv,
		"db_healthy":  dbHealthy,
	}
	if !dbHealthy {
		health["status"] = "DEGRADED"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}

// Root describes the API
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "WebSidomulyo API Server",
		"version": version.GetFullVersion(),
		"endpoints": gin.H{
			"health":    "/api/health",
			"auth":      "/api/auth",
			"berita":    "/api/berita",
			"surat":     "/api/surat",
			"pengaduan": "/api/pengaduan",
			"tentang":   "/api/tentang",
		},
	})
}

// NotFound answers unknown routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":   "Route not found",
		"message": "Cannot " + c.Request.Method + " " + c.Request.URL.Path,
	})
}

// GetErrorLogs returns recorded server errors, latest first
func GetErrorLogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logs": service.GlobalServices.ErrorLog.List()})
}

// ClearErrorLogs wipes error logs
func ClearErrorLogs(c *gin.Context) {
	service.GlobalServices.ErrorLog.Clear()
	respondMessage(c, http.StatusOK, "Error logs cleared")
}
