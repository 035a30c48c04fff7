package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sidomulyo/config"
	"sidomulyo/core"
	"sidomulyo/database"
	"sidomulyo/handlers"
	"sidomulyo/service"
	"sidomulyo/store"
	"sidomulyo/version"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables and parse CLI flags
	config.ParseFlags()

	logFile, err := setupLogging(config.Settings.LogFilePath)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("Sidomulyo API %s starting up (%s)...", version.GetFullVersion(), config.Settings.AppEnv)

	// Initialize database
	if err := database.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	secret, err := jwtSecret()
	if err != nil {
		log.Fatalf("Failed to load JWT secret: %v", err)
	}

	// File-backed stores
	statistik := store.NewStatistikStore(config.Settings.StatistikFile)
	tentang := store.NewTentangStore(config.Settings.TentangFile)
	if err := tentang.EnsureInitialized(); err != nil {
		log.Fatalf("Failed to initialize %s: %v", tentang.Path(), err)
	}

	// Initialize services
	service.InitServices(database.DB, statistik, tentang, service.AuthConfig{
		Secret: []byte(secret),
		TTL:    time.Duration(config.Settings.JWTTTLHours) * time.Hour,
	})
	if err := service.GlobalServices.Auth.EnsureAdmin(config.Settings.AdminUsername, config.Settings.AdminPassword); err != nil {
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	// Set Gin mode
	if config.Settings.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Direct Gin logs to the configured log file
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()
	gin.DisableConsoleColor()

	r := gin.Default()
	r.MaxMultipartMemory = config.Settings.UploadMaxBytes * 6
	r.Use(cors.New(corsConfig(config.Settings.CORSAllowedOrigins)))
	handlers.RegisterRoutes(r, config.Settings)

	listener, err := core.ListenTCP("0.0.0.0", config.Settings.Port)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	srv := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://127.0.0.1:%d", config.Settings.Port)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Received interrupt signal, shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := database.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server exited")
}

// jwtSecret prefers JWT_SECRET and otherwise uses a random secret persisted
// in app_settings so tokens survive restarts.
func jwtSecret() (string, error) {
	if config.Settings.JWTSecret != "" {
		return config.Settings.JWTSecret, nil
	}
	if config.Settings.IsProduction() {
		log.Println("WARNING: JWT_SECRET is not set; using the generated secret stored in the database")
	}
	return database.EnsureSecret(database.DB, "jwt_secret")
}

// corsConfig allows the configured origins plus requests without an Origin
// header (curl, mobile apps).
func corsConfig(origins []string) cors.Config {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return origin == "" || allowed[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
