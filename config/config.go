package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sidomulyo/version"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the portal runtime configuration.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFilePath string `env:"LOG_FILE" envDefault:"./sidomulyo.log"`
	Port        int    `env:"PORT" envDefault:"5000"`
	BaseURL     string `env:"BASE_URL"`

	DatabaseURL          string `env:"DATABASE_URL" envDefault:"sidomulyo.db"`
	SQLitePragmasEnabled bool   `env:"SQLITE_PRAGMAS_ENABLED" envDefault:"true"`
	SQLiteBusyTimeoutMS  int    `env:"SQLITE_BUSY_TIMEOUT_MS" envDefault:"5000"`
	SQLiteJournalMode    string `env:"SQLITE_JOURNAL_MODE" envDefault:"WAL"`
	SQLiteSynchronous    string `env:"SQLITE_SYNCHRONOUS" envDefault:"NORMAL"`
	SQLiteForeignKeys    bool   `env:"SQLITE_FOREIGN_KEYS" envDefault:"true"`
	SQLiteMaxOpenConns   int    `env:"SQLITE_MAX_OPEN_CONNS" envDefault:"1"`
	SQLiteMaxIdleConns   int    `env:"SQLITE_MAX_IDLE_CONNS" envDefault:"1"`
	SQLiteConnMaxIdleSec int    `env:"SQLITE_CONN_MAX_IDLE_SECONDS" envDefault:"300"`
	SQLiteConnMaxLifeSec int    `env:"SQLITE_CONN_MAX_LIFETIME_SECONDS" envDefault:"0"`

	JWTSecret   string `env:"JWT_SECRET"`
	JWTTTLHours int    `env:"JWT_TTL_HOURS" envDefault:"24"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`

	StatistikFile string `env:"STATISTIK_FILE" envDefault:"statistik.json"`
	TentangFile   string `env:"TENTANG_FILE" envDefault:"tentang.json"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173,http://127.0.0.1:5173,http://localhost:4173,http://127.0.0.1:4173"`

	// Zero means "pick the default for APP_ENV".
	RateLimitWindowSeconds int `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"900"`
	RateLimitGeneral       int `env:"RATE_LIMIT_GENERAL" envDefault:"0"`
	RateLimitAuth          int `env:"RATE_LIMIT_AUTH" envDefault:"0"`
}

// Settings is the global configuration instance populated from environment variables and flags.
var Settings *Config

func init() {
	cfg, err := Load()
	if err != nil {
		log.Printf("Warning: invalid environment configuration, using defaults: %v", err)
		cfg = &Config{}
		_ = env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}})
		cfg.applyDerivedDefaults()
	}
	Settings = cfg
}

// Load builds a Config from the process environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDerivedDefaults()
	return cfg, nil
}

// IsProduction reports whether APP_ENV selects production behavior.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.AppEnv), "production")
}

func (c *Config) applyDerivedDefaults() {
	if c.RateLimitGeneral <= 0 {
		if c.IsProduction() {
			c.RateLimitGeneral = 200
		} else {
			c.RateLimitGeneral = 1000
		}
	}
	if c.RateLimitAuth <= 0 {
		if c.IsProduction() {
			c.RateLimitAuth = 10
		} else {
			c.RateLimitAuth = 20
		}
	}
	if c.JWTTTLHours <= 0 {
		c.JWTTTLHours = 24
	}
	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSAllowedOrigins = origins
}

// ParseFlags parses command-line flags and applies overrides to Settings.
// It handles --help (prints usage and exits) and --version (prints build info and exits).
func ParseFlags() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Sidomulyo portal API\n\n")
		fmt.Fprintf(out, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(out, "\nEnvironment variables:")
		fmt.Fprintln(out, "  APP_ENV                           development or production (default development)")
		fmt.Fprintln(out, "  LOG_LEVEL                         Log level (DEBUG, INFO, WARN, ERROR)")
		fmt.Fprintln(out, "  LOG_FILE                          Log file path, '-' for stderr (default ./sidomulyo.log)")
		fmt.Fprintln(out, "  PORT                              HTTP server port (default 5000)")
		fmt.Fprintln(out, "  BASE_URL                          Public base URL used for image links in production")
		fmt.Fprintln(out, "  DATABASE_URL                      SQLite database path (default sidomulyo.db)")
		fmt.Fprintln(out, "  SQLITE_PRAGMAS_ENABLED            Enable SQLite PRAGMAs (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_BUSY_TIMEOUT_MS            SQLite busy_timeout in milliseconds (default 5000)")
		fmt.Fprintln(out, "  SQLITE_JOURNAL_MODE               SQLite journal_mode (default WAL)")
		fmt.Fprintln(out, "  SQLITE_SYNCHRONOUS                SQLite synchronous (default NORMAL)")
		fmt.Fprintln(out, "  SQLITE_FOREIGN_KEYS               Enable SQLite foreign_keys (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_MAX_OPEN_CONNS             SQLite MaxOpenConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_MAX_IDLE_CONNS             SQLite MaxIdleConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_IDLE_SECONDS      SQLite ConnMaxIdleTime in seconds (default 300)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_LIFETIME_SECONDS  SQLite ConnMaxLifetime in seconds (default 0)")
		fmt.Fprintln(out, "  JWT_SECRET                        HMAC secret for access tokens (required)")
		fmt.Fprintln(out, "  JWT_TTL_HOURS                     Access token lifetime in hours (default 24)")
		fmt.Fprintln(out, "  ADMIN_USERNAME / ADMIN_PASSWORD   Bootstrap an admin account on startup")
		fmt.Fprintln(out, "  UPLOAD_DIR                        Upload directory (default uploads)")
		fmt.Fprintln(out, "  UPLOAD_MAX_BYTES                  Max upload size in bytes (default 5242880)")
		fmt.Fprintln(out, "  STATISTIK_FILE                    Statistics JSON file (default statistik.json)")
		fmt.Fprintln(out, "  TENTANG_FILE                      About-page JSON file (default tentang.json)")
		fmt.Fprintln(out, "  CORS_ALLOWED_ORIGINS              Comma separated allowed origins")
		fmt.Fprintln(out, "  RATE_LIMIT_WINDOW_SECONDS         Rate limit window in seconds (default 900)")
		fmt.Fprintln(out, "  RATE_LIMIT_GENERAL                Requests per window on data endpoints (default 1000 dev / 200 prod)")
		fmt.Fprintln(out, "  RATE_LIMIT_AUTH                   Login/register attempts per window (default 20 dev / 10 prod)")
	}

	port := flag.Int("port", Settings.Port, "HTTP server port (overrides PORT)")
	db := flag.String("db", Settings.DatabaseURL, "SQLite database path (overrides DATABASE_URL)")
	sqlitePragmasEnabled := flag.Bool("sqlite-pragmas", Settings.SQLitePragmasEnabled, "Enable SQLite PRAGMAs (overrides SQLITE_PRAGMAS_ENABLED)")
	sqliteJournalMode := flag.String("sqlite-journal-mode", Settings.SQLiteJournalMode, "SQLite journal_mode (overrides SQLITE_JOURNAL_MODE)")
	logLevel := flag.String("log-level", Settings.LogLevel, "Log level: DEBUG, INFO, WARN, ERROR (overrides LOG_LEVEL)")
	logFile := flag.String("log-file", Settings.LogFilePath, "Log file path, '-' for stderr (overrides LOG_FILE)")
	uploadDir := flag.String("upload-dir", Settings.UploadDir, "Upload directory (overrides UPLOAD_DIR)")
	statistikFile := flag.String("statistik-file", Settings.StatistikFile, "Statistics JSON file (overrides STATISTIK_FILE)")
	tentangFile := flag.String("tentang-file", Settings.TentangFile, "About-page JSON file (overrides TENTANG_FILE)")

	showHelp := flag.Bool("help", false, "Show help and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetBuildInfo())
		os.Exit(0)
	}

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	Settings.Port = *port
	Settings.DatabaseURL = *db
	Settings.SQLitePragmasEnabled = *sqlitePragmasEnabled
	Settings.SQLiteJournalMode = *sqliteJournalMode
	Settings.LogLevel = *logLevel
	Settings.LogFilePath = *logFile
	Settings.UploadDir = *uploadDir
	Settings.StatistikFile = *statistikFile
	Settings.TentangFile = *tentangFile
}
