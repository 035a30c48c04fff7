package database

import (
	"fmt"
	"net/url"
	"sidomulyo/config"
	"strings"
)

type sqlitePoolConfig struct {
	maxOpenConns int
	maxIdleConns int
	maxIdleSec   int
	maxLifeSec   int
}

// currentSQLitePoolConfig reads the pool settings and clamps them:
// at least one open connection, idle connections within [0, open],
// and no negative durations.
func currentSQLitePoolConfig(settings *config.Config) sqlitePoolConfig {
	cfg := sqlitePoolConfig{
		maxOpenConns: max(settings.SQLiteMaxOpenConns, 1),
		maxIdleConns: max(settings.SQLiteMaxIdleConns, 0),
		maxIdleSec:   max(settings.SQLiteConnMaxIdleSec, 0),
		maxLifeSec:   max(settings.SQLiteConnMaxLifeSec, 0),
	}
	cfg.maxIdleConns = min(cfg.maxIdleConns, cfg.maxOpenConns)
	return cfg
}

// buildSQLiteDSN appends _pragma parameters to dbPath when PRAGMAs are enabled.
// Existing query parameters on dbPath are kept.
func buildSQLiteDSN(dbPath string, settings *config.Config) string {
	base, rawQuery, _ := strings.Cut(dbPath, "?")
	query, _ := url.ParseQuery(rawQuery)

	if settings.SQLitePragmasEnabled {
		for _, p := range sqlitePragmas(settings) {
			query.Add("_pragma", p)
		}
	}

	if len(query) == 0 {
		return base
	}
	return base + "?" + query.Encode()
}

func sqlitePragmas(settings *config.Config) []string {
	var pragmas []string
	if settings.SQLiteBusyTimeoutMS > 0 {
		pragmas = append(pragmas, fmt.Sprintf("busy_timeout(%d)", settings.SQLiteBusyTimeoutMS))
	}
	if mode := normalizeSQLiteJournalMode(settings.SQLiteJournalMode); mode != "" {
		pragmas = append(pragmas, fmt.Sprintf("journal_mode(%s)", mode))
	}
	if sync := normalizeSQLiteSynchronous(settings.SQLiteSynchronous); sync != "" {
		pragmas = append(pragmas, fmt.Sprintf("synchronous(%s)", sync))
	}
	if settings.SQLiteForeignKeys {
		pragmas = append(pragmas, "foreign_keys(1)")
	} else {
		pragmas = append(pragmas, "foreign_keys(0)")
	}
	return pragmas
}

func normalizeSQLiteJournalMode(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch value {
	case "WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY", "OFF":
		return value
	}
	return ""
}

func normalizeSQLiteSynchronous(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch value {
	case "OFF", "NORMAL", "FULL", "EXTRA", "0", "1", "2", "3":
		return value
	}
	return ""
}
