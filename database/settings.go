package database

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sidomulyo/models"
	"strings"

	"gorm.io/gorm"
)

// GetSetting returns a persisted key/value setting.
// ok is false when the key does not exist.
func GetSetting(db *gorm.DB, key string) (value string, ok bool, err error) {
	if db == nil {
		return "", false, errors.New("database not initialized")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, errors.New("empty setting key")
	}

	var s models.AppSetting
	if err := db.First(&s, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return s.Value, true, nil
}

// SetSetting persists a key/value setting.
func SetSetting(db *gorm.DB, key, value string) error {
	if db == nil {
		return errors.New("database not initialized")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty setting key")
	}

	return db.Save(&models.AppSetting{Key: key, Value: strings.TrimSpace(value)}).Error
}

// EnsureSecret returns the secret stored under key, generating and persisting
// a random 32-byte hex secret on first use.
func EnsureSecret(db *gorm.DB, key string) (string, error) {
	value, ok, err := GetSetting(db, key)
	if err != nil {
		return "", err
	}
	if ok && value != "" {
		return value, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	value = hex.EncodeToString(buf)
	if err := SetSetting(db, key, value); err != nil {
		return "", err
	}
	return value, nil
}
