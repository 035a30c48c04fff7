package models

import (
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleWarga = "warga"
)

// User is a portal account. Citizens register as RoleWarga; admins are bootstrapped.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Nama         string    `gorm:"size:128;not null" json:"nama"`
	Email        string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	NoHP         *string   `gorm:"column:no_hp;size:20" json:"no_hp"`
	ProfileImage *string   `gorm:"column:profile_image" json:"profile_image"`
	Role         string    `gorm:"size:16;not null;default:warga" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	NoHP     string `json:"no_hp"`
}

// Normalize trims whitespace from input fields
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Nama = strings.TrimSpace(r.Nama)
	r.Email = strings.TrimSpace(r.Email)
	r.NoHP = strings.TrimSpace(r.NoHP)
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest is the payload of PUT /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ProfileUpdate is the form of PUT /api/auth/profile.
type ProfileUpdate struct {
	Nama  string `form:"nama" json:"nama" binding:"required"`
	Email string `form:"email" json:"email" binding:"required,email"`
	NoHP  string `form:"no_hp" json:"no_hp" binding:"omitempty,phone_id"`
}
