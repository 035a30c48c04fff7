package service

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"sidomulyo/core"
	"sidomulyo/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^(\+62|62|0)?[0-9]{9,12}$`)
)

// ValidPhone reports whether s looks like an Indonesian mobile number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// AuthConfig holds the token signing settings.
type AuthConfig struct {
	Secret []byte
	TTL    time.Duration
}

// Claims is the payload of an access token.
type Claims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService handles accounts and access tokens
type AuthService struct {
	db  *gorm.DB
	cfg AuthConfig
	now func() time.Time
}

// NewAuthService constructs an auth service
func NewAuthService(db *gorm.DB, cfg AuthConfig) *AuthService {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &AuthService{db: db, cfg: cfg, now: time.Now}
}

// IssueToken signs an access token for user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ParseToken verifies raw and returns its claims.
func (s *AuthService) ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Authenticate resolves a token to the user it was issued for. The user
// must still exist.
func (s *AuthService) Authenticate(raw string) (*models.User, error) {
	claims, err := s.ParseToken(raw)
	if err != nil {
		return nil, err
	}
	user, err := s.GetUser(claims.UserID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser fetches a user by ID
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.NewNotFoundError("User tidak ditemukan")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func validateRegister(req models.RegisterRequest) error {
	switch {
	case len(req.Username) < 3:
		return core.NewBadRequestError("Username minimal 3 karakter")
	case len(req.Password) < 6:
		return core.NewBadRequestError("Password minimal 6 karakter")
	case req.Nama == "":
		return core.NewBadRequestError("Nama lengkap wajib diisi")
	case !emailPattern.MatchString(req.Email):
		return core.NewBadRequestError("Email tidak valid")
	case req.NoHP != "" && !ValidPhone(req.NoHP):
		return core.NewBadRequestError("Nomor HP tidak valid. Gunakan format: 081234567890")
	}
	return nil
}

// Register creates a citizen account and returns it with a fresh token.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, string, error) {
	req.Normalize()
	if err := validateRegister(req); err != nil {
		return nil, "", err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return nil, "", fmt.Errorf("failed to check username: %w", err)
	}
	if count > 0 {
		return nil, "", core.NewDuplicateError("Username sudah digunakan", 400)
	}
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, "", core.NewDuplicateError("Email sudah digunakan", 400)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Nama:         req.Nama,
		Email:        req.Email,
		Role:         models.RoleWarga,
	}
	if req.NoHP != "" {
		user.NoHP = &req.NoHP
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login checks credentials and returns the user with a fresh token.
func (s *AuthService) Login(req models.LoginRequest) (*models.User, string, error) {
	var user models.User
	err := s.db.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", core.NewInvalidCredentialsError("Username atau password salah")
		}
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", core.NewInvalidCredentialsError("Username atau password salah")
	}

	token, err := s.IssueToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *AuthService) ChangePassword(userID uint, req models.ChangePasswordRequest) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return core.NewBadRequestError("Password saat ini salah")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.db.Model(user).Update("password_hash", string(hash)).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UpdateProfile updates name, email and phone. profileImage replaces the
// stored photo when non-nil.
func (s *AuthService) UpdateProfile(userID uint, req models.ProfileUpdate, profileImage *string) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ? AND id <> ?", email, userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return nil, core.NewDuplicateError("Email sudah digunakan oleh user lain", 400)
	}

	user.Nama = strings.TrimSpace(req.Nama)
	user.Email = email
	user.NoHP = nil
	if phone := strings.TrimSpace(req.NoHP); phone != "" {
		user.NoHP = &phone
	}
	if profileImage != nil {
		user.ProfileImage = profileImage
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// DeleteAccount removes a citizen account together with everything it
// created. Dependent deletes run independently; their failures are
// collected and logged, and the user row is removed regardless.
func (s *AuthService) DeleteAccount(userID uint) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() {
		return nil, core.NewForbiddenError("Tidak dapat menghapus akun administrator")
	}

	var result *multierror.Error
	steps := []struct {
		name string
		run  func() error
	}{
		{"lampiran_surat", func() error {
			return s.db.Where("surat_id IN (?)", s.db.Model(&models.Surat{}).Select("id").Where("user_id = ?", userID)).
				Delete(&models.LampiranSurat{}).Error
		}},
		{"surat", func() error { return s.db.Where("user_id = ?", userID).Delete(&models.Surat{}).Error }},
		{"pengaduan", func() error { return s.db.Where("user_id = ?", userID).Delete(&models.Pengaduan{}).Error }},
		{"berita", func() error { return s.db.Where("created_by = ?", userID).Delete(&models.Berita{}).Error }},
		{"pengumuman", func() error { return s.db.Where("created_by = ?", userID).Delete(&models.Pengumuman{}).Error }},
		{"agenda", func() error { return s.db.Where("created_by = ?", userID).Delete(&models.Agenda{}).Error }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", step.name, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		log.Printf("Warning: deleting data of user %d left errors: %v", userID, err)
		core.LogWarn("auth.DeleteAccount", "failed to delete related data", err.Error())
	}

	if err := s.db.Delete(&models.User{}, userID).Error; err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	log.Printf("User account deleted: ID %d, Username: %s", user.ID, user.Username)
	return user, nil
}

// EnsureAdmin creates an admin account with the given credentials unless
// the username already exists.
func (s *AuthService) EnsureAdmin(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Nama:         "Administrator",
		Email:        username + "@localhost",
		Role:         models.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	log.Printf("Created admin account %q", username)
	return nil
}
