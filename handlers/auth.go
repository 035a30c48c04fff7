package handlers

import (
	"net/http"

	"sidomulyo/models"
	"sidomulyo/service"

	"github.com/gin-gonic/gin"
)

func userOut(c *gin.Context, u *models.User) models.User {
	out := *u
	out.ProfileImage = absoluteURL(c, u.ProfileImage)
	return out
}

// Register creates a citizen account and logs it in
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, token, err := service.GlobalServices.Auth.Register(req)
	if err != nil {
		respondError(c, "auth.Register", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registrasi & login berhasil",
		"token":   token,
		"user":    userOut(c, user),
	})
}

// Login exchanges credentials for a token
func Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	user, token, err := service.GlobalServices.Auth.Login(req)
	if err != nil {
		respondError(c, "auth.Login", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login berhasil",
		"token":   token,
		"user":    userOut(c, user),
	})
}

// Me returns the authenticated user
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": userOut(c, currentUser(c))})
}

// ChangePassword replaces the caller's password
func ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := service.GlobalServices.Auth.ChangePassword(currentUser(c).ID, req); err != nil {
		respondError(c, "auth.ChangePassword", err)
		return
	}
	respondMessage(c, http.StatusOK, "Password berhasil diubah")
}

// UpdateProfile updates the caller's profile, optionally with a new photo
func UpdateProfile(c *gin.Context) {
	var req models.ProfileUpdate
	if !bindForm(c, &req) {
		return
	}
	foto, err := uploadImage(c, fotoFields)
	if err != nil {
		respondError(c, "auth.UpdateProfile", err)
		return
	}
	user, err := service.GlobalServices.Auth.UpdateProfile(currentUser(c).ID, req, foto)
	if err != nil {
		respondError(c, "auth.UpdateProfile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profil berhasil diupdate", "user": userOut(c, user)})
}

// DeleteAccount removes the caller's account and everything it owns
func DeleteAccount(c *gin.Context) {
	user, err := service.GlobalServices.Auth.DeleteAccount(currentUser(c).ID)
	if err != nil {
		respondError(c, "auth.DeleteAccount", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Akun berhasil dihapus",
		"deletedUser": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"nama":     user.Nama,
			"email":    user.Email,
		},
	})
}
