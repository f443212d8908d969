package controllers

import (
	"errors"
	"net/http"
	"time"

	"journal-portal-api/config"
	"journal-portal-api/middleware"
	"journal-portal-api/models"
	"journal-portal-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Access tokens expire after 30 minutes.
const tokenLifetime = 30 * time.Minute

type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token exchanges email+password for a bearer token. A missing user and a
// wrong password answer identically so the endpoint cannot be used to
// enumerate accounts.
func Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := generateToken(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	StudyArea   string `json:"study_area" binding:"required"`
}

// Register creates a visitor account. Elevated roles are granted only by
// the provision-admin command, never at registration.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Friendly pre-check. Racy on its own; the unique index on
	// users.email is what actually prevents concurrent duplicates.
	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	user := models.User{
		UserID:        uuid.NewString(),
		Email:         req.Email,
		Name:          req.Name,
		Institution:   req.Institution,
		StudyArea:     req.StudyArea,
		Role:          models.RoleVisitor,
		Contributions: []string{},
		Password:      hashed,
		CreateAt:      time.Now().UTC(),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// CurrentUser echoes the identity resolved by the auth middleware.
func CurrentUser(c *gin.Context) {
	user, _ := c.Get("currentUser")
	c.JSON(http.StatusOK, user)
}

// generateToken creates a signed JWT asserting the subject email.
func generateToken(email string) (string, error) {
	claims := middleware.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.App.SigningSecret())
}
