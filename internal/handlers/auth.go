package handlers

import (
	"log"
	"net/http"
	"strings"

	"janamat/internal/config"
	"janamat/internal/middleware"
	"janamat/internal/models"
	"janamat/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db  *gorm.DB
	cfg config.Config
}

func NewAuthHandler(db *gorm.DB, cfg config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and opens a session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request")
		return
	}

	if !strings.Contains(req.Email, "@") {
		jsonError(c, http.StatusBadRequest, "invalid email")
		return
	}
	if len(req.Password) < 6 {
		jsonError(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	username := req.Username
	if username == "" {
		username = strings.Split(req.Email, "@")[0]
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		jsonError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	user := models.User{
		Username: username,
		Email:    req.Email,
		Password: hash,
	}
	if err := h.db.Create(&user).Error; err != nil {
		jsonError(c, http.StatusConflict, "email already registered")
		return
	}

	h.openSession(c, &user)
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login verifies credentials, opens a session and issues an API token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request")
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		jsonError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if !utils.CheckPassword(req.Password, user.Password) {
		jsonError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Username, user.Role, h.cfg.JWTSecret)
	if err != nil {
		log.Printf("Failed to generate token for user %d: %v", user.ID, err)
		jsonError(c, http.StatusInternalServerError, "login failed")
		return
	}

	h.openSession(c, &user)
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout clears the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	if err := session.Save(); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the logged-in user, or null for anonymous callers.
func (h *AuthHandler) Me(c *gin.Context) {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		c.JSON(http.StatusOK, user)
		return
	}
	c.JSON(http.StatusOK, nil)
}

func (h *AuthHandler) openSession(c *gin.Context, user *models.User) {
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	if err := session.Save(); err != nil {
		log.Printf("Failed to save session for user %d: %v", user.ID, err)
	}
}
