package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-server/internal/config"
	"clinic-server/internal/middleware"
	"clinic-server/internal/models"
	"clinic-server/internal/utils"
)

// AuthHandler handles admin authentication and first-run setup.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// SetupRequest represents the request body for first-admin creation.
type SetupRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Setup creates the first admin account. It is only permitted while
// zero admin users exist; the existence check runs against the store on
// every call rather than a cached flag.
func (h *AuthHandler) Setup(c *gin.Context) {
	var req SetupRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var count int64
	if err := h.DB.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if count > 0 {
		utils.BadRequest(c, "Admin already exists")
		return
	}

	user := models.AdminUser{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if user.FirstName == "" {
		user.FirstName = "Admin"
	}
	if user.LastName == "" {
		user.LastName = "User"
	}

	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, err)
		return
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.BadRequest(c, "Admin already exists")
			return
		}
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Admin user created", "id": user.ID})
}

// NeedsSetup reports whether the system is still in its bootstrap
// state (no admin account yet).
func (h *AuthHandler) NeedsSetup(c *gin.Context) {
	var count int64
	if err := h.DB.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"needsSetup": count == 0})
}

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and establishes a server-side session.
// The browser receives a signed cookie carrying only the session id.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.AdminUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "Invalid credentials")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if err := h.startSession(c, &user); err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
	})
}

// CurrentUser confirms the caller's session. Mounted behind
// RequireAuth, so reaching the handler implies a valid session.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	adminID, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		utils.Unauthorized(c, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": adminID, "isAuthenticated": true})
}

// Logout destroys the session unconditionally. Calling it without a
// valid session still answers 200.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.destroySession(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LoginRedirect sends browsers hitting GET /api/login to the admin
// login screen.
func (h *AuthHandler) LoginRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin/login")
}

// LogoutRedirect clears the session and sends the browser home.
func (h *AuthHandler) LogoutRedirect(c *gin.Context) {
	h.destroySession(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) startSession(c *gin.Context, user *models.AdminUser) error {
	session := models.Session{
		AdminUserID: user.ID,
		ExpiresAt:   time.Now().Add(models.SessionLifetime),
	}
	if err := h.DB.Create(&session).Error; err != nil {
		return err
	}

	token, err := utils.SignSessionToken(session.ID, h.Cfg.SessionSecret, session.ExpiresAt)
	if err != nil {
		return err
	}

	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(models.SessionLifetime.Seconds()),
		"/",
		"",
		h.Cfg.IsProduction(),
		true,
	)
	return nil
}

func (h *AuthHandler) destroySession(c *gin.Context) {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie != "" {
		if sessionID, err := utils.ParseSessionToken(cookie, h.Cfg.SessionSecret); err == nil {
			h.DB.Delete(&models.Session{}, "id = ?", sessionID)
		}
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.Cfg.IsProduction(), true)
}
