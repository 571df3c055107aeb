package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-server/internal/models"
	"clinic-server/internal/utils"
)

// ContactHandler handles public contact-form submissions and the
// read-only admin inbox.
type ContactHandler struct {
	DB *gorm.DB
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(db *gorm.DB) *ContactHandler {
	return &ContactHandler{DB: db}
}

// CreateContactMessageRequest represents the public contact form.
type CreateContactMessageRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Message       string `json:"message" binding:"required"`
	PreferredDate string `json:"preferredDate"`
}

// CreateContactMessage stores a public inquiry. Messages are
// write-once; there is no update or delete endpoint.
func (h *ContactHandler) CreateContactMessage(c *gin.Context) {
	var req CreateContactMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	message := models.ContactMessage{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Message:       req.Message,
		PreferredDate: req.PreferredDate,
	}

	if err := h.DB.Create(&message).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message received successfully",
		"id":      message.ID,
	})
}

// GetContactMessages lists inquiries newest first for the admin inbox.
func (h *ContactHandler) GetContactMessages(c *gin.Context) {
	var messages []models.ContactMessage
	if err := h.DB.Order("created_at desc").Find(&messages).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
