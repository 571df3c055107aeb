package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinic-server/internal/models"
	"clinic-server/internal/utils"
)

// SettingsHandler handles the singleton practice-settings record.
type SettingsHandler struct {
	DB *gorm.DB
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{DB: db}
}

// GetSettings returns the settings row, or an empty object while none
// has been saved yet.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	var settings models.DoctorSettings
	if err := h.DB.First(&settings, "id = ?", models.DoctorSettingsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		utils.InternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsRequest represents the full settings payload.
type UpdateSettingsRequest struct {
	DoctorName    string `json:"doctorName" binding:"required"`
	Specialty     string `json:"specialty" binding:"required"`
	LicenseNumber string `json:"licenseNumber"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
	WorkingHours  string `json:"workingHours"`
	Bio           string `json:"bio"`
}

// UpdateSettings upserts the singleton row through its fixed primary
// key, so concurrent PUTs cannot race into two rows.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	settings := models.DoctorSettings{
		BaseModel:     models.BaseModel{ID: models.DoctorSettingsID},
		DoctorName:    req.DoctorName,
		Specialty:     req.Specialty,
		LicenseNumber: req.LicenseNumber,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		WorkingHours:  req.WorkingHours,
		Bio:           req.Bio,
	}

	err := h.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"doctor_name", "specialty", "license_number", "phone",
			"email", "address", "working_hours", "bio", "updated_at",
		}),
	}).Create(&settings).Error
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}

	if err := h.DB.First(&settings, "id = ?", models.DoctorSettingsID).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
