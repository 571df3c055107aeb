package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-server/internal/models"
	"clinic-server/internal/utils"
)

// PrescriptionHandler handles prescription requests.
type PrescriptionHandler struct {
	DB *gorm.DB
}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler(db *gorm.DB) *PrescriptionHandler {
	return &PrescriptionHandler{DB: db}
}

// CreatePrescriptionRequest represents the request body for issuing a
// prescription.
type CreatePrescriptionRequest struct {
	PatientID      string     `json:"patientId" binding:"required,uuid"`
	VisitID        *string    `json:"visitId" binding:"omitempty,uuid"`
	Medication     string     `json:"medication" binding:"required"`
	Dosage         string     `json:"dosage" binding:"required"`
	Frequency      string     `json:"frequency" binding:"required"`
	Duration       string     `json:"duration"`
	Instructions   string     `json:"instructions"`
	PrescribedDate *time.Time `json:"prescribedDate"`
}

// CreatePrescription issues a prescription. PrescribedDate defaults to
// now.
func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var req CreatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !patientExists(h.DB, c, req.PatientID) {
		return
	}

	prescribedDate := time.Now()
	if req.PrescribedDate != nil {
		prescribedDate = *req.PrescribedDate
	}

	prescription := models.Prescription{
		PatientID:      req.PatientID,
		VisitID:        req.VisitID,
		Medication:     req.Medication,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Duration:       req.Duration,
		Instructions:   req.Instructions,
		PrescribedDate: prescribedDate,
	}

	if err := h.DB.Create(&prescription).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, prescription)
}

// GetPrescriptions lists prescriptions newest first, optionally
// filtered by patient.
func (h *PrescriptionHandler) GetPrescriptions(c *gin.Context) {
	query := h.DB.Order("prescribed_date desc")
	if patientID := c.Query("patientId"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var prescriptions []models.Prescription
	if err := query.Find(&prescriptions).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

// GetPrescriptionByID fetches a single prescription.
func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	var prescription models.Prescription
	if err := h.DB.First(&prescription, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Prescription not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, prescription)
}

// UpdatePrescriptionRequest represents a partial prescription update.
type UpdatePrescriptionRequest struct {
	VisitID        *string    `json:"visitId" binding:"omitempty,uuid"`
	Medication     *string    `json:"medication"`
	Dosage         *string    `json:"dosage"`
	Frequency      *string    `json:"frequency"`
	Duration       *string    `json:"duration"`
	Instructions   *string    `json:"instructions"`
	PrescribedDate *time.Time `json:"prescribedDate"`
}

func (r *UpdatePrescriptionRequest) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setIfPresent(updates, "visit_id", r.VisitID)
	setIfPresent(updates, "medication", r.Medication)
	setIfPresent(updates, "dosage", r.Dosage)
	setIfPresent(updates, "frequency", r.Frequency)
	setIfPresent(updates, "duration", r.Duration)
	setIfPresent(updates, "instructions", r.Instructions)
	if r.PrescribedDate != nil {
		updates["prescribed_date"] = *r.PrescribedDate
	}
	return updates
}

// UpdatePrescription merges partial fields into an existing
// prescription.
func (h *PrescriptionHandler) UpdatePrescription(c *gin.Context) {
	var req UpdatePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var prescription models.Prescription
	if err := h.DB.First(&prescription, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Prescription not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}

	if updates := req.updates(); len(updates) > 0 {
		if err := h.DB.Model(&prescription).Updates(updates).Error; err != nil {
			utils.InternalServerError(c, err)
			return
		}
		if err := h.DB.First(&prescription, "id = ?", prescription.ID).Error; err != nil {
			utils.InternalServerError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, prescription)
}

// DeletePrescription removes a prescription.
func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	result := h.DB.Delete(&models.Prescription{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.InternalServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Prescription not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
