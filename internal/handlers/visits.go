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

// VisitHandler handles visit record requests.
type VisitHandler struct {
	DB *gorm.DB
}

// NewVisitHandler creates a new VisitHandler.
func NewVisitHandler(db *gorm.DB) *VisitHandler {
	return &VisitHandler{DB: db}
}

// CreateVisitRequest represents the request body for recording a visit.
type CreateVisitRequest struct {
	PatientID      string           `json:"patientId" binding:"required,uuid"`
	VisitDate      *time.Time       `json:"visitDate"`
	ChiefComplaint string           `json:"chiefComplaint"`
	Diagnosis      string           `json:"diagnosis"`
	Treatment      string           `json:"treatment"`
	Notes          string           `json:"notes"`
	FollowUpDate   *models.DateOnly `json:"followUpDate"`
}

// CreateVisit records a new visit. VisitDate defaults to now.
func (h *VisitHandler) CreateVisit(c *gin.Context) {
	var req CreateVisitRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !patientExists(h.DB, c, req.PatientID) {
		return
	}

	visitDate := time.Now()
	if req.VisitDate != nil {
		visitDate = *req.VisitDate
	}

	visit := models.Visit{
		PatientID:      req.PatientID,
		VisitDate:      visitDate,
		ChiefComplaint: req.ChiefComplaint,
		Diagnosis:      req.Diagnosis,
		Treatment:      req.Treatment,
		Notes:          req.Notes,
		FollowUpDate:   req.FollowUpDate,
	}

	if err := h.DB.Create(&visit).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, visit)
}

// GetVisits lists visits newest first, optionally filtered by patient.
func (h *VisitHandler) GetVisits(c *gin.Context) {
	query := h.DB.Order("visit_date desc")
	if patientID := c.Query("patientId"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}

	var visits []models.Visit
	if err := query.Find(&visits).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, visits)
}

// GetVisitByID fetches a single visit.
func (h *VisitHandler) GetVisitByID(c *gin.Context) {
	var visit models.Visit
	if err := h.DB.First(&visit, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Visit not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, visit)
}

// UpdateVisitRequest represents a partial visit update.
type UpdateVisitRequest struct {
	VisitDate      *time.Time       `json:"visitDate"`
	ChiefComplaint *string          `json:"chiefComplaint"`
	Diagnosis      *string          `json:"diagnosis"`
	Treatment      *string          `json:"treatment"`
	Notes          *string          `json:"notes"`
	FollowUpDate   *models.DateOnly `json:"followUpDate"`
}

func (r *UpdateVisitRequest) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.VisitDate != nil {
		updates["visit_date"] = *r.VisitDate
	}
	setIfPresent(updates, "chief_complaint", r.ChiefComplaint)
	setIfPresent(updates, "diagnosis", r.Diagnosis)
	setIfPresent(updates, "treatment", r.Treatment)
	setIfPresent(updates, "notes", r.Notes)
	if r.FollowUpDate != nil {
		updates["follow_up_date"] = r.FollowUpDate
	}
	return updates
}

// UpdateVisit merges partial fields into an existing visit.
func (h *VisitHandler) UpdateVisit(c *gin.Context) {
	var req UpdateVisitRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var visit models.Visit
	if err := h.DB.First(&visit, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Visit not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}

	if updates := req.updates(); len(updates) > 0 {
		if err := h.DB.Model(&visit).Updates(updates).Error; err != nil {
			utils.InternalServerError(c, err)
			return
		}
		if err := h.DB.First(&visit, "id = ?", visit.ID).Error; err != nil {
			utils.InternalServerError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, visit)
}

// DeleteVisit removes a visit.
func (h *VisitHandler) DeleteVisit(c *gin.Context) {
	result := h.DB.Delete(&models.Visit{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.InternalServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Visit not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// patientExists verifies the referenced patient before attaching child
// rows. Answers 400 and returns false when the patient is unknown.
func patientExists(db *gorm.DB, c *gin.Context, patientID string) bool {
	var patient models.Patient
	if err := db.Select("id").First(&patient, "id = ?", patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.BadRequest(c, "Referenced patient does not exist")
		} else {
			utils.InternalServerError(c, err)
		}
		return false
	}
	return true
}
