package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-server/internal/models"
	"clinic-server/internal/utils"
)

// AppointmentHandler handles appointment booking requests.
type AppointmentHandler struct {
	DB *gorm.DB
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{DB: db}
}

// CreateAppointmentRequest represents the request body for booking an
// appointment. PatientID is optional: public bookings arrive before a
// patient record exists.
type CreateAppointmentRequest struct {
	PatientID       *string                  `json:"patientId" binding:"omitempty,uuid"`
	PatientName     string                   `json:"patientName" binding:"required"`
	PatientPhone    string                   `json:"patientPhone" binding:"required"`
	PatientEmail    string                   `json:"patientEmail" binding:"omitempty,email"`
	AppointmentDate models.DateOnly          `json:"appointmentDate" binding:"required"`
	AppointmentTime string                   `json:"appointmentTime" binding:"required"`
	Reason          string                   `json:"reason"`
	Status          models.AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled confirmed completed cancelled"`
	Notes           string                   `json:"notes"`
}

// CreateAppointment books an appointment. This endpoint is public:
// the marketing site posts bookings without a session.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.PatientID != nil && !patientExists(h.DB, c, *req.PatientID) {
		return
	}

	status := req.Status
	if status == "" {
		status = models.AppointmentScheduled
	}

	appointment := models.Appointment{
		PatientID:       req.PatientID,
		PatientName:     req.PatientName,
		PatientPhone:    req.PatientPhone,
		PatientEmail:    req.PatientEmail,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		Status:          status,
		Notes:           req.Notes,
	}

	if err := h.DB.Create(&appointment).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments lists appointments newest first by appointment date.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.DB.Order("appointment_date desc").Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// GetAppointmentByID fetches a single appointment.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointmentRequest represents a partial appointment update.
type UpdateAppointmentRequest struct {
	PatientID       *string                   `json:"patientId" binding:"omitempty,uuid"`
	PatientName     *string                   `json:"patientName"`
	PatientPhone    *string                   `json:"patientPhone"`
	PatientEmail    *string                   `json:"patientEmail" binding:"omitempty,email"`
	AppointmentDate *models.DateOnly          `json:"appointmentDate"`
	AppointmentTime *string                   `json:"appointmentTime"`
	Reason          *string                   `json:"reason"`
	Status          *models.AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled confirmed completed cancelled"`
	Notes           *string                   `json:"notes"`
}

func (r *UpdateAppointmentRequest) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setIfPresent(updates, "patient_id", r.PatientID)
	setIfPresent(updates, "patient_name", r.PatientName)
	setIfPresent(updates, "patient_phone", r.PatientPhone)
	setIfPresent(updates, "patient_email", r.PatientEmail)
	if r.AppointmentDate != nil {
		updates["appointment_date"] = *r.AppointmentDate
	}
	setIfPresent(updates, "appointment_time", r.AppointmentTime)
	setIfPresent(updates, "reason", r.Reason)
	if r.Status != nil {
		updates["status"] = *r.Status
	}
	setIfPresent(updates, "notes", r.Notes)
	return updates
}

// UpdateAppointment merges partial fields into an existing appointment.
// Unlike creation this requires an authenticated session.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var req UpdateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if req.PatientID != nil && !patientExists(h.DB, c, *req.PatientID) {
		return
	}

	var appointment models.Appointment
	if err := h.DB.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}

	if updates := req.updates(); len(updates) > 0 {
		if err := h.DB.Model(&appointment).Updates(updates).Error; err != nil {
			utils.InternalServerError(c, err)
			return
		}
		if err := h.DB.First(&appointment, "id = ?", appointment.ID).Error; err != nil {
			utils.InternalServerError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment removes an appointment.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	result := h.DB.Delete(&models.Appointment{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.InternalServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Appointment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
