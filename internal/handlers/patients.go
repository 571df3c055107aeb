package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-server/internal/models"
	"clinic-server/internal/utils"
)

// PatientHandler handles patient record requests.
type PatientHandler struct {
	DB *gorm.DB
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{DB: db}
}

// CreatePatientRequest represents the request body for creating a patient.
type CreatePatientRequest struct {
	FirstName   string           `json:"firstName" binding:"required"`
	LastName    string           `json:"lastName" binding:"required"`
	IDNumber    string           `json:"idNumber" binding:"required"`
	DateOfBirth *models.DateOnly `json:"dateOfBirth"`
	Gender      string           `json:"gender"`
	Phone       string           `json:"phone" binding:"required"`
	Email       string           `json:"email" binding:"omitempty,email"`
	Address     string           `json:"address"`
	Allergies   string           `json:"allergies"`
	Notes       string           `json:"notes"`
}

// CreatePatient handles creating a new patient record.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IDNumber:    req.IDNumber,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Allergies:   req.Allergies,
		Notes:       req.Notes,
	}

	if err := h.DB.Create(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "A patient with this ID number already exists")
			return
		}
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatients lists all patients, newest first.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	var patients []models.Patient
	if err := h.DB.Order("created_at desc").Find(&patients).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetPatientByID fetches a single patient.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, patient)
}

// UpdatePatientRequest represents a partial patient update. Only fields
// present in the payload are applied.
type UpdatePatientRequest struct {
	FirstName   *string          `json:"firstName"`
	LastName    *string          `json:"lastName"`
	IDNumber    *string          `json:"idNumber"`
	DateOfBirth *models.DateOnly `json:"dateOfBirth"`
	Gender      *string          `json:"gender"`
	Phone       *string          `json:"phone"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	Address     *string          `json:"address"`
	Allergies   *string          `json:"allergies"`
	Notes       *string          `json:"notes"`
}

func (r *UpdatePatientRequest) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setIfPresent(updates, "first_name", r.FirstName)
	setIfPresent(updates, "last_name", r.LastName)
	setIfPresent(updates, "id_number", r.IDNumber)
	if r.DateOfBirth != nil {
		updates["date_of_birth"] = r.DateOfBirth
	}
	setIfPresent(updates, "gender", r.Gender)
	setIfPresent(updates, "phone", r.Phone)
	setIfPresent(updates, "email", r.Email)
	setIfPresent(updates, "address", r.Address)
	setIfPresent(updates, "allergies", r.Allergies)
	setIfPresent(updates, "notes", r.Notes)
	return updates
}

// UpdatePatient merges partial fields into an existing patient.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var req UpdatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}

	if updates := req.updates(); len(updates) > 0 {
		if err := h.DB.Model(&patient).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				utils.Conflict(c, "A patient with this ID number already exists")
				return
			}
			utils.InternalServerError(c, err)
			return
		}
		if err := h.DB.First(&patient, "id = ?", patient.ID).Error; err != nil {
			utils.InternalServerError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, patient)
}

// DeletePatient removes a patient. Deletion is restricted while
// dependent visits, prescriptions, invoices or appointments still
// reference the patient, so no orphaned rows can appear.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			utils.InternalServerError(c, err)
		}
		return
	}

	dependents, err := h.countDependents(id)
	if err != nil {
		utils.InternalServerError(c, err)
		return
	}
	if dependents > 0 {
		utils.Conflict(c, "Patient has related records and cannot be deleted")
		return
	}

	if err := h.DB.Delete(&patient).Error; err != nil {
		utils.InternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PatientHandler) countDependents(patientID string) (int64, error) {
	var total int64
	for _, model := range []interface{}{
		&models.Visit{},
		&models.Prescription{},
		&models.Invoice{},
		&models.Appointment{},
	} {
		var count int64
		if err := h.DB.Model(model).Where("patient_id = ?", patientID).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

// setIfPresent adds a column update when the field was present in the
// request payload.
func setIfPresent(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}
