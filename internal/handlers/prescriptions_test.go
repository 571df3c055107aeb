package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPrescription(t *testing.T, router *gin.Engine, session *http.Cookie, patientID string, extra gin.H) map[string]interface{} {
	t.Helper()

	body := gin.H{
		"patientId":  patientID,
		"medication": "Cetirizine",
		"dosage":     "10mg",
		"frequency":  "once daily",
	}
	for k, v := range extra {
		body[k] = v
	}

	w := doJSON(t, router, http.MethodPost, "/api/prescriptions", body, session)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)
}

func TestPrescriptionDefaultsPrescribedDate(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	before := time.Now().Add(-time.Minute)
	prescription := createPrescription(t, router, session, patientID, nil)

	prescribedDate, err := time.Parse(time.RFC3339, prescription["prescribedDate"].(string))
	require.NoError(t, err)
	assert.True(t, prescribedDate.After(before), "prescribedDate should default to now")
}

func TestPrescriptionRequiresFields(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	w := doJSON(t, router, http.MethodPost, "/api/prescriptions", gin.H{
		"patientId":  patientID,
		"medication": "Cetirizine",
	}, session)
	require.Equal(t, http.StatusBadRequest, w.Code)
	details := decodeBody(t, w)["details"].(map[string]interface{})
	assert.Contains(t, details, "Dosage")
	assert.Contains(t, details, "Frequency")
}

func TestPrescriptionRequiresExistingPatient(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/prescriptions", gin.H{
		"patientId":  "00000000-0000-0000-0000-000000000000",
		"medication": "Cetirizine",
		"dosage":     "10mg",
		"frequency":  "once daily",
	}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrescriptionListFilterAndOrdering(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientA := createPatient(t, router, session, "111111111")
	patientB := createPatient(t, router, session, "222222222")

	older := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	createPrescription(t, router, session, patientA, gin.H{"prescribedDate": older.Format(time.RFC3339), "medication": "older"})
	createPrescription(t, router, session, patientA, gin.H{"prescribedDate": newer.Format(time.RFC3339), "medication": "newer"})
	createPrescription(t, router, session, patientB, gin.H{"medication": "other patient"})

	w := doJSON(t, router, http.MethodGet, "/api/prescriptions?patientId="+patientA, nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	prescriptions := decodeList(t, w)
	require.Len(t, prescriptions, 2)
	assert.Equal(t, "newer", prescriptions[0]["medication"])
	assert.Equal(t, "older", prescriptions[1]["medication"])

	w = doJSON(t, router, http.MethodGet, "/api/prescriptions", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 3)
}

func TestPrescriptionPartialUpdate(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)
	patientID := createPatient(t, router, session, "123456789")

	prescription := createPrescription(t, router, session, patientID, gin.H{"instructions": "take with food"})
	id := prescription["id"].(string)

	w := doJSON(t, router, http.MethodPatch, "/api/prescriptions/"+id, gin.H{
		"dosage":   "20mg",
		"duration": "14 days",
	}, session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeBody(t, w)
	assert.Equal(t, "20mg", updated["dosage"])
	assert.Equal(t, "14 days", updated["duration"])
	assert.Equal(t, "Cetirizine", updated["medication"])
	assert.Equal(t, "take with food", updated["instructions"])
}

func TestPrescriptionGetUnknownID(t *testing.T) {
	router, _ := newTestServer(t)
	session := loginAsAdmin(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/prescriptions/00000000-0000-0000-0000-000000000000", nil, session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
