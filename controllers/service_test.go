package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"showroom-backend/config"
	"showroom-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupControllerTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{}, &models.AttendanceRecord{}, &models.Car{},
		&models.Lead{}, &models.FollowUp{}, &models.Service{}, &models.Job{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
}

// serviceTestRouter registers the service routes without the auth middleware;
// token handling has its own tests.
func serviceTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/services", CreateService)
	r.GET("/api/services", GetServices)
	r.GET("/api/services/options", GetServiceOptions)
	r.GET("/api/services/:id", GetService)
	r.PUT("/api/services/:id", UpdateService)
	r.DELETE("/api/services/:id", DeleteService)
	r.POST("/api/services/:id/jobs", AddJob)
	r.PUT("/api/services/:id/jobs/:jobId", UpdateJob)
	r.DELETE("/api/services/:id/jobs/:jobId", DeleteJob)
	r.GET("/api/services/:id/invoice", GenerateInvoice)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeService(t *testing.T, w *httptest.ResponseRecorder) models.Service {
	t.Helper()
	var s models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	return s
}

func TestServiceEndpoints_CreateAndFetch(t *testing.T) {
	setupControllerTestDB(t)
	r := serviceTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"customerName":       "Alice",
		"carName":            "Sedan X",
		"registrationNumber": "AB12CD3456",
		"jobs": []gin.H{
			{"type": "Coating", "subType": "Ceramic", "portion": "Front", "rate": "2000"},
			{"type": "PPF", "portion": "Hood", "rate": 3500},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeService(t, w)
	require.Len(t, created.Jobs, 2)
	require.Equal(t, 2000.0, created.Jobs[0].Rate)
	require.False(t, created.FinalStatus)

	w = doJSON(t, r, http.MethodGet, "/api/services/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, created.ID, decodeService(t, w).ID)

	w = doJSON(t, r, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
}

func TestServiceOptions(t *testing.T) {
	setupControllerTestDB(t)
	r := serviceTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/services/options", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		JobTypes           []string            `json:"jobTypes"`
		SubTypeSuggestions map[string][]string `json:"subTypeSuggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.JobTypes, models.JobTypeOutsideWork)
	require.Contains(t, resp.SubTypeSuggestions[models.JobTypeCoating], "Ceramic")
}

func TestServiceEndpoints_ValidationAndDuplicates(t *testing.T) {
	setupControllerTestDB(t)
	r := serviceTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"carName":            "Sedan X",
		"registrationNumber": "AB12CD3456",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"customerName":       "Alice",
		"carName":            "Sedan X",
		"registrationNumber": "AB12CD3456",
		"jobs": []gin.H{
			{"type": "Coating", "portion": "Front", "rate": 2000},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeService(t, w)

	// Same type on the same portion, case-insensitive.
	w = doJSON(t, r, http.MethodPost, "/api/services/"+created.ID.String()+"/jobs", gin.H{
		"type": "Coating", "portion": "front", "rate": 900,
	})
	require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/services/"+created.ID.String()+"/jobs", gin.H{
		"type": "Sunfilm", "portion": "front", "rate": 700,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/services/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceEndpoints_UpdateRecomputesRollup(t *testing.T) {
	setupControllerTestDB(t)
	r := serviceTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"customerName":       "Alice",
		"carName":            "Sedan X",
		"registrationNumber": "AB12CD3456",
		"jobs": []gin.H{
			{"type": "Coating", "portion": "Front", "rate": 2000},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeService(t, w)

	w = doJSON(t, r, http.MethodPut,
		"/api/services/"+created.ID.String()+"/jobs/"+created.Jobs[0].ID.String(),
		gin.H{"status": "Completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/api/services/"+created.ID.String(),
		gin.H{"customerName": "Alice B"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeService(t, w)
	require.True(t, updated.FinalStatus)
	require.Equal(t, "Alice B", updated.CustomerName)
}

func TestServiceEndpoints_DeleteAndNotFound(t *testing.T) {
	setupControllerTestDB(t)
	r := serviceTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"customerName":       "Alice",
		"carName":            "Sedan X",
		"registrationNumber": "AB12CD3456",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeService(t, w)

	w = doJSON(t, r, http.MethodDelete, "/api/services/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/services/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/services/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceEndpoint(t *testing.T) {
	setupControllerTestDB(t)
	r := serviceTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/services", gin.H{
		"customerName":       "Alice Smith",
		"carName":            "Sedan X",
		"registrationNumber": "AB12CD3456",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeService(t, w)

	// No jobs yet: nothing to invoice.
	w = doJSON(t, r, http.MethodGet, "/api/services/"+created.ID.String()+"/invoice", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/services/"+created.ID.String()+"/jobs", gin.H{
		"type": "Coating", "subType": "Ceramic", "portion": "Full Body", "rate": 12000, "status": "Completed",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/services/"+created.ID.String()+"/invoice", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))

	disposition := w.Header().Get("Content-Disposition")
	require.Contains(t, disposition, "Invoice_Alice_Smith_"+created.ID.String()+".pdf")

	require.True(t, strings.HasPrefix(w.Body.String(), "%PDF"), "body is not a PDF")
}
