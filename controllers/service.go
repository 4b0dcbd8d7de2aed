// controllers/service.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"showroom-backend/config"
	"showroom-backend/models"
	"showroom-backend/services"
	"showroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func serviceManager() *services.ServiceManager {
	return services.NewServiceManager(config.DB)
}

// respondServiceError translates domain errors from the service manager into
// HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case services.IsDuplicate(err):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
	case errors.Is(err, services.ErrEmptyInvoice):
		utils.RespondWithError(c, http.StatusBadRequest, "No jobs to generate invoice")
	default:
		log.Printf("service operation failed: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}

// GetServiceOptions returns the job type catalogue and the usual sub-type
// choices, for the intake form's dropdowns
func GetServiceOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"jobTypes": []string{
			models.JobTypeCoating,
			models.JobTypePPF,
			models.JobTypeSunfilm,
			models.JobTypeOutsideWork,
		},
		"subTypeSuggestions": models.SubTypeSuggestions,
	})
}

// CreateService creates a service together with its initial jobs
func CreateService(c *gin.Context) {
	var draft services.ServiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := serviceManager().CreateService(draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices lists all services with their jobs, most recent first
func GetServices(c *gin.Context) {
	list, err := serviceManager().ListServices()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetService retrieves one service aggregate
func GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := serviceManager().GetService(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService saves the service header fields and recomputes the
// completion rollup
func UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var patch services.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := serviceManager().UpdateServiceDetails(id, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service and all its jobs
func DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	if err := serviceManager().DeleteService(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// AddJob appends a job to an existing service
func AddJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var draft services.JobDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	job, err := serviceManager().AddJob(id, draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob patches a job within a service
func UpdateJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	var patch services.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	job, err := serviceManager().UpdateJob(id, jobID, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob removes a job from a service
func DeleteJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	if err := serviceManager().DeleteJob(id, jobID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
