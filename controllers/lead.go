// controllers/lead.go
package controllers

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"showroom-backend/config"
	"showroom-backend/models"
	"showroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUpInput defines one follow-up entry for a lead
type FollowUpInput struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Description string `json:"description"`
}

// CreateLeadInput defines the expected JSON structure for creating a lead
type CreateLeadInput struct {
	CustomerName   string          `json:"customerName" binding:"required"`
	PhoneNumber    string          `json:"phoneNumber"`
	Source         string          `json:"source"`
	Status         string          `json:"status" binding:"omitempty,oneof=hot warm cold"`
	AssignedPerson string          `json:"assignedPerson"`
	CreatedBy      string          `json:"createdBy"`
	FinalStamp     string          `json:"finalStamp"`
	FollowUps      []FollowUpInput `json:"followUps"`
}

// UpdateLeadInput defines the expected JSON structure for updating a lead
type UpdateLeadInput struct {
	CustomerName   *string `json:"customerName"`
	PhoneNumber    *string `json:"phoneNumber"`
	Source         *string `json:"source"`
	Status         *string `json:"status" binding:"omitempty,oneof=hot warm cold"`
	AssignedPerson *string `json:"assignedPerson"`
	CreatedBy      *string `json:"createdBy"`
	FinalStamp     *string `json:"finalStamp"`
}

// ageBucket classifies a lead by days since creation.
func ageBucket(createdAt time.Time) string {
	days := utils.DaysBetween(createdAt, time.Now())
	switch {
	case days <= 2:
		return "new"
	case days <= 7:
		return "recent"
	default:
		return "stale"
	}
}

// CreateLead creates a lead together with its initial follow-ups. Follow-ups
// with a blank description are skipped.
func CreateLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status := input.Status
	if status == "" {
		status = models.LeadStatusHot
	}

	followUps := make([]models.FollowUp, 0, len(input.FollowUps))
	for _, f := range input.FollowUps {
		if strings.TrimSpace(f.Description) == "" {
			continue
		}
		date, err := time.Parse("2006-01-02", f.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Follow-up date must be YYYY-MM-DD")
			return
		}
		followUps = append(followUps, models.FollowUp{Date: date, Description: f.Description})
	}

	lead := models.Lead{
		CustomerName:   input.CustomerName,
		PhoneNumber:    input.PhoneNumber,
		Source:         input.Source,
		Status:         status,
		AssignedPerson: input.AssignedPerson,
		CreatedBy:      input.CreatedBy,
		FinalStamp:     input.FinalStamp,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lead).Error; err != nil {
			return err
		}
		for i := range followUps {
			followUps[i].LeadID = lead.ID
			if err := tx.Create(&followUps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	lead.FollowUps = followUps
	lead.AgeBucket = ageBucket(lead.CreatedAt)
	c.JSON(http.StatusCreated, lead)
}

// GetLeads retrieves all leads with their follow-ups, most recent first
func GetLeads(c *gin.Context) {
	var leads []models.Lead
	if err := config.DB.Preload("FollowUps", func(db *gorm.DB) *gorm.DB {
		return db.Order("date ASC")
	}).Find(&leads).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve leads")
		return
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	for i := range leads {
		leads[i].AgeBucket = ageBucket(leads[i].CreatedAt)
	}

	c.JSON(http.StatusOK, leads)
}

// UpdateLead updates a lead's fields
func UpdateLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var input UpdateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var lead models.Lead
	if err := config.DB.Preload("FollowUps").First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CustomerName != nil {
		lead.CustomerName = *input.CustomerName
	}
	if input.PhoneNumber != nil {
		lead.PhoneNumber = *input.PhoneNumber
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.AssignedPerson != nil {
		lead.AssignedPerson = *input.AssignedPerson
	}
	if input.CreatedBy != nil {
		lead.CreatedBy = *input.CreatedBy
	}
	if input.FinalStamp != nil {
		lead.FinalStamp = *input.FinalStamp
	}

	if err := config.DB.Omit("FollowUps").Save(&lead).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	lead.AgeBucket = ageBucket(lead.CreatedAt)
	c.JSON(http.StatusOK, lead)
}

// DeleteLead removes a lead and its follow-ups
func DeleteLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lead_id = ?", lead.ID).Delete(&models.FollowUp{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Lead{}, "id = ?", lead.ID).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete lead")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}

// AddFollowUp appends a follow-up to an existing lead
func AddFollowUp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var input FollowUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if strings.TrimSpace(input.Description) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Description is required")
		return
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	var lead models.Lead
	if err := config.DB.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	followUp := models.FollowUp{
		LeadID:      lead.ID,
		Date:        date,
		Description: input.Description,
	}
	if err := config.DB.Create(&followUp).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add follow-up")
		return
	}

	c.JSON(http.StatusCreated, followUp)
}
