// controllers/attendance.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"showroom-backend/config"
	"showroom-backend/models"
	"showroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceInput defines the expected JSON structure for attendance records
type AttendanceInput struct {
	Username string `json:"username" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason   string `json:"reason" binding:"required"`
}

// CreateAttendance records an absence entry
func CreateAttendance(c *gin.Context) {
	var input AttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	record := models.AttendanceRecord{
		Username: input.Username,
		Date:     date,
		Reason:   input.Reason,
	}

	if err := config.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create attendance record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetAttendance retrieves all attendance records, sorted by date or username
func GetAttendance(c *gin.Context) {
	query := config.DB.Model(&models.AttendanceRecord{})

	switch c.Query("sort") {
	case "username":
		query = query.Order("username ASC")
	default:
		query = query.Order("date ASC")
	}

	var records []models.AttendanceRecord
	if err := query.Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve attendance records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// UpdateAttendance updates an existing attendance record
func UpdateAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendance ID format")
		return
	}

	var input AttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}

	var record models.AttendanceRecord
	if err := config.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Attendance record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	record.Username = input.Username
	record.Date = date
	record.Reason = input.Reason

	if err := config.DB.Save(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update attendance record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteAttendance removes an attendance record
func DeleteAttendance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendance ID format")
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.AttendanceRecord{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete attendance record")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Attendance record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Attendance record deleted successfully"})
}
