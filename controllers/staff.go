// controllers/staff.go
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

// CreateStaffInput defines the expected JSON structure for creating a staff member
type CreateStaffInput struct {
	Username    string  `json:"username" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Role        string  `json:"role"`
	Salary      float64 `json:"salary" binding:"min=0"`
	JoiningDate string  `json:"joiningDate" binding:"required"` // YYYY-MM-DD
	Password    string  `json:"password" binding:"required"`
}

// UpdateStaffInput defines the expected JSON structure for updating a staff member
type UpdateStaffInput struct {
	Username    *string  `json:"username"`
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Role        *string  `json:"role"`
	Salary      *float64 `json:"salary"`
	JoiningDate *string  `json:"joiningDate"`
	Active      *bool    `json:"active"`
	Password    *string  `json:"password"`
}

var staffSortColumns = map[string]string{
	"username":     "username",
	"name":         "name",
	"salary":       "salary",
	"joining_date": "joining_date",
}

// CreateStaff creates a new staff member with a unique username
func CreateStaff(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone number must be exactly 10 digits")
		return
	}
	if !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	joining, err := time.Parse("2006-01-02", input.JoiningDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Joining date must be YYYY-MM-DD")
		return
	}

	// Check unique username
	var existing models.User
	if err := config.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Username already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	user := models.User{
		Username:    input.Username,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Role:        input.Role,
		Salary:      input.Salary,
		JoiningDate: &joining,
		Active:      true,
		Password:    input.Password, // Hashed in BeforeCreate hook
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff member")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetStaff retrieves all staff members, optionally sorted
func GetStaff(c *gin.Context) {
	query := config.DB.Model(&models.User{})

	if column, ok := staffSortColumns[c.Query("sort")]; ok {
		query = query.Order(column + " ASC")
	} else {
		query = query.Order("username ASC")
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetStaffMember retrieves a single staff member by ID
func GetStaffMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateStaff updates an existing staff member
func UpdateStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Username != nil && *input.Username != user.Username {
		var existing models.User
		if err := config.DB.Where("username = ? AND id <> ?", *input.Username, user.ID).
			First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Username already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		user.Username = *input.Username
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		if !utils.ValidateEmail(*input.Email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		user.Email = *input.Email
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Phone number must be exactly 10 digits")
			return
		}
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Salary != nil {
		user.Salary = *input.Salary
	}
	if input.JoiningDate != nil {
		joining, err := time.Parse("2006-01-02", *input.JoiningDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Joining date must be YYYY-MM-DD")
			return
		}
		user.JoiningDate = &joining
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff member")
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteStaff removes a staff member
func DeleteStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff member")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
