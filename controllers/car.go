// controllers/car.go
package controllers

import (
	"errors"
	"net/http"

	"showroom-backend/config"
	"showroom-backend/models"
	"showroom-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateCarInput defines the expected JSON structure for adding a car
type CreateCarInput struct {
	ManufacturerName string  `json:"manufacturerName" binding:"required"`
	CarName          string  `json:"carName" binding:"required"`
	OwnershipNumber  int     `json:"ownershipNumber" binding:"required"`
	Model            int     `json:"model"`
	RegistrationNo   string  `json:"registrationNumber"`
	Kilometer        int     `json:"kilometer" binding:"min=0"`
	Colour           string  `json:"colour"`
	AskingPrice      float64 `json:"askingPrice" binding:"min=0"`
	Sold             bool    `json:"sold"`
}

// UpdateCarInput defines the expected JSON structure for updating a car
type UpdateCarInput struct {
	ManufacturerName *string  `json:"manufacturerName"`
	CarName          *string  `json:"carName"`
	OwnershipNumber  *int     `json:"ownershipNumber"`
	Model            *int     `json:"model"`
	RegistrationNo   *string  `json:"registrationNumber"`
	Kilometer        *int     `json:"kilometer"`
	Colour           *string  `json:"colour"`
	AskingPrice      *float64 `json:"askingPrice"`
	Sold             *bool    `json:"sold"`
}

var carSortColumns = map[string]string{
	"ownership_number": "ownership_number",
	"kilometer":        "kilometer",
	"asking_price":     "asking_price",
}

// ownershipNumberTaken checks the uniqueness of an ownership number,
// ignoring the car being edited.
func ownershipNumberTaken(ownershipNumber int, excludeID uuid.UUID) (bool, error) {
	var existing models.Car
	err := config.DB.Where("ownership_number = ? AND id <> ?", ownershipNumber, excludeID).
		First(&existing).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// CreateCar adds a car to the inventory
func CreateCar(c *gin.Context) {
	var input CreateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	taken, err := ownershipNumberTaken(input.OwnershipNumber, uuid.Nil)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if taken {
		utils.RespondWithError(c, http.StatusConflict, "Ownership number must be unique")
		return
	}

	car := models.Car{
		ManufacturerName: input.ManufacturerName,
		CarName:          input.CarName,
		OwnershipNumber:  input.OwnershipNumber,
		Model:            input.Model,
		RegistrationNo:   input.RegistrationNo,
		Kilometer:        input.Kilometer,
		Colour:           input.Colour,
		AskingPrice:      input.AskingPrice,
		Sold:             input.Sold,
	}

	if err := config.DB.Create(&car).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add car")
		return
	}

	c.JSON(http.StatusCreated, car)
}

// GetCars lists the inventory, optionally sorted
func GetCars(c *gin.Context) {
	query := config.DB.Model(&models.Car{})

	if column, ok := carSortColumns[c.Query("sort")]; ok {
		query = query.Order(column + " ASC")
	}

	var cars []models.Car
	if err := query.Find(&cars).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve cars")
		return
	}

	c.JSON(http.StatusOK, cars)
}

// GetCar retrieves a single car by ID
func GetCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid car ID format")
		return
	}

	var car models.Car
	if err := config.DB.First(&car, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, car)
}

// UpdateCar updates an existing car
func UpdateCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid car ID format")
		return
	}

	var input UpdateCarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var car models.Car
	if err := config.DB.First(&car, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.OwnershipNumber != nil && *input.OwnershipNumber != car.OwnershipNumber {
		taken, err := ownershipNumberTaken(*input.OwnershipNumber, car.ID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		if taken {
			utils.RespondWithError(c, http.StatusConflict, "Ownership number must be unique")
			return
		}
		car.OwnershipNumber = *input.OwnershipNumber
	}
	if input.ManufacturerName != nil {
		car.ManufacturerName = *input.ManufacturerName
	}
	if input.CarName != nil {
		car.CarName = *input.CarName
	}
	if input.Model != nil {
		car.Model = *input.Model
	}
	if input.RegistrationNo != nil {
		car.RegistrationNo = *input.RegistrationNo
	}
	if input.Kilometer != nil {
		car.Kilometer = *input.Kilometer
	}
	if input.Colour != nil {
		car.Colour = *input.Colour
	}
	if input.AskingPrice != nil {
		car.AskingPrice = *input.AskingPrice
	}
	if input.Sold != nil {
		car.Sold = *input.Sold
	}

	if err := config.DB.Save(&car).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update car")
		return
	}

	c.JSON(http.StatusOK, car)
}

// DeleteCar removes a car from the inventory
func DeleteCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid car ID format")
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.Car{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete car")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Car not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}
