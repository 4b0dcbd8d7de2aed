package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Car struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ManufacturerName string    `gorm:"not null" json:"manufacturerName"`
	CarName          string    `gorm:"not null" json:"carName"`
	OwnershipNumber  int       `gorm:"uniqueIndex;not null" json:"ownershipNumber"`
	Model            int       `json:"model"` // model year
	RegistrationNo   string    `json:"registrationNumber"`
	Kilometer        int       `json:"kilometer"`
	Colour           string    `json:"colour"`
	AskingPrice      float64   `gorm:"type:decimal(10,2);default:0.0" json:"askingPrice"`
	Sold             bool      `gorm:"default:false" json:"sold"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Car) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
