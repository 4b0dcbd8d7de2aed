package models

import (
	"time"

	"showroom-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`

	Role        string     `gorm:"type:varchar(30)" json:"role"` // e.g. 'manager', 'technician', 'sales'
	Salary      float64    `gorm:"type:decimal(10,2);default:0.0" json:"salary"`
	JoiningDate *time.Time `json:"joiningDate"`
	Active      bool       `gorm:"default:true" json:"active"`

	LastLogin *time.Time `json:"lastLogin"`

	gorm.Model `json:"-"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
