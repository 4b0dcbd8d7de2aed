package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecord marks a staff member absent (or otherwise noted) on a date.
type AttendanceRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"index;not null" json:"username"`
	Date     time.Time `gorm:"not null" json:"date"`
	Reason   string    `gorm:"type:text;not null" json:"reason"`

	gorm.Model `json:"-"`
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
