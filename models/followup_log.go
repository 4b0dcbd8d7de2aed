// models/followup_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowUpLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	LeadID       uuid.UUID `gorm:"type:uuid;index;not null"`
	FollowUpID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Message      string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage string    `gorm:"type:text"`
	Channel      string    `gorm:"type:varchar(20)"` // whatsapp, sms
	SentAt       time.Time

	gorm.Model
}

func (f *FollowUpLog) BeforeCreate(tx *gorm.DB) (err error) {
	f.ID = uuid.New()
	return
}
