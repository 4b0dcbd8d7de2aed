package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead statuses as captured by the sales team.
const (
	LeadStatusHot  = "hot"
	LeadStatusWarm = "warm"
	LeadStatusCold = "cold"
)

type Lead struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName   string    `gorm:"not null" json:"customerName"`
	PhoneNumber    string    `json:"phoneNumber"`
	Source         string    `json:"source"`
	Status         string    `gorm:"type:varchar(20);default:'hot'" json:"status"`
	AssignedPerson string    `json:"assignedPerson"`
	CreatedBy      string    `json:"createdBy"`
	FinalStamp     string    `json:"finalStamp"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"-"`

	FollowUps []FollowUp `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"followUps"`

	// AgeBucket is derived at read time from the lead's age: "new" (<= 2
	// days), "recent" (<= 7 days), "stale" otherwise.
	AgeBucket string `gorm:"-" json:"ageBucket,omitempty"`
}

type FollowUp struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LeadID      uuid.UUID `gorm:"type:uuid;index;not null" json:"leadId"`
	Date        time.Time `gorm:"not null" json:"date"`
	Description string    `gorm:"type:text;not null" json:"description"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}

func (f *FollowUp) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
