package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job types offered by the workshop. Coating and PPF are applied to a single
// vehicle portion and may not be booked twice for the same portion within one
// service; Sunfilm and Outside Work carry no such restriction.
const (
	JobTypeCoating     = "Coating"
	JobTypePPF         = "PPF"
	JobTypeSunfilm     = "Sunfilm"
	JobTypeOutsideWork = "Outside Work"
)

const (
	JobStatusPending   = "Pending"
	JobStatusCompleted = "Completed"
)

// SubTypeSuggestions lists the usual sub-type choices per job type. Sub types
// remain free text; these only feed the client's autocomplete.
var SubTypeSuggestions = map[string][]string{
	JobTypeCoating: {"Ceramic", "Graphene", "Teflon"},
	JobTypePPF:     {"Glossy", "Matte"},
}

// Service is a work order for a customer's vehicle, grouping the jobs
// performed on it. FinalStatus is a cached rollup: true once every job is
// completed, recomputed when the service details are saved.
type Service struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName   string    `gorm:"not null" json:"customerName"`
	CarName        string    `gorm:"not null" json:"carName"`
	RegistrationNo string    `gorm:"not null" json:"registrationNumber"`
	Phone          string    `json:"phone"`
	StaffName      string    `json:"staffName"`
	FinalStatus    bool      `gorm:"default:false" json:"finalStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"-"`

	Jobs []Job `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"jobs"`
}

// Job is a single billable task within a Service, tied to a vehicle portion.
type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	SubType   string    `json:"subType"`
	Portion   string    `gorm:"not null" json:"portion"`
	Rate      float64   `gorm:"type:decimal(10,2);not null" json:"rate"`
	Status    string    `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

func (j *Job) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return
}

// ValidJobType reports whether t is one of the supported job types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeCoating, JobTypePPF, JobTypeSunfilm, JobTypeOutsideWork:
		return true
	}
	return false
}

// PortionRestricted reports whether the job type is limited to one job per
// vehicle portion within a service.
func PortionRestricted(t string) bool {
	return t == JobTypeCoating || t == JobTypePPF
}
