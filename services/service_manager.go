// services/service_manager.go
package services

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	"showroom-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ServiceManager loads Service aggregates (a service plus its jobs) and gates
// every mutation through the workshop's booking rules: required header
// fields, valid job types, non-negative rates, and at most one Coating/PPF
// job per vehicle portion within a service. Every write returns the
// authoritative post-write record instead of trusting caller-side state.
type ServiceManager struct {
	db *gorm.DB
}

func NewServiceManager(db *gorm.DB) *ServiceManager {
	return &ServiceManager{db: db}
}

// ServiceDraft carries the fields for a new service plus its initial jobs.
type ServiceDraft struct {
	CustomerName   string     `json:"customerName"`
	CarName        string     `json:"carName"`
	RegistrationNo string     `json:"registrationNumber"`
	Phone          string     `json:"phone"`
	StaffName      string     `json:"staffName"`
	Jobs           []JobDraft `json:"jobs"`
}

// JobDraft is a job as submitted by the client. Rate is accepted as either a
// JSON number or a numeric string (the intake form sends both).
type JobDraft struct {
	Type    string `json:"type"`
	SubType string `json:"subType"`
	Portion string `json:"portion"`
	Rate    any    `json:"rate"`
	Status  string `json:"status"`
}

// ServicePatch updates service header fields. Nil fields are left untouched.
type ServicePatch struct {
	CustomerName   *string `json:"customerName"`
	CarName        *string `json:"carName"`
	RegistrationNo *string `json:"registrationNumber"`
	Phone          *string `json:"phone"`
	StaffName      *string `json:"staffName"`
}

// JobPatch updates job fields. Nil fields are left untouched; Rate is
// applied only when present.
type JobPatch struct {
	Type    *string `json:"type"`
	SubType *string `json:"subType"`
	Portion *string `json:"portion"`
	Rate    any     `json:"rate"`
	Status  *string `json:"status"`
}

// parseRate converts a draft rate (number or numeric string) to a
// non-negative float.
func parseRate(v any) (float64, error) {
	var f float64
	var err error
	switch n := v.(type) {
	case nil:
		return 0, errors.New("missing")
	case float64:
		f = n
	case int:
		f = float64(n)
	case json.Number:
		f, err = n.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, errors.New("not a number")
	}
	if err != nil {
		return 0, errors.New("not a number")
	}
	if f < 0 {
		return 0, errors.New("must not be negative")
	}
	return f, nil
}

func (m *ServiceManager) validateJobDraft(d JobDraft) (models.Job, error) {
	var job models.Job

	if !models.ValidJobType(d.Type) {
		return job, validationErr("job type", "must be one of Coating, PPF, Sunfilm, Outside Work")
	}
	if strings.TrimSpace(d.Portion) == "" {
		return job, validationErr("portion", "required")
	}
	rate, err := parseRate(d.Rate)
	if err != nil {
		return job, validationErr("rate", err.Error())
	}

	status := d.Status
	if status == "" {
		status = models.JobStatusPending
	}
	if status != models.JobStatusPending && status != models.JobStatusCompleted {
		return job, validationErr("status", "must be Pending or Completed")
	}

	job = models.Job{
		Type:    d.Type,
		SubType: d.SubType,
		Portion: d.Portion,
		Rate:    rate,
		Status:  status,
	}
	return job, nil
}

// portionTaken reports whether a portion-restricted job of the given type
// already occupies the portion. Comparison is case-insensitive.
func portionTaken(jobs []models.Job, jobType, portion string, exclude uuid.UUID) bool {
	if !models.PortionRestricted(jobType) {
		return false
	}
	for _, j := range jobs {
		if j.ID != exclude && j.Type == jobType && strings.EqualFold(j.Portion, portion) {
			return true
		}
	}
	return false
}

func allCompleted(jobs []models.Job) bool {
	for _, j := range jobs {
		if j.Status != models.JobStatusCompleted {
			return false
		}
	}
	return true
}

// CreateService validates the draft and its jobs, then writes the service
// and every job in a single transaction. FinalStatus always starts false.
func (m *ServiceManager) CreateService(draft ServiceDraft) (*models.Service, error) {
	if strings.TrimSpace(draft.CustomerName) == "" {
		return nil, validationErr("customer name", "required")
	}
	if strings.TrimSpace(draft.CarName) == "" {
		return nil, validationErr("car name", "required")
	}
	if strings.TrimSpace(draft.RegistrationNo) == "" {
		return nil, validationErr("registration number", "required")
	}

	jobs := make([]models.Job, 0, len(draft.Jobs))
	for _, d := range draft.Jobs {
		job, err := m.validateJobDraft(d)
		if err != nil {
			return nil, err
		}
		if portionTaken(jobs, job.Type, job.Portion, uuid.Nil) {
			return nil, duplicateErr("only one %s per portion allowed", job.Type)
		}
		jobs = append(jobs, job)
	}

	service := models.Service{
		CustomerName:   draft.CustomerName,
		CarName:        draft.CarName,
		RegistrationNo: draft.RegistrationNo,
		Phone:          draft.Phone,
		StaffName:      draft.StaffName,
		FinalStatus:    false,
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&service).Error; err != nil {
			return err
		}
		for i := range jobs {
			jobs[i].ServiceID = service.ID
			if err := tx.Create(&jobs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.GetService(service.ID)
}

// GetService loads one service with its jobs in creation order.
func (m *ServiceManager) GetService(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := m.db.Preload("Jobs", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// ListServices returns every service with its jobs, most recently created
// first. A zero creation timestamp sorts last.
func (m *ServiceManager) ListServices() ([]models.Service, error) {
	var list []models.Service
	err := m.db.Preload("Jobs", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Find(&list).Error
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// AddJob validates the draft against the persisted job set and appends the
// job. The service's final status is not recomputed here; that happens when
// the service details are saved.
func (m *ServiceManager) AddJob(serviceID uuid.UUID, draft JobDraft) (*models.Job, error) {
	service, err := m.GetService(serviceID)
	if err != nil {
		return nil, err
	}

	job, err := m.validateJobDraft(draft)
	if err != nil {
		return nil, err
	}
	if portionTaken(service.Jobs, job.Type, job.Portion, uuid.Nil) {
		return nil, duplicateErr("only one %s per portion allowed", job.Type)
	}

	job.ServiceID = service.ID
	if err := m.db.Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob applies a patch to an existing job, re-checking the portion rule
// against the job's effective type and portion.
func (m *ServiceManager) UpdateJob(serviceID, jobID uuid.UUID, patch JobPatch) (*models.Job, error) {
	service, err := m.GetService(serviceID)
	if err != nil {
		return nil, err
	}

	var job *models.Job
	for i := range service.Jobs {
		if service.Jobs[i].ID == jobID {
			job = &service.Jobs[i]
			break
		}
	}
	if job == nil {
		return nil, ErrNotFound
	}

	if patch.Type != nil {
		if !models.ValidJobType(*patch.Type) {
			return nil, validationErr("job type", "must be one of Coating, PPF, Sunfilm, Outside Work")
		}
		job.Type = *patch.Type
	}
	if patch.SubType != nil {
		job.SubType = *patch.SubType
	}
	if patch.Portion != nil {
		if strings.TrimSpace(*patch.Portion) == "" {
			return nil, validationErr("portion", "required")
		}
		job.Portion = *patch.Portion
	}
	if patch.Rate != nil {
		rate, err := parseRate(patch.Rate)
		if err != nil {
			return nil, validationErr("rate", err.Error())
		}
		job.Rate = rate
	}
	if patch.Status != nil {
		if *patch.Status != models.JobStatusPending && *patch.Status != models.JobStatusCompleted {
			return nil, validationErr("status", "must be Pending or Completed")
		}
		job.Status = *patch.Status
	}

	if portionTaken(service.Jobs, job.Type, job.Portion, job.ID) {
		return nil, duplicateErr("only one %s per portion allowed", job.Type)
	}

	if err := m.db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a single job. No rollup recompute.
func (m *ServiceManager) DeleteJob(serviceID, jobID uuid.UUID) error {
	result := m.db.Where("service_id = ? AND id = ?", serviceID, jobID).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteService removes the service and all its jobs in one transaction.
func (m *ServiceManager) DeleteService(serviceID uuid.UUID) error {
	service, err := m.GetService(serviceID)
	if err != nil {
		return err
	}
	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.Job{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, "id = ?", service.ID).Error
	})
}

// UpdateServiceDetails applies header-field changes, then recomputes and
// persists the completion rollup: FinalStatus is true when every job is
// Completed. An empty job list counts as all-completed, matching how
// historical records were flagged.
func (m *ServiceManager) UpdateServiceDetails(serviceID uuid.UUID, patch ServicePatch) (*models.Service, error) {
	service, err := m.GetService(serviceID)
	if err != nil {
		return nil, err
	}

	if patch.CustomerName != nil {
		if strings.TrimSpace(*patch.CustomerName) == "" {
			return nil, validationErr("customer name", "required")
		}
		service.CustomerName = *patch.CustomerName
	}
	if patch.CarName != nil {
		if strings.TrimSpace(*patch.CarName) == "" {
			return nil, validationErr("car name", "required")
		}
		service.CarName = *patch.CarName
	}
	if patch.RegistrationNo != nil {
		if strings.TrimSpace(*patch.RegistrationNo) == "" {
			return nil, validationErr("registration number", "required")
		}
		service.RegistrationNo = *patch.RegistrationNo
	}
	if patch.Phone != nil {
		service.Phone = *patch.Phone
	}
	if patch.StaffName != nil {
		service.StaffName = *patch.StaffName
	}

	service.FinalStatus = allCompleted(service.Jobs)

	if err := m.db.Omit(clause.Associations).Save(service).Error; err != nil {
		return nil, err
	}
	return m.GetService(service.ID)
}
