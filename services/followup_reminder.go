// services/followup_reminder.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"showroom-backend/models"
	"showroom-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// FollowUpReminderService sends a courtesy message to leads whose follow-up
// falls due today, and records every attempt.
type FollowUpReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewFollowUpReminderService(db *gorm.DB) *FollowUpReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &FollowUpReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *FollowUpReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Follow-up reminder scheduler started")
}

func (s *FollowUpReminderService) SendDailyReminders() {
	log.Println("Starting daily follow-up processing...")

	today := utils.BeginningOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var followUps []models.FollowUp
	if err := s.db.Where("date >= ? AND date < ?", today, tomorrow).Find(&followUps).Error; err != nil {
		log.Printf("Failed to fetch due follow-ups: %v", err)
		return
	}

	for _, f := range followUps {
		s.processFollowUp(f)
	}

	log.Println("Daily follow-up processing completed")
}

func (s *FollowUpReminderService) processFollowUp(f models.FollowUp) {
	var lead models.Lead
	if err := s.db.First(&lead, "id = ?", f.LeadID).Error; err != nil {
		log.Printf("Follow-up %s: lead lookup failed: %v", f.ID, err)
		return
	}

	// Converted or closed leads keep their history but get no messages.
	if lead.FinalStamp != "" || lead.PhoneNumber == "" {
		return
	}

	message := fmt.Sprintf(
		"Hi %s, this is a friendly follow-up from our showroom: %s. Reply or call us any time!",
		lead.CustomerName, f.Description)

	channel := "sms"
	var to string
	if strings.HasPrefix(lead.PhoneNumber, "+") {
		to = "whatsapp:" + lead.PhoneNumber
		channel = "whatsapp"
	} else {
		to = lead.PhoneNumber
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send follow-up to %s: %v", lead.PhoneNumber, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Follow-up sent to %s, SID: %s", lead.PhoneNumber, *resp.Sid)
	} else {
		log.Printf("Follow-up sent to %s, but no SID returned", lead.PhoneNumber)
	}

	followUpLog := models.FollowUpLog{
		LeadID:       lead.ID,
		FollowUpID:   f.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&followUpLog).Error; err != nil {
		log.Printf("Failed to log follow-up for lead %s: %v", lead.ID, err)
	}
}
