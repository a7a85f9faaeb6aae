// services/message_service.go
package services

import (
	"log"
	"os"
	"time"

	"visitacare-backend/messaging"
	"visitacare-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type MessageService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewMessageService(db *gorm.DB) *MessageService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &MessageService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartFollowUpScheduler sends follow-up messages for completed visits every
// day at 9 AM.
func (s *MessageService) StartFollowUpScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendDailyFollowUps); err != nil {
		log.Printf("Failed to register follow-up job: %v", err)
		return
	}

	c.Start()
	log.Println("Follow-up scheduler started")
}

// SendDailyFollowUps finds completed visits flagged for follow-up that have
// not been messaged yet and sends each visitor the church's followup template.
func (s *MessageService) SendDailyFollowUps() {
	log.Println("Starting daily follow-up processing...")

	var churches []models.Church
	if err := s.db.Find(&churches).Error; err != nil {
		log.Printf("Failed to fetch churches: %v", err)
		return
	}

	for _, church := range churches {
		if !church.WhatsAppNotifications {
			continue
		}
		s.processChurchFollowUps(church.ID)
	}

	log.Println("Daily follow-up processing completed")
}

func (s *MessageService) processChurchFollowUps(churchID uuid.UUID) {
	var template models.MessageTemplate
	if err := s.db.Where("church_id = ? AND name = ? AND is_active = true", churchID, "followup").
		First(&template).Error; err != nil {
		log.Printf("Church %s: no active followup template: %v", churchID, err)
		return
	}

	// Completed visits flagged for follow-up whose visitor has not received a
	// followup message since the visit was completed.
	var visits []models.Visit
	err := s.db.Raw(`
		SELECT v.* FROM visits v
		WHERE v.church_id = ?
		AND v.status = 'completed'
		AND v.requires_follow_up = true
		AND v.deleted_at IS NULL
		AND NOT EXISTS (
			SELECT 1 FROM messages m
			WHERE m.visitor_id = v.visitor_id
			AND m.template_name = 'followup'
			AND m.sent_at > v.updated_at
		)
	`, churchID).Scan(&visits).Error
	if err != nil {
		log.Printf("Church %s: failed to load follow-up visits: %v", churchID, err)
		return
	}

	for _, visit := range visits {
		var visitor models.Visitor
		if err := s.db.Where("church_id = ? AND id = ?", churchID, visit.VisitorID).
			First(&visitor).Error; err != nil {
			log.Printf("Church %s: visitor %s not found: %v", churchID, visit.VisitorID, err)
			continue
		}
		s.Send(churchID, visit.SchedulerID, visitor, template)
	}
}

// Send merges the template with the visitor's context, delivers the result
// over WhatsApp (or SMS when no WhatsApp sender is configured) and records
// the attempt. A Message row is written regardless of delivery outcome; the
// send status on the row tells the caller what happened.
func (s *MessageService) Send(churchID, userID uuid.UUID, visitor models.Visitor, template models.MessageTemplate) models.Message {
	content := messaging.Merge(template.Body, messaging.VisitorContext(visitor))

	channel := "sms"
	var to, from string

	// Visitor phones are stored digits only; Twilio wants E.164.
	if whatsappNumber := os.Getenv("TWILIO_WHATSAPP_NUMBER"); whatsappNumber != "" {
		to = "whatsapp:+" + visitor.Phone
		from = "whatsapp:" + whatsappNumber
		channel = "whatsapp"
	} else {
		to = "+" + visitor.Phone
		from = os.Getenv("TWILIO_PHONE_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(content)

	resp, err := s.client.Api.CreateMessage(params)
	status := models.SendStatusSent
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send message to %s: %v", visitor.Phone, err)
		status = models.SendStatusFailed
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", visitor.Phone, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", visitor.Phone)
	}

	message := models.Message{
		ChurchID:     churchID,
		VisitorID:    visitor.ID,
		UserID:       userID,
		TemplateName: template.Name,
		Content:      content,
		SendStatus:   status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&message).Error; err != nil {
		log.Printf("Failed to log message for visitor %s: %v", visitor.ID, err)
	}

	return message
}
