package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message send statuses
const (
	SendStatusSent   = "sent"
	SendStatusFailed = "failed"
)

// Message records a single outreach attempt. Immutable once written.
type Message struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	ChurchID     uuid.UUID `gorm:"type:uuid;index;not null"`
	VisitorID    uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null"`
	TemplateName string    `gorm:"type:varchar(40)"`
	Content      string    `gorm:"type:text"` // post-merge text
	SendStatus   string    `gorm:"type:varchar(20)"`
	ErrorMessage string    `gorm:"type:text"`
	Channel      string    `gorm:"type:varchar(20)"` // whatsapp, sms
	SentAt       time.Time
	gorm.Model
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
