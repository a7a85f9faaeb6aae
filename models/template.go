package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageTemplate holds an outreach message body with {placeholder} tokens
// merged per recipient at send time.
type MessageTemplate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	ChurchID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name     string    `gorm:"type:varchar(40);not null"` // welcome, visit_reminder, followup, ...
	Body     string    `gorm:"type:text;not null"`
	IsActive bool      `gorm:"default:true"`
	gorm.Model
}

func (t *MessageTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
