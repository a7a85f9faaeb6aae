package models

import (
	"github.com/google/uuid"
)

type Church struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name                  string    `gorm:"not null"`
	Address               string
	WhatsAppNotifications bool `gorm:"default:true"`

	Users            []User            `gorm:"foreignKey:ChurchID"`
	Visitors         []Visitor         `gorm:"foreignKey:ChurchID"`
	Visits           []Visit           `gorm:"foreignKey:ChurchID"`
	MessageTemplates []MessageTemplate `gorm:"foreignKey:ChurchID"`
}
