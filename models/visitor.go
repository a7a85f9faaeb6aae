package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visitor categories
const (
	CategoryChristian    = "christian"
	CategoryNonChristian = "non_christian"
	CategoryPreacher     = "preacher"
	CategoryOther        = "other"
)

// Visitor follow-up statuses
const (
	VisitorStatusAwaiting      = "awaiting"
	VisitorStatusAwaitingVisit = "awaiting_visit"
	VisitorStatusVisited       = "visited"
	VisitorStatusNewMember     = "new_member"
	VisitorStatusPending       = "pending"
)

type Visitor struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	ChurchID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name               string `gorm:"not null"`
	Phone              string `gorm:"not null;uniqueIndex:idx_church_phone,priority:2"`
	Category           string `gorm:"type:varchar(20)"`
	Status             string `gorm:"type:varchar(20);default:'awaiting'"`
	OriginCongregation string
	AccompaniedBy      string
	Notes              string

	Visits   []Visit   `gorm:"foreignKey:VisitorID"`
	Messages []Message `gorm:"foreignKey:VisitorID"`

	gorm.Model
}

func (v *Visitor) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
