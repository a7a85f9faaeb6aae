package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visit types
const (
	VisitTypeInPerson = "in_person"
	VisitTypePhone    = "phone"
	VisitTypeWhatsApp = "whatsapp"
	VisitTypeOther    = "other"
)

// Visit statuses
const (
	VisitStatusScheduled   = "scheduled"
	VisitStatusRescheduled = "rescheduled"
	VisitStatusCompleted   = "completed"
	VisitStatusCancelled   = "cancelled"
)

type Visit struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	ChurchID    uuid.UUID `gorm:"type:uuid;index;not null"`
	VisitorID   uuid.UUID `gorm:"type:uuid;index;not null"`
	SchedulerID uuid.UUID `gorm:"type:uuid;index;not null"`

	ScheduledAt time.Time `gorm:"not null"`
	// VisitDate is ScheduledAt truncated to its calendar date. It backs the
	// partial unique index that enforces one active visit per visitor per day.
	VisitDate time.Time `gorm:"type:date;not null;index"`

	Type             string `gorm:"type:varchar(20);default:'in_person'"`
	Status           string `gorm:"type:varchar(20);default:'scheduled'"`
	Notes            string
	RequiresFollowUp bool `gorm:"default:false"`

	gorm.Model
}

func (v *Visit) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.VisitDate = truncateToDate(v.ScheduledAt)
	return
}

// Keep VisitDate in sync when a visit is rescheduled.
func (v *Visit) BeforeSave(tx *gorm.DB) (err error) {
	v.VisitDate = truncateToDate(v.ScheduledAt)
	return
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
