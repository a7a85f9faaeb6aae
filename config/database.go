package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
}

// EnsureSchedulingConstraints creates the authoritative no-double-booking
// guard: at most one scheduled or rescheduled visit per visitor per calendar
// date. Client-side validation runs against a snapshot of existing visits, so
// two near-simultaneous scheduling attempts can both pass it; this index is
// what actually closes that race.
func EnsureSchedulingConstraints() error {
	return DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_visits_visitor_visit_date_active
		ON visits (visitor_id, visit_date)
		WHERE status IN ('scheduled', 'rescheduled') AND deleted_at IS NULL
	`).Error
}
