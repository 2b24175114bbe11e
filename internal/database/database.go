package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/outbox"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the engine schema. The partial unique indexes on
// student_bookings are part of the claim invariant, so migration is not
// optional in any environment.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Interviewer{},
		&domain.BookingRequest{},
		&domain.BookingRequestInvite{},
		&domain.AvailabilityWindow{},
		&domain.Slot{},
		&domain.PublicLink{},
		&domain.PublicLinkSlot{},
		&domain.AllowListEntry{},
		&domain.StudentBooking{},
		&outbox.Event{},
	)
}
