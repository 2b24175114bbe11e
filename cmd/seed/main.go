package main

import (
	"fmt"
	"log"
	"time"

	"interviewdesk/internal/database"
	"interviewdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("interviewdesk.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM outbox_events")
	db.Exec("DELETE FROM student_bookings")
	db.Exec("DELETE FROM allow_list_entries")
	db.Exec("DELETE FROM public_link_slots")
	db.Exec("DELETE FROM public_links")
	db.Exec("DELETE FROM slots")
	db.Exec("DELETE FROM availability_windows")
	db.Exec("DELETE FROM booking_request_invites")
	db.Exec("DELETE FROM booking_requests")
	db.Exec("DELETE FROM interviewers")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@interviewdesk.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	db.Create(&admin)
	log.Println("Admin created: admin@interviewdesk.io / admin123")

	// ================== INTERVIEWERS ==================
	log.Println("Creating interviewers...")

	interviewerData := []struct {
		name    string
		email   string
		status  domain.InterviewerStatus
		domains []string
	}{
		{"Maya Iskakova", "maya@interviewdesk.io", domain.InterviewerActive, []string{"backend", "system-design"}},
		{"Timur Aliyev", "timur@interviewdesk.io", domain.InterviewerActive, []string{"frontend"}},
		{"Sana Bekova", "sana@interviewdesk.io", domain.InterviewerOnProbation, []string{"backend"}},
	}

	var interviewers []domain.Interviewer
	for i, d := range interviewerData {
		hash, _ := bcrypt.GenerateFromPassword([]byte("interview123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         domain.RoleInterviewer,
			Name:         d.name,
		}
		db.Create(&user)

		iv := domain.Interviewer{
			UserID:   user.ID,
			FullName: d.name,
			Email:    d.email,
			Status:   d.status,
			Domains:  d.domains,
		}
		db.Create(&iv)
		interviewers = append(interviewers, iv)
		log.Printf("Interviewer %d created: %s / interview123", i+1, d.email)
	}

	// ================== BOOKING REQUEST ==================
	log.Println("Creating booking request...")

	date := time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	request := domain.BookingRequest{
		Date:      date,
		DomainTag: "backend",
		Status:    domain.BookingRequestAwaitingAvailability,
	}
	db.Create(&request)
	for _, iv := range interviewers {
		db.Create(&domain.BookingRequestInvite{
			BookingRequestID: request.ID,
			InterviewerID:    iv.ID,
		})
	}

	fmt.Printf("Seed complete: booking request %d on %s, %d interviewers invited\n",
		request.ID, date.Format("2006-01-02"), len(interviewers))
}
