package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"interviewdesk/internal/config"
	"interviewdesk/internal/database"
	"interviewdesk/internal/lock"
	"interviewdesk/internal/meet"
	"interviewdesk/internal/middleware"
	"interviewdesk/internal/modules/auth"
	"interviewdesk/internal/modules/availability"
	"interviewdesk/internal/modules/bookingrequest"
	"interviewdesk/internal/modules/claim"
	"interviewdesk/internal/modules/interviewer"
	"interviewdesk/internal/modules/publiclink"
	"interviewdesk/internal/outbox"
	jwtsvc "interviewdesk/internal/pkg/jwt"
	"interviewdesk/internal/repository"
)

func main() {
	cfg := config.MustLoad()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	interviewerRepo := repository.NewInterviewerRepository(db)
	requestRepo := repository.NewBookingRequestRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	linkRepo := repository.NewPublicLinkRepository(db)
	bookingRepo := repository.NewStudentBookingRepository(db)
	outboxRepo := outbox.NewRepository(db)

	var locker lock.Locker
	if cfg.RedisAddr != "" {
		redisLock, err := lock.NewRedisLock(cfg.RedisAddr)
		if err != nil {
			log.Fatal(err)
		}
		defer redisLock.Close()
		locker = redisLock
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	interviewerService := interviewer.NewService(interviewerRepo, userRepo)
	interviewerHandler := interviewer.NewHandler(interviewerService)

	availabilityService := availability.NewService(requestRepo, availabilityRepo, interviewerRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	requestService := bookingrequest.NewService(
		requestRepo,
		availabilityRepo,
		slotRepo,
		interviewerRepo,
		time.Duration(cfg.SlotDurationMinutes)*time.Minute,
	)
	requestHandler := bookingrequest.NewHandler(requestService)

	linkService := publiclink.NewService(linkRepo, requestRepo, slotRepo)
	linkHandler := publiclink.NewHandler(linkService)

	claimService := claim.NewService(linkRepo, requestRepo, bookingRepo, locker)
	claimHandler := claim.NewHandler(claimService)

	// The in-process dispatcher covers single-node deployments; the outbox
	// worker binary replaces it when effects run in a separate process.
	var notifier outbox.Notifier = outbox.LogNotifier{}
	if cfg.NotifyWebhookURL != "" {
		notifier = outbox.NewWebhookNotifier(cfg.NotifyWebhookURL)
	}
	var meetLinker outbox.MeetLinker
	if mc, err := meet.NewClient(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleTokenJSON); err == nil {
		meetLinker = mc
	} else {
		log.Printf("meet links disabled: %v", err)
	}
	dispatcher := outbox.NewDispatcher(outboxRepo, notifier, meetLinker, bookingRepo)
	go func() {
		if err := dispatcher.Run(context.Background(), cfg.OutboxInterval); err != nil && err != context.Canceled {
			log.Printf("outbox stopped: %v", err)
		}
	}()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public: login plus the allow-list gated student surface
		authHandler.RegisterPublicRoutes(v1)
		linkHandler.RegisterPublicRoutes(v1)
		claimHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)

			interviewerGroup := protected.Group("/")
			interviewerGroup.Use(middleware.InterviewerOnly())
			{
				availabilityHandler.RegisterInterviewerRoutes(interviewerGroup)
			}

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				interviewerHandler.RegisterAdminRoutes(admin)
				requestHandler.RegisterAdminRoutes(admin)
				availabilityHandler.RegisterAdminRoutes(admin)
				linkHandler.RegisterAdminRoutes(admin)
				claimHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
