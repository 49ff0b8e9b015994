package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"glowdesk/config"
	"glowdesk/cron"
	"glowdesk/database"
	appointmentRepoPkg "glowdesk/database/repository/appointment"
	businessRepoPkg "glowdesk/database/repository/business"
	campaignRepoPkg "glowdesk/database/repository/campaign"
	clientRepoPkg "glowdesk/database/repository/client"
	profileRepoPkg "glowdesk/database/repository/profile"
	serviceRepoPkg "glowdesk/database/repository/service"
	staffRepoPkg "glowdesk/database/repository/staff"
	"glowdesk/handlers"
	"glowdesk/middleware"
	"glowdesk/routes"
	"glowdesk/services/appointment"
	"glowdesk/services/auth"
	"glowdesk/services/business"
	"glowdesk/services/calendar"
	"glowdesk/services/campaign"
	"glowdesk/services/client"
	"glowdesk/services/notification"
	"glowdesk/services/onboarding"
	"glowdesk/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	campaignRepo := campaignRepoPkg.NewMongoCampaignRepo()

	// task queue client for async work.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	// services.
	authService := &auth.DefaultAuthService{
		Repo: profileRepo,
	}
	onboardingService := &onboarding.DefaultOnboardingService{
		ProfileRepo:  profileRepo,
		BusinessRepo: businessRepo,
		Cache:        utils.GetCacheClient(),
	}
	calendarService := &calendar.DefaultCalendarService{
		AppointmentRepo: appointmentRepo,
		StaffRepo:       staffRepo,
		ClientRepo:      clientRepo,
		ServiceRepo:     serviceRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		AppointmentRepo: appointmentRepo,
		ClientRepo:      clientRepo,
		StaffRepo:       staffRepo,
		ServiceRepo:     serviceRepo,
	}
	campaignService := &campaign.DefaultCampaignService{
		CampaignRepo:    campaignRepo,
		ClientRepo:      clientRepo,
		AppointmentRepo: appointmentRepo,
		Tasks:           taskClient,
	}
	clientService := &client.DefaultClientService{
		Repo: clientRepo,
	}
	businessService := &business.DefaultBusinessService{
		BusinessRepo: businessRepo,
		StaffRepo:    staffRepo,
		ServiceRepo:  serviceRepo,
	}

	testEmailSender, err := notification.NewHTTPTestEmailSender(config.AppConfig.TestEmailEndpoint)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize test email sender: %v", err)
	}

	// background workers.
	cron.InitCampaignWorker(testEmailSender, campaignService)
	scheduler := cron.InitExpiryScheduler()
	defer scheduler.Stop()

	// handlers.
	authHandler := handlers.NewAuthHandler(authService)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	clientHandler := handlers.NewClientHandler(clientService)
	businessHandler := handlers.NewBusinessHandler(businessService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfileRepo:  profileRepo,
		BusinessRepo: businessRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		MeHandler:       authHandler.MeHandler,

		// Onboarding endpoints.
		OnboardingStatusHandler: onboardingHandler.StatusHandler,
		OnboardingEmailHandler:  onboardingHandler.EmailHandler,
		ConfirmEmailHandler:     onboardingHandler.ConfirmEmailHandler,
		OnboardingPhoneHandler:  onboardingHandler.PhoneHandler,
		VerifyPhoneHandler:      onboardingHandler.VerifyPhoneHandler,
		PersonalDetailsHandler:  onboardingHandler.PersonalDetailsHandler,
		OnboardingBizHandler:    onboardingHandler.BusinessHandler,

		// Calendar endpoints.
		DayViewHandler:  calendarHandler.DayViewHandler,
		WeekViewHandler: calendarHandler.WeekViewHandler,

		// Appointment endpoints.
		CreateAppointmentHandler: appointmentHandler.CreateHandler,
		ListAppointmentsHandler:  appointmentHandler.ListHandler,
		AppointmentStatusHandler: appointmentHandler.StatusHandler,
		DeleteAppointmentHandler: appointmentHandler.DeleteHandler,

		// Campaign endpoints.
		SaveBoostHandler:          campaignHandler.SaveBoostHandler,
		GetCampaignHandler:        campaignHandler.GetHandler,
		ListCampaignsHandler:      campaignHandler.ListHandler,
		DeactivateCampaignHandler: campaignHandler.DeactivateHandler,
		ArchiveCampaignHandler:    campaignHandler.ArchiveHandler,
		CampaignTestEmailHandler:  campaignHandler.TestEmailHandler,

		// Client endpoints.
		CreateClientHandler:  clientHandler.CreateHandler,
		ListClientsHandler:   clientHandler.ListHandler,
		UpdateClientHandler:  clientHandler.UpdateHandler,
		DeleteClientHandler:  clientHandler.DeleteHandler,
		ImportClientsHandler: clientHandler.ImportHandler,

		// Business settings endpoints.
		GetBusinessHandler:          businessHandler.GetHandler,
		UpdateBusinessHandler:       businessHandler.UpdateHandler,
		CreateStaffHandler:          businessHandler.CreateStaffHandler,
		ListStaffHandler:            businessHandler.ListStaffHandler,
		UpdateStaffHandler:          businessHandler.UpdateStaffHandler,
		DeleteStaffHandler:          businessHandler.DeleteStaffHandler,
		CreateServiceHandler:        businessHandler.CreateServiceHandler,
		ListServicesHandler:         businessHandler.ListServicesHandler,
		UpdateServiceHandler:        businessHandler.UpdateServiceHandler,
		DeleteServiceHandler:        businessHandler.DeleteServiceHandler,
		SetHoursHandler:             businessHandler.SetHoursHandler,
		ListHoursHandler:            businessHandler.ListHoursHandler,
		AddBankAccountHandler:       businessHandler.AddBankAccountHandler,
		ListBankAccountsHandler:     businessHandler.ListBankAccountsHandler,
		DeleteBankAccountHandler:    businessHandler.DeleteBankAccountHandler,
		CreateBookingLinkHandler:    businessHandler.CreateBookingLinkHandler,
		ListBookingLinksHandler:     businessHandler.ListBookingLinksHandler,
		SetBookingLinkActiveHandler: businessHandler.SetBookingLinkActiveHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
