package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"glowdesk/handlers"
	"glowdesk/middleware"
	"glowdesk/utils"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterOnboardingRoutes registers the signup wizard endpoints. These
// require authentication but not a resolved business, since the business
// is created partway through the flow.
func RegisterOnboardingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/onboarding")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.GET("/status", hb.OnboardingStatusHandler)
		api.POST("/email", hb.OnboardingEmailHandler)
		api.POST("/email/confirm", hb.ConfirmEmailHandler)
		api.POST("/phone", hb.OnboardingPhoneHandler)
		api.POST("/phone/verify", hb.VerifyPhoneHandler)
		api.POST("/personal", hb.PersonalDetailsHandler)
		api.POST("/business", hb.OnboardingBizHandler)
	}
}

// RegisterCalendarRoutes registers the day and week view endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.Use(middleware.BusinessMiddleware(hb.BusinessRepo))
		api.GET("/day", hb.DayViewHandler)
		api.GET("/week", hb.WeekViewHandler)
	}
}

// RegisterAppointmentRoutes registers appointment CRUD endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.Use(middleware.BusinessMiddleware(hb.BusinessRepo))
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.PATCH("/:id/status", hb.AppointmentStatusHandler)
		api.DELETE("/:id", hb.DeleteAppointmentHandler)
	}
}

// RegisterCampaignRoutes registers marketing campaign endpoints.
func RegisterCampaignRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/campaigns")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.Use(middleware.BusinessMiddleware(hb.BusinessRepo))
		api.POST("/boost", hb.SaveBoostHandler)
		api.GET("", hb.ListCampaignsHandler)
		api.GET("/:id", hb.GetCampaignHandler)
		api.POST("/:id/deactivate", hb.DeactivateCampaignHandler)
		api.DELETE("/:id", hb.ArchiveCampaignHandler)
		api.POST("/:id/test-email", hb.CampaignTestEmailHandler)
	}
}

// RegisterClientRoutes registers client record endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.Use(middleware.BusinessMiddleware(hb.BusinessRepo))
		api.POST("", hb.CreateClientHandler)
		api.GET("", hb.ListClientsHandler)
		api.PUT("/:id", hb.UpdateClientHandler)
		api.DELETE("/:id", hb.DeleteClientHandler)
		api.POST("/import", hb.ImportClientsHandler)
	}
}

// RegisterBusinessRoutes registers the settings surface endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.ProfileRepo))
		api.Use(middleware.BusinessMiddleware(hb.BusinessRepo))
		api.GET("", hb.GetBusinessHandler)
		api.PUT("", hb.UpdateBusinessHandler)

		api.POST("/staff", hb.CreateStaffHandler)
		api.GET("/staff", hb.ListStaffHandler)
		api.PUT("/staff/:id", hb.UpdateStaffHandler)
		api.DELETE("/staff/:id", hb.DeleteStaffHandler)

		api.POST("/services", hb.CreateServiceHandler)
		api.GET("/services", hb.ListServicesHandler)
		api.PUT("/services/:id", hb.UpdateServiceHandler)
		api.DELETE("/services/:id", hb.DeleteServiceHandler)

		api.PUT("/hours", hb.SetHoursHandler)
		api.GET("/hours", hb.ListHoursHandler)

		api.POST("/bank-accounts", hb.AddBankAccountHandler)
		api.GET("/bank-accounts", hb.ListBankAccountsHandler)
		api.DELETE("/bank-accounts/:id", hb.DeleteBankAccountHandler)

		api.POST("/booking-links", hb.CreateBookingLinkHandler)
		api.GET("/booking-links", hb.ListBookingLinksHandler)
		api.PATCH("/booking-links/:id", hb.SetBookingLinkActiveHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterOnboardingRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterCampaignRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterHealthRoute(r)
}
