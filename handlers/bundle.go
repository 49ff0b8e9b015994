package handlers

import (
	businessRepoPkg "glowdesk/database/repository/business"
	profileRepoPkg "glowdesk/database/repository/profile"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ProfileRepo  profileRepoPkg.ProfileRepository
	BusinessRepo businessRepoPkg.BusinessRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Onboarding endpoints
	OnboardingStatusHandler gin.HandlerFunc
	OnboardingEmailHandler  gin.HandlerFunc
	ConfirmEmailHandler     gin.HandlerFunc
	OnboardingPhoneHandler  gin.HandlerFunc
	VerifyPhoneHandler      gin.HandlerFunc
	PersonalDetailsHandler  gin.HandlerFunc
	OnboardingBizHandler    gin.HandlerFunc

	// Calendar endpoints
	DayViewHandler  gin.HandlerFunc
	WeekViewHandler gin.HandlerFunc

	// Appointment endpoints
	CreateAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
	AppointmentStatusHandler gin.HandlerFunc
	DeleteAppointmentHandler gin.HandlerFunc

	// Campaign endpoints
	SaveBoostHandler          gin.HandlerFunc
	GetCampaignHandler        gin.HandlerFunc
	ListCampaignsHandler      gin.HandlerFunc
	DeactivateCampaignHandler gin.HandlerFunc
	ArchiveCampaignHandler    gin.HandlerFunc
	CampaignTestEmailHandler  gin.HandlerFunc

	// Client endpoints
	CreateClientHandler  gin.HandlerFunc
	ListClientsHandler   gin.HandlerFunc
	UpdateClientHandler  gin.HandlerFunc
	DeleteClientHandler  gin.HandlerFunc
	ImportClientsHandler gin.HandlerFunc

	// Business settings endpoints
	GetBusinessHandler          gin.HandlerFunc
	UpdateBusinessHandler       gin.HandlerFunc
	CreateStaffHandler          gin.HandlerFunc
	ListStaffHandler            gin.HandlerFunc
	UpdateStaffHandler          gin.HandlerFunc
	DeleteStaffHandler          gin.HandlerFunc
	CreateServiceHandler        gin.HandlerFunc
	ListServicesHandler         gin.HandlerFunc
	UpdateServiceHandler        gin.HandlerFunc
	DeleteServiceHandler        gin.HandlerFunc
	SetHoursHandler             gin.HandlerFunc
	ListHoursHandler            gin.HandlerFunc
	AddBankAccountHandler       gin.HandlerFunc
	ListBankAccountsHandler     gin.HandlerFunc
	DeleteBankAccountHandler    gin.HandlerFunc
	CreateBookingLinkHandler    gin.HandlerFunc
	ListBookingLinksHandler     gin.HandlerFunc
	SetBookingLinkActiveHandler gin.HandlerFunc
}
