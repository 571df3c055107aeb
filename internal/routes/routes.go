package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clinic-server/internal/config"
	"clinic-server/internal/handlers"
	"clinic-server/internal/middleware"
)

// SetupRoutes configures the application routes.
//
// Public endpoints are the contact form, appointment booking and the
// chat widget, plus the auth bootstrap flow. Everything else sits
// behind the session gate.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db)
	visitHandler := handlers.NewVisitHandler(db)
	prescriptionHandler := handlers.NewPrescriptionHandler(db)
	invoiceHandler := handlers.NewInvoiceHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	chatHandler := handlers.NewChatHandler()

	requireAuth := middleware.RequireAuth(db, cfg)

	public := router.Group("/api")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/setup", authHandler.Setup)
			authRoutes.GET("/needs-setup", authHandler.NeedsSetup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
		}
		public.GET("/login", authHandler.LoginRedirect)
		public.GET("/logout", authHandler.LogoutRedirect)

		public.POST("/contact", contactHandler.CreateContactMessage)
		public.POST("/appointments", appointmentHandler.CreateAppointment)
		public.POST("/chat", chatHandler.Reply)
	}

	private := router.Group("/api")
	private.Use(requireAuth)
	{
		private.GET("/auth/user", authHandler.CurrentUser)

		private.GET("/contact", contactHandler.GetContactMessages)

		patientRoutes := private.Group("/patients")
		{
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.PATCH("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", patientHandler.DeletePatient)
		}

		visitRoutes := private.Group("/visits")
		{
			visitRoutes.GET("", visitHandler.GetVisits)
			visitRoutes.GET("/:id", visitHandler.GetVisitByID)
			visitRoutes.POST("", visitHandler.CreateVisit)
			visitRoutes.PATCH("/:id", visitHandler.UpdateVisit)
			visitRoutes.DELETE("/:id", visitHandler.DeleteVisit)
		}

		prescriptionRoutes := private.Group("/prescriptions")
		{
			prescriptionRoutes.GET("", prescriptionHandler.GetPrescriptions)
			prescriptionRoutes.GET("/:id", prescriptionHandler.GetPrescriptionByID)
			prescriptionRoutes.POST("", prescriptionHandler.CreatePrescription)
			prescriptionRoutes.PATCH("/:id", prescriptionHandler.UpdatePrescription)
			prescriptionRoutes.DELETE("/:id", prescriptionHandler.DeletePrescription)
		}

		invoiceRoutes := private.Group("/invoices")
		{
			invoiceRoutes.GET("", invoiceHandler.GetInvoices)
			invoiceRoutes.GET("/:id", invoiceHandler.GetInvoiceByID)
			invoiceRoutes.POST("", invoiceHandler.CreateInvoice)
			invoiceRoutes.PATCH("/:id", invoiceHandler.UpdateInvoice)
			invoiceRoutes.DELETE("/:id", invoiceHandler.DeleteInvoice)
		}

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		private.GET("/settings", settingsHandler.GetSettings)
		private.PUT("/settings", settingsHandler.UpdateSettings)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
