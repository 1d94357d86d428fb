package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andrewcurate/metronic-dashboard/internal/application/auth"
	"github.com/andrewcurate/metronic-dashboard/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AccountUC     *usecase.AccountUseCase
	AppointmentUC *usecase.AppointmentUseCase
	PatientUC     *usecase.PatientUseCase
	DashboardUC   *usecase.DashboardUseCase
	AgendaPDF     AgendaPDFGenerator
	JWTSecret     string
	AppName       string
	Production    bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Production)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cuenta del usuario autenticado
	accountHandler := NewAccountHandler(deps.AccountUC)
	protected.Get("/user-management/account", accountHandler.Get)

	// Appointments (protegido)
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC, deps.AgendaPDF, deps.AppName, deps.Production)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/export/pdf", appointmentHandler.ExportPDF)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Patients (protegido)
	patients := protected.Group("/patient-management/patients")
	patientHandler := NewPatientHandler(deps.PatientUC, deps.Production)
	patients.Post("/", patientHandler.Create)
	patients.Get("/", patientHandler.List)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Put("/:id", patientHandler.Update)
	patients.Delete("/:id", patientHandler.Delete)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Production)
	dashboard.Get("/patient-stats", dashboardHandler.PatientStats)
}
