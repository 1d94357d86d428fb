package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/andrewcurate/metronic-dashboard/internal/application/auth"
	"github.com/andrewcurate/metronic-dashboard/internal/application/usecase"
	infrapdf "github.com/andrewcurate/metronic-dashboard/internal/infrastructure/pdf"
	"github.com/andrewcurate/metronic-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/andrewcurate/metronic-dashboard/internal/interfaces/http"
	"github.com/andrewcurate/metronic-dashboard/pkg/config"
	"github.com/andrewcurate/metronic-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	// Único pool del proceso: se crea aquí y se cierra en el shutdown
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.Config{
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		JWTExpMinutes: cfg.JWT.Expiration,
		DefaultStatus: cfg.Auth.DefaultStatus,
	})
	accountUC := usecase.NewAccountUseCase(userRepo)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo)
	patientUC := usecase.NewPatientUseCase(patientRepo)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo)
	agendaPDF := infrapdf.NewAgendaPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Metronic Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AccountUC:     accountUC,
		AppointmentUC: appointmentUC,
		PatientUC:     patientUC,
		DashboardUC:   dashboardUC,
		AgendaPDF:     agendaPDF,
		JWTSecret:     cfg.JWT.Secret,
		AppName:       cfg.App.Name,
		Production:    cfg.App.IsProduction(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
