package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewcurate/metronic-dashboard/internal/application/usecase"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
	apphttp "github.com/andrewcurate/metronic-dashboard/internal/interfaces/http"
)

// errStore simula una caída del store con detalle interno (host incluido),
// el tipo de mensaje que nunca debe llegar al cliente en producción.
var errStore = errors.New("connect: conexión rechazada host=10.0.0.5")

type failingPatientRepo struct{}

func (failingPatientRepo) Create(*entity.Patient) error             { return errStore }
func (failingPatientRepo) GetByID(string) (*entity.Patient, error)  { return nil, errStore }
func (failingPatientRepo) GetByMRN(string) (*entity.Patient, error) { return nil, errStore }
func (failingPatientRepo) List(int, int) ([]*entity.Patient, error) { return nil, errStore }
func (failingPatientRepo) Update(*entity.Patient) error             { return errStore }
func (failingPatientRepo) Delete(string) error                      { return errStore }

type failingAppointmentRepo struct{}

func (failingAppointmentRepo) Create(*entity.Appointment) error             { return errStore }
func (failingAppointmentRepo) GetByID(string) (*entity.Appointment, error)  { return nil, errStore }
func (failingAppointmentRepo) List(int, int) ([]*entity.Appointment, error) { return nil, errStore }
func (failingAppointmentRepo) ListFrom(time.Time, int) ([]*entity.Appointment, error) {
	return nil, errStore
}
func (failingAppointmentRepo) Update(*entity.Appointment) error { return errStore }
func (failingAppointmentRepo) Delete(string) error              { return errStore }

type failingStatsRepo struct{}

func (failingStatsRepo) MonthlyNewPatients(context.Context, int) ([]repository.MonthlyPatientCount, error) {
	return nil, errStore
}

// buildFailingApp monta el router completo sobre repos que siempre fallan.
func buildFailingApp(t *testing.T, production bool) *fiber.App {
	t.Helper()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AccountUC:     usecase.NewAccountUseCase(newMemUserRepo(nil)),
		AppointmentUC: usecase.NewAppointmentUseCase(failingAppointmentRepo{}),
		PatientUC:     usecase.NewPatientUseCase(failingPatientRepo{}),
		DashboardUC:   usecase.NewDashboardUseCase(failingStatsRepo{}),
		JWTSecret:     testJWTSecret,
		AppName:       "metronic-dashboard-test",
		Production:    production,
	})
	return app
}

func getProtected(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", bearerToken(t, testExpMin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// En producción un fallo del store responde 500 con mensaje genérico, sin
// exponer el detalle interno del error.
func TestFalloDeStore_EnProduccion_NoExponeDetalle(t *testing.T) {
	app := buildFailingApp(t, true)

	for _, path := range []string{
		"/api/patient-management/patients/",
		"/api/patient-management/patients/p-1",
		"/api/appointments/",
		"/api/appointments/a-1",
		"/api/dashboard/patient-stats",
	} {
		t.Run(path, func(t *testing.T) {
			status, body := getProtected(t, app, path)
			assert.Equal(t, http.StatusInternalServerError, status)
			assert.Contains(t, body, "error interno")
			assert.NotContains(t, body, "10.0.0.5", "el detalle del store no debe llegar al cliente")
			assert.NotContains(t, body, "conexión rechazada")
		})
	}
}

// Fuera de producción el detalle sí se expone, para diagnóstico local.
func TestFalloDeStore_EnDesarrollo_ExponeDetalle(t *testing.T) {
	app := buildFailingApp(t, false)

	status, body := getProtected(t, app, "/api/patient-management/patients/")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "conexión rechazada")
}
