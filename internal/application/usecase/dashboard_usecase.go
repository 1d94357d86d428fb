package usecase

import (
	"context"

	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
)

const statsMonths = 6 // meses del gráfico de pacientes del dashboard

// DashboardUseCase series del dashboard.
//
// Fuente de datos: StatsRepository (consultas read-only); no accede
// directamente a la tabla de pacientes.
type DashboardUseCase struct {
	stats repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stats repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats}
}

// PatientStats pacientes nuevos por mes de los últimos 6 meses, con el mes
// abreviado como etiqueta ("Jan", "Feb", ...).
func (uc *DashboardUseCase) PatientStats(ctx context.Context) ([]dto.PatientStatPoint, error) {
	counts, err := uc.stats.MonthlyNewPatients(ctx, statsMonths)
	if err != nil {
		return nil, err
	}
	points := make([]dto.PatientStatPoint, 0, len(counts))
	for _, c := range counts {
		points = append(points, dto.PatientStatPoint{
			Date:     c.Month.Format("Jan"),
			Patients: c.Patients,
		})
	}
	return points, nil
}
