package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// MonthlyNewPatients pacientes creados por mes calendario en los últimos
// `months` meses (incluido el actual). generate_series garantiza que los
// meses sin altas aparezcan con cero.
func (r *StatsRepo) MonthlyNewPatients(ctx context.Context, months int) ([]repository.MonthlyPatientCount, error) {
	const query = `
	SELECT
	    m.month,
	    COUNT(p.id) AS patients
	FROM generate_series(
	    date_trunc('month', now()) - ($1::INT - 1) * INTERVAL '1 month',
	    date_trunc('month', now()),
	    INTERVAL '1 month'
	) AS m(month)
	LEFT JOIN patients p ON date_trunc('month', p.created_at) = m.month
	GROUP BY m.month
	ORDER BY m.month ASC`

	rows, err := r.pool.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("stats.MonthlyNewPatients: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyPatientCount
	for rows.Next() {
		var row repository.MonthlyPatientCount
		if err := rows.Scan(&row.Month, &row.Patients); err != nil {
			return nil, fmt.Errorf("stats.MonthlyNewPatients scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
