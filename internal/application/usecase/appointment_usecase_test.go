package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
	"github.com/andrewcurate/metronic-dashboard/internal/application/usecase"
	"github.com/andrewcurate/metronic-dashboard/internal/domain"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
)

// fakeAppointmentRepo repositorio en memoria ordenado por fecha.
type fakeAppointmentRepo struct {
	byID map[string]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: map[string]*entity.Appointment{}}
}

func (r *fakeAppointmentRepo) Create(a *entity.Appointment) error {
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) sorted() []*entity.Appointment {
	out := make([]*entity.Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (r *fakeAppointmentRepo) List(limit, offset int) ([]*entity.Appointment, error) {
	all := r.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeAppointmentRepo) ListFrom(from time.Time, limit int) ([]*entity.Appointment, error) {
	var out []*entity.Appointment
	for _, a := range r.sorted() {
		if !a.Date.Before(from) {
			out = append(out, a)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(a *entity.Appointment) error {
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestAppointment_CreateYGet(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := usecase.NewAppointmentUseCase(repo)

	created, err := uc.Create(dto.CreateAppointmentRequest{
		Title: "Control anual",
		Date:  date(2026, time.October, 12),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Control anual", got.Title)
	assert.True(t, got.Date.Equal(date(2026, time.October, 12)))
}

func TestAppointment_GetInexistente_DevuelveNil(t *testing.T) {
	uc := usecase.NewAppointmentUseCase(newFakeAppointmentRepo())

	got, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAppointment_List_OrdenadoPorFechaAscendente(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := usecase.NewAppointmentUseCase(repo)

	_, err := uc.Create(dto.CreateAppointmentRequest{Title: "Tercera", Date: date(2026, time.December, 1)})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateAppointmentRequest{Title: "Primera", Date: date(2026, time.September, 5)})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateAppointmentRequest{Title: "Segunda", Date: date(2026, time.October, 20)})
	require.NoError(t, err)

	out, err := uc.List(20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, "Primera", out.Items[0].Title)
	assert.Equal(t, "Segunda", out.Items[1].Title)
	assert.Equal(t, "Tercera", out.Items[2].Title)
}

func TestAppointment_Update_SoloCamposPresentes(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := usecase.NewAppointmentUseCase(repo)

	created, err := uc.Create(dto.CreateAppointmentRequest{Title: "Original", Date: date(2026, time.October, 12)})
	require.NoError(t, err)

	nuevoTitulo := "Reprogramada"
	updated, err := uc.Update(created.ID, dto.UpdateAppointmentRequest{Title: &nuevoTitulo})
	require.NoError(t, err)
	assert.Equal(t, "Reprogramada", updated.Title)
	assert.True(t, updated.Date.Equal(date(2026, time.October, 12)), "la fecha no debe cambiar si no viene")
}

func TestAppointment_UpdateInexistente_DevuelveNotFound(t *testing.T) {
	uc := usecase.NewAppointmentUseCase(newFakeAppointmentRepo())

	titulo := "X"
	_, err := uc.Update("no-existe", dto.UpdateAppointmentRequest{Title: &titulo})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppointment_Delete(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := usecase.NewAppointmentUseCase(repo)

	created, err := uc.Create(dto.CreateAppointmentRequest{Title: "Borrar", Date: date(2026, time.October, 12)})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

func TestAppointment_Upcoming_ExcluyePasadas(t *testing.T) {
	repo := newFakeAppointmentRepo()
	uc := usecase.NewAppointmentUseCase(repo)

	_, err := uc.Create(dto.CreateAppointmentRequest{Title: "Pasada", Date: date(2020, time.January, 1)})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateAppointmentRequest{Title: "Futura", Date: date(2030, time.January, 1)})
	require.NoError(t, err)

	out, err := uc.Upcoming(date(2026, time.June, 1), 50)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Futura", out[0].Title)
}
