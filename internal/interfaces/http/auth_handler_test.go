package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewcurate/metronic-dashboard/internal/application/auth"
	"github.com/andrewcurate/metronic-dashboard/internal/application/usecase"
	"github.com/andrewcurate/metronic-dashboard/internal/domain"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	apphttp "github.com/andrewcurate/metronic-dashboard/internal/interfaces/http"
	pkgjwt "github.com/andrewcurate/metronic-dashboard/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (mismo contrato que los adaptadores de postgres)
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byEmail map[string]*entity.User
	role    *entity.Role
}

func newMemUserRepo(role *entity.Role) *memUserRepo {
	return &memUserRepo{byEmail: map[string]*entity.User{}, role: role}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmailWithRole(email string) (*entity.UserWithRole, error) {
	u, err := r.GetByEmail(email)
	if err != nil || u == nil {
		return nil, err
	}
	out := &entity.UserWithRole{User: *u}
	if u.RoleID != nil && r.role != nil && *u.RoleID == r.role.ID {
		out.Role = r.role
	}
	return out, nil
}

func (r *memUserRepo) GetByIDWithRole(id string) (*entity.UserWithRole, error) {
	u, err := r.GetByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	return r.GetByEmailWithRole(u.Email)
}

func (r *memUserRepo) Update(u *entity.User) error { r.byEmail[u.Email] = u; return nil }
func (r *memUserRepo) Delete(id string) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

type memRoleRepo struct{ def *entity.Role }

func (r *memRoleRepo) GetByID(id string) (*entity.Role, error) { return r.def, nil }
func (r *memRoleRepo) FindDefault() (*entity.Role, error)      { return r.def, nil }
func (r *memRoleRepo) List() ([]*entity.Role, error)           { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Montaje de la app
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app   *fiber.App
	users *memUserRepo
}

func buildApp(t *testing.T, defaultRole *entity.Role) *testEnv {
	t.Helper()
	users := newMemUserRepo(defaultRole)
	roles := &memRoleRepo{def: defaultRole}

	authUC := auth.NewAuthUseCase(users, roles, auth.Config{
		JWTSecret:     testJWTSecret,
		JWTIssuer:     testIssuer,
		JWTExpMinutes: testExpMin,
		DefaultStatus: entity.StatusActive,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		AccountUC:   usecase.NewAccountUseCase(users),
		PatientUC:   usecase.NewPatientUseCase(nil),
		DashboardUC: usecase.NewDashboardUseCase(nil),
		JWTSecret:   testJWTSecret,
		AppName:     "metronic-dashboard-test",
		Production:  false,
	})
	return &testEnv{app: app, users: users}
}

func userRole() *entity.Role {
	return &entity.Role{ID: "role-user", Name: "User", Slug: "user", IsDefault: true}
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func signup(t *testing.T, app *fiber.App, name, email, password string) *http.Response {
	t.Helper()
	return postJSON(t, app, "/api/auth/signup", map[string]string{
		"name": name, "email": email, "password": password,
	})
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	return postJSON(t, app, "/api/auth/login", map[string]string{
		"email": email, "password": password,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignupEndpoint_Crea201ConUserID(t *testing.T) {
	env := buildApp(t, userRole())

	resp := signup(t, env.app, "Ada", "ada@x.com", "secret123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["userId"])
	assert.NotEmpty(t, body["message"])
}

func TestSignupEndpoint_EmailInvalido_Retorna400(t *testing.T) {
	env := buildApp(t, userRole())

	resp := signup(t, env.app, "Ada", "no-es-un-email", "secret123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSignupEndpoint_PasswordCorto_Retorna400(t *testing.T) {
	env := buildApp(t, userRole())

	resp := signup(t, env.app, "Ada", "ada@x.com", "corto")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Escenario del contrato: alta con "ADA@X.com" y reintento con "ada@x.com".
func TestSignupEndpoint_DuplicadoCaseInsensitive_Retorna400(t *testing.T) {
	env := buildApp(t, userRole())

	resp := signup(t, env.app, "Ada", "ADA@X.com", "secret123")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = signup(t, env.app, "Ada", "ada@x.com", "secret123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "EMAIL_EXISTS")
}

func TestSignupEndpoint_SinRolPorDefecto_Retorna500(t *testing.T) {
	env := buildApp(t, nil) // sin rol configurado

	resp := signup(t, env.app, "Ada", "ada@x.com", "secret123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_DEFAULT_ROLE")
	// Fuera de producción el mensaje guía al operador
	assert.Contains(t, string(body), "is_default")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginEndpoint_DespuesDeSignup_DevuelveTokenYUsuario(t *testing.T) {
	env := buildApp(t, userRole())

	resp := signup(t, env.app, "Ada", "ada@x.com", "secret123")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = login(t, env.app, "ada@x.com", "secret123")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	require.NotEmpty(t, body["token"])

	// El token emitido decodifica al claim de la cuenta recién creada
	id, err := pkgjwt.Parse(testJWTSecret, body["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", id.Email)
	assert.Equal(t, "User", id.RoleName, "el rol por defecto debe venir resuelto en el claim")
	assert.Equal(t, entity.StatusActive, id.Status)

	user := body["user"].(map[string]any)
	assert.Equal(t, "Ada", user["name"])
}

// Password incorrecto y email desconocido deben producir cuerpos idénticos.
func TestLoginEndpoint_FallosIndistinguibles(t *testing.T) {
	env := buildApp(t, userRole())

	resp := signup(t, env.app, "Ada", "ada@x.com", "secret123")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	respWrongPass := login(t, env.app, "ada@x.com", "incorrecta")
	defer respWrongPass.Body.Close()
	respNoUser := login(t, env.app, "nadie@x.com", "secret123")
	defer respNoUser.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respWrongPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respNoUser.StatusCode)

	bodyWrongPass, _ := io.ReadAll(respWrongPass.Body)
	bodyNoUser, _ := io.ReadAll(respNoUser.Body)
	assert.Equal(t, string(bodyNoUser), string(bodyWrongPass),
		"las dos respuestas deben ser idénticas (anti-enumeración)")
}

func TestLoginEndpoint_CuentaSuspendida_Retorna403(t *testing.T) {
	env := buildApp(t, userRole())

	resp := signup(t, env.app, "Ada", "ada@x.com", "secret123")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Suspender la cuenta directamente en el store
	u, err := env.users.GetByEmail("ada@x.com")
	require.NoError(t, err)
	u.Status = entity.StatusSuspended
	require.NoError(t, env.users.Update(u))

	resp = login(t, env.app, "ada@x.com", "secret123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ACCOUNT_NOT_ACTIVE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuenta (GET /api/user-management/account)
// ──────────────────────────────────────────────────────────────────────────────

func TestAccountEndpoint_SinToken_Retorna401(t *testing.T) {
	env := buildApp(t, userRole())

	req := httptest.NewRequest(http.MethodGet, "/api/user-management/account", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAccountEndpoint_DevuelveRegistroConRol(t *testing.T) {
	env := buildApp(t, userRole())

	resp := signup(t, env.app, "Ada", "ada@x.com", "secret123")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = login(t, env.app, "ada@x.com", "secret123")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := decodeBody(t, resp)["token"].(string)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/user-management/account", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ada@x.com", body["email"])
	role := body["role"].(map[string]any)
	assert.Equal(t, "User", role["name"])
	_, hasHash := body["passwordHash"]
	assert.False(t, hasHash, "la API nunca expone el hash de password")
}

// El registro desapareció entre la emisión del token y la petición.
func TestAccountEndpoint_UsuarioBorrado_Retorna404(t *testing.T) {
	env := buildApp(t, userRole())

	resp := signup(t, env.app, "Ada", "ada@x.com", "secret123")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	userID := decodeBody(t, resp)["userId"].(string)
	resp.Body.Close()

	resp = login(t, env.app, "ada@x.com", "secret123")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := decodeBody(t, resp)["token"].(string)
	resp.Body.Close()

	require.NoError(t, env.users.Delete(userID))

	req := httptest.NewRequest(http.MethodGet, "/api/user-management/account", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
