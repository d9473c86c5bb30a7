package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kridha/fit-engine/internal/types"
)

func newTestAuthHandler() *AuthHandler {
	svc, _ := newTestUserService()
	return NewAuthHandler(svc, newTestJWTService())
}

func TestAuthHandler_RegisterReturnsToken(t *testing.T) {
	h := newTestAuthHandler()
	body := `{"name":"Priya","email":"priya@example.com","password":"correct-horse"}`
	r := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Register(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestAuthHandler_RegisterInvalidEmail(t *testing.T) {
	h := newTestAuthHandler()
	body := `{"name":"Priya","email":"not-an-email","password":"correct-horse"}`
	r := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Register(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RegisterShortPassword(t *testing.T) {
	h := newTestAuthHandler()
	body := `{"name":"Priya","email":"priya@example.com","password":"short"}`
	r := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Register(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_RegisterDuplicateEmailConflict(t *testing.T) {
	h := newTestAuthHandler()
	body := `{"name":"Priya","email":"priya@example.com","password":"correct-horse"}`

	r := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	h.Register(httptest.NewRecorder(), r)

	r = httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Register(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_LoginWrongPasswordUnauthorized(t *testing.T) {
	h := newTestAuthHandler()
	register := `{"name":"Priya","email":"priya@example.com","password":"correct-horse"}`
	h.Register(httptest.NewRecorder(), httptest.NewRequest("POST", "/auth/register", strings.NewReader(register)))

	login := `{"email":"priya@example.com","password":"wrong-password"}`
	w := httptest.NewRecorder()
	h.Login(w, httptest.NewRequest("POST", "/auth/login", strings.NewReader(login)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_UpdatePasswordFlow(t *testing.T) {
	svc, _ := newTestUserService()
	h := NewAuthHandler(svc, newTestJWTService())

	user, err := svc.Register(httptest.NewRequest("POST", "/", nil).Context(), &types.CreateUserRequest{
		Name: "Priya", Email: "priya@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	body := `{"current_password":"correct-horse","new_password":"battery-staple"}`
	w := httptest.NewRecorder()
	h.UpdatePasswordWithUserID(w, httptest.NewRequest("PUT", "/users/me/password", strings.NewReader(body)), user.ID)

	assert.Equal(t, http.StatusOK, w.Code)
}
