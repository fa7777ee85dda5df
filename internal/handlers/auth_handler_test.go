package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) postJSON(t *testing.T, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func registerOperator(t *testing.T, env *testEnv) string {
	t.Helper()
	w := env.postJSON(t, "/auth/register",
		`{"username":"operator","email":"operator@example.com","password":"hunter2hunter2"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestEnv(t)

	token := registerOperator(t, env)
	claims, err := env.issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Username)

	w := env.postJSON(t, "/auth/login", `{"username":"operator","password":"hunter2hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	env := setupTestEnv(t)
	registerOperator(t, env)

	w := env.postJSON(t, "/auth/register",
		`{"username":"operator","email":"second@example.com","password":"hunter2hunter2"}`, "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestRegister_ValidationFailureListsFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.postJSON(t, "/auth/register",
		`{"username":"op","email":"not-an-email","password":"short"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Contains(t, resp.Fields, "Username")
	assert.Contains(t, resp.Fields, "Email")
	assert.Contains(t, resp.Fields, "Password")
}

func TestLogin_BadCredentials(t *testing.T) {
	env := setupTestEnv(t)
	registerOperator(t, env)

	w := env.postJSON(t, "/auth/login", `{"username":"operator","password":"wrong-password"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid username or password"}`, w.Body.String())

	// Unknown users produce the same response as bad passwords.
	w = env.postJSON(t, "/auth/login", `{"username":"ghost","password":"hunter2hunter2"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid username or password"}`, w.Body.String())
}
