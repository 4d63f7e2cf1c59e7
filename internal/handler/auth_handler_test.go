package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubdeck/api/internal/model"
)

func TestRegister_CreatesAccountAndToken(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	user, token := e.register(t, "Dana", "dana@example.com")

	assert.Equal(t, "Dana", user.Name)
	assert.Equal(t, "dana@example.com", user.Email)

	// The issued token must authenticate against /v1/auth/me.
	rec := e.do(t, http.MethodGet, "/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	me := decodeData[model.User](t, rec)
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, user.Email, me.Email)
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	e.register(t, "Dana", "dana@example.com")

	rec := e.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name":     "Other Dana",
		"email":    "dana@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	problem := decodeProblem(t, rec)
	assert.Equal(t, http.StatusConflict, problem.Status)
	assert.Equal(t, "Conflict", problem.Title)
}

func TestRegister_ShortPassword_UnprocessableEntity(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "short",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	problem := decodeProblem(t, rec)
	require.NotEmpty(t, problem.Errors)
	assert.Equal(t, "credentials", problem.Errors[0].Field)
}

func TestRegister_UnknownField_BadRequest(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/v1/auth/register", "", map[string]string{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "s3cret-pass",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_ReturnsFreshToken(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	user, _ := e.register(t, "Dana", "dana@example.com")

	rec := e.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "dana@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeData[authResponse](t, rec)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Positive(t, resp.Token.ExpiresIn)
}

func TestLogin_NormalizesEmail(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	e.register(t, "Dana", "dana@example.com")

	rec := e.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "  DANA@EXAMPLE.COM  ",
		"password": "s3cret-pass",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_WrongPassword_Unauthorized(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	e.register(t, "Dana", "dana@example.com")

	rec := e.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "dana@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownEmail_Unauthorized(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "s3cret-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_WithoutToken_Unauthorized(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_GarbageToken_Unauthorized(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/v1/auth/me", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_NeverExposesPasswordHash(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	_, token := e.register(t, "Dana", "dana@example.com")

	rec := e.do(t, http.MethodGet, "/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHealth_NoAuthRequired(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
