package controllers

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betadmin/models"
	"betadmin/session"
)

type fakeAuthAPI struct {
	token    string
	loginErr error
	email    string
	password string
}

func (f *fakeAuthAPI) Login(email, password string) (*models.LoginResponse, error) {
	f.email, f.password = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.LoginResponse{AccessToken: f.token, TokenType: "bearer"}, nil
}

func testToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLoginSuccessActivatesSession(t *testing.T) {
	api := &fakeAuthAPI{token: testToken(t, jwt.MapClaims{
		"sub": "7", "role": "admin", "email": "admin@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})}
	sess := session.New(session.NewMemoryStore())
	auth := NewAuthController(api, sess)

	result := auth.Login("admin@example.com", "admin123")

	require.True(t, result.Success)
	assert.Equal(t, uint(7), result.Admin.ID)
	assert.Equal(t, "admin", result.Admin.Role)
	assert.Equal(t, "admin@example.com", api.email)
	assert.Equal(t, session.StateAuthenticated, sess.State())
	assert.Equal(t, api.token, sess.Token())
}

func TestLoginFailureReturnedAsData(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("Incorrect email or password")}
	sess := session.New(session.NewMemoryStore())
	auth := NewAuthController(api, sess)

	result := auth.Login("admin@example.com", "wrong")

	assert.False(t, result.Success)
	assert.Equal(t, "Incorrect email or password", result.Error)
	assert.Equal(t, session.StateUnauthenticated, sess.State())
}

func TestLoginFallbackEmailFromForm(t *testing.T) {
	api := &fakeAuthAPI{token: testToken(t, jwt.MapClaims{"sub": "7", "role": "admin"})}
	auth := NewAuthController(api, session.New(session.NewMemoryStore()))

	result := auth.Login("typed@example.com", "admin123")

	require.True(t, result.Success)
	assert.Equal(t, "typed@example.com", result.Admin.Email)
}

func TestLoginUndecodableTokenFails(t *testing.T) {
	api := &fakeAuthAPI{token: "not-a-jwt"}
	sess := session.New(session.NewMemoryStore())
	auth := NewAuthController(api, sess)

	result := auth.Login("admin@example.com", "admin123")

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, session.StateUnauthenticated, sess.State())
}

func TestLogoutClearsSession(t *testing.T) {
	api := &fakeAuthAPI{token: testToken(t, jwt.MapClaims{"sub": "7", "role": "admin"})}
	sess := session.New(session.NewMemoryStore())
	auth := NewAuthController(api, sess)
	require.True(t, auth.Login("admin@example.com", "admin123").Success)

	auth.Logout()

	assert.Equal(t, session.StateUnauthenticated, sess.State())
	assert.Empty(t, sess.Token())
}
