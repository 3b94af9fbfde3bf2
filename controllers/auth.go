package controllers

import (
	"betadmin/models"
	"betadmin/session"
)

type authAPI interface {
	Login(email, password string) (*models.LoginResponse, error)
}

// LoginResult mirrors the dashboard login contract: failures are returned as
// data, never raised.
type LoginResult struct {
	Success bool
	Admin   models.AdminSession
	Error   string
}

// AuthController drives the login screen against the session state.
type AuthController struct {
	api     authAPI
	session *session.Session
}

func NewAuthController(api authAPI, sess *session.Session) *AuthController {
	return &AuthController{api: api, session: sess}
}

// Login calls the session-creation endpoint, then persists and decodes the
// returned token.
func (a *AuthController) Login(email, password string) LoginResult {
	resp, err := a.api.Login(email, password)
	if err != nil {
		return LoginResult{Success: false, Error: err.Error()}
	}

	admin, err := a.session.SetToken(resp.AccessToken, email)
	if err != nil {
		return LoginResult{Success: false, Error: err.Error()}
	}
	return LoginResult{Success: true, Admin: admin}
}

// Logout clears the persisted token and identity synchronously.
func (a *AuthController) Logout() {
	a.session.Clear()
}
