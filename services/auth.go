package services

import (
	"betadmin/client"
	"betadmin/models"
)

// AuthService maps session creation onto the backend login endpoint.
type AuthService struct {
	client *client.Client
}

func NewAuthService(c *client.Client) *AuthService {
	return &AuthService{client: c}
}

// Login exchanges credentials for a bearer token. The request carries no
// Authorization header; the session has no token yet.
func (s *AuthService) Login(email, password string) (*models.LoginResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp models.LoginResponse
	if err := s.client.Post("/api/admin/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
