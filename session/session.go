package session

import (
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/golang-jwt/jwt/v4"

	"betadmin/models"
)

// State of the admin session.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateChecking        State = "checking"
	StateAuthenticated   State = "authenticated"
)

// Session holds the current admin identity and the persisted bearer token.
// It is passed explicitly into the API client rather than looked up through
// a package-level global, so tests can run independent sessions side by side.
type Session struct {
	mu    sync.Mutex
	store Store
	token string
	admin *models.AdminSession
	state State
}

func New(store Store) *Session {
	return &Session{store: store, state: StateUnauthenticated}
}

// Init restores a persisted token if one exists. A token that fails to decode
// is removed and the session stays unauthenticated.
func (s *Session) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateChecking

	token, err := s.store.Read()
	if err != nil {
		log.Printf("Error reading stored token: %v", err)
	}
	if token == "" {
		s.state = StateUnauthenticated
		return
	}

	admin, err := decodeToken(token)
	if err != nil {
		log.Printf("Stored token failed to decode, clearing it: %v", err)
		if err := s.store.Clear(); err != nil {
			log.Printf("Error clearing stored token: %v", err)
		}
		s.state = StateUnauthenticated
		return
	}

	s.token = token
	s.admin = admin
	s.state = StateAuthenticated
}

// SetToken decodes, persists and activates a freshly issued token.
// fallbackEmail fills the identity when the token carries no email claim.
func (s *Session) SetToken(token, fallbackEmail string) (models.AdminSession, error) {
	admin, err := decodeToken(token)
	if err != nil {
		return models.AdminSession{}, fmt.Errorf("failed to decode token: %w", err)
	}
	if admin.Email == "" {
		admin.Email = fallbackEmail
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Write(token); err != nil {
		log.Printf("Error persisting token: %v", err)
	}
	s.token = token
	s.admin = admin
	s.state = StateAuthenticated
	return *admin, nil
}

// Clear drops the token and identity. Used by logout and by the API client's
// 401 handling.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		log.Printf("Error clearing stored token: %v", err)
	}
	s.token = ""
	s.admin = nil
	s.state = StateUnauthenticated
}

// Token returns the raw bearer token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Admin returns the decoded identity, or nil when unauthenticated.
func (s *Session) Admin() *models.AdminSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.admin == nil {
		return nil
	}
	admin := *s.admin
	return &admin
}

// decodeToken reads the token claims without verifying the signature. The
// claims are display-only; the backend verifies every request on its side.
func decodeToken(tokenString string) (*models.AdminSession, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["sub"] == nil {
		return nil, fmt.Errorf("invalid token payload")
	}

	admin := &models.AdminSession{}

	switch sub := claims["sub"].(type) {
	case string:
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid subject claim: %v", sub)
		}
		admin.ID = uint(id)
	case float64:
		admin.ID = uint(sub)
	default:
		return nil, fmt.Errorf("invalid subject claim type")
	}

	if role, ok := claims["role"].(string); ok {
		admin.Role = role
	}
	if email, ok := claims["email"].(string); ok {
		admin.Email = email
	}

	return admin, nil
}
