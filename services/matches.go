package services

import (
	"fmt"
	"net/url"

	"betadmin/client"
	"betadmin/models"
)

// MatchService maps match management onto the backend match endpoints.
type MatchService struct {
	client *client.Client
}

func NewMatchService(c *client.Client) *MatchService {
	return &MatchService{client: c}
}

// CreateMatchRequest is the body for offering a new yes/no event.
type CreateMatchRequest struct {
	HomeTeam         string  `json:"home_team"`
	AwayTeam         string  `json:"away_team"`
	EventDescription string  `json:"event_description"`
	YesOdds          float64 `json:"yes_odds"`
	NoOdds           float64 `json:"no_odds"`
}

// List fetches matches, optionally filtered by status.
func (s *MatchService) List(status string) ([]models.Match, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}

	var resp []models.Match
	if err := s.client.Get("/api/admin/matches", query, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Create offers a new match for betting.
func (s *MatchService) Create(req CreateMatchRequest) (*models.CreateMatchResponse, error) {
	var resp models.CreateMatchResponse
	if err := s.client.Post("/api/admin/matches", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Settle records the match outcome, resolving associated bets server-side.
func (s *MatchService) Settle(matchID uint, result string) (*models.SettleMatchResponse, error) {
	body := map[string]string{"result": result}

	var resp models.SettleMatchResponse
	if err := s.client.Post(fmt.Sprintf("/api/admin/matches/%d/settle", matchID), body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
