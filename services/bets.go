package services

import (
	"net/url"
	"strconv"

	"betadmin/client"
	"betadmin/models"
)

// BetService maps bet monitoring onto the backend bet endpoints. Bets are
// read-only from the console's perspective.
type BetService struct {
	client *client.Client
}

func NewBetService(c *client.Client) *BetService {
	return &BetService{client: c}
}

// ListBetsParams are the supported bet list filters. Dates use YYYY-MM-DD.
type ListBetsParams struct {
	Page     int
	PageSize int
	BetType  string
	Status   string
	UserID   uint
	DateFrom string
	DateTo   string
}

// StatisticsParams narrow the statistics window.
type StatisticsParams struct {
	BetType  string
	DateFrom string
	DateTo   string
}

// List fetches one page of bets.
func (s *BetService) List(params ListBetsParams) (*models.BetListResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("page_size", strconv.Itoa(params.PageSize))
	if params.BetType != "" {
		query.Set("bet_type", params.BetType)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.UserID != 0 {
		query.Set("user_id", strconv.FormatUint(uint64(params.UserID), 10))
	}
	if params.DateFrom != "" {
		query.Set("date_from", params.DateFrom)
	}
	if params.DateTo != "" {
		query.Set("date_to", params.DateTo)
	}

	var resp models.BetListResponse
	if err := s.client.Get("/api/admin/bets", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Active fetches all unsettled bets in one call.
func (s *BetService) Active() ([]models.Bet, error) {
	var resp []models.Bet
	if err := s.client.Get("/api/admin/bets/active", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Statistics fetches aggregate wagering figures.
func (s *BetService) Statistics(params StatisticsParams) (*models.BetStatistics, error) {
	query := url.Values{}
	if params.BetType != "" {
		query.Set("bet_type", params.BetType)
	}
	if params.DateFrom != "" {
		query.Set("date_from", params.DateFrom)
	}
	if params.DateTo != "" {
		query.Set("date_to", params.DateTo)
	}

	var resp models.BetStatistics
	if err := s.client.Get("/api/admin/bets/statistics", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
