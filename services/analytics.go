package services

import (
	"net/url"

	"betadmin/client"
	"betadmin/models"
)

// AnalyticsService maps the reporting screens onto the backend analytics
// endpoints. All of these are read-only aggregates.
type AnalyticsService struct {
	client *client.Client
}

func NewAnalyticsService(c *client.Client) *AnalyticsService {
	return &AnalyticsService{client: c}
}

// Dashboard fetches the headline platform statistics.
func (s *AnalyticsService) Dashboard() (*models.DashboardStats, error) {
	var resp models.DashboardStats
	if err := s.client.Get("/api/admin/analytics/dashboard", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Revenue fetches the per-game revenue breakdown. Dates use YYYY-MM-DD and
// are optional.
func (s *AnalyticsService) Revenue(dateFrom, dateTo string) ([]models.RevenueBreakdown, error) {
	query := url.Values{}
	if dateFrom != "" {
		query.Set("date_from", dateFrom)
	}
	if dateTo != "" {
		query.Set("date_to", dateTo)
	}

	var resp []models.RevenueBreakdown
	if err := s.client.Get("/api/admin/analytics/revenue", query, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Users fetches signup and activity cohort metrics.
func (s *AnalyticsService) Users() (*models.UserEngagementMetrics, error) {
	var resp models.UserEngagementMetrics
	if err := s.client.Get("/api/admin/analytics/users", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
