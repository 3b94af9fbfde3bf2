package controllers

import (
	"log"
	"sync"

	"github.com/jinzhu/now"

	"betadmin/models"
)

type analyticsAPI interface {
	Dashboard() (*models.DashboardStats, error)
	Revenue(dateFrom, dateTo string) ([]models.RevenueBreakdown, error)
	Users() (*models.UserEngagementMetrics, error)
}

// ReportsController composes the read-only aggregate views. The three
// endpoints are fetched concurrently; a failure in one leaves its section
// empty and is logged, the others still render.
type ReportsController struct {
	api analyticsAPI

	mu         sync.Mutex
	dashboard  *models.DashboardStats
	revenue    []models.RevenueBreakdown
	engagement *models.UserEngagementMetrics

	DateFrom string
	DateTo   string
}

func NewReportsController(api analyticsAPI) *ReportsController {
	rc := &ReportsController{api: api}
	// Default revenue window: start of the current month through today.
	rc.DateFrom = now.BeginningOfMonth().Format("2006-01-02")
	rc.DateTo = now.BeginningOfDay().Format("2006-01-02")
	return rc
}

// Refresh fetches all sections concurrently and returns once every call has
// resolved one way or the other.
func (rc *ReportsController) Refresh() {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		stats, err := rc.api.Dashboard()
		if err != nil {
			log.Printf("Error loading dashboard stats: %v", err)
			return
		}
		rc.mu.Lock()
		rc.dashboard = stats
		rc.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		breakdown, err := rc.api.Revenue(rc.DateFrom, rc.DateTo)
		if err != nil {
			log.Printf("Error loading revenue breakdown: %v", err)
			return
		}
		rc.mu.Lock()
		rc.revenue = breakdown
		rc.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		metrics, err := rc.api.Users()
		if err != nil {
			log.Printf("Error loading engagement metrics: %v", err)
			return
		}
		rc.mu.Lock()
		rc.engagement = metrics
		rc.mu.Unlock()
	}()

	wg.Wait()
}

// SetDateRange narrows the revenue window and refetches everything.
func (rc *ReportsController) SetDateRange(dateFrom, dateTo string) {
	rc.DateFrom = dateFrom
	rc.DateTo = dateTo
	rc.Refresh()
}

// Dashboard returns the last loaded headline stats, nil when unavailable.
func (rc *ReportsController) Dashboard() *models.DashboardStats {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.dashboard
}

// Revenue returns the last loaded breakdown, nil when unavailable.
func (rc *ReportsController) Revenue() []models.RevenueBreakdown {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.revenue
}

// Engagement returns the last loaded cohort metrics, nil when unavailable.
func (rc *ReportsController) Engagement() *models.UserEngagementMetrics {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.engagement
}
