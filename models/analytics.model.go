package models

// DashboardStats is the headline card set on the reports screen.
type DashboardStats struct {
	TotalUsers         int64   `json:"total_users"`
	ActiveUsers        int64   `json:"active_users"`
	BlockedUsers       int64   `json:"blocked_users"`
	TotalDeposits      float64 `json:"total_deposits"`
	TotalWithdrawals   float64 `json:"total_withdrawals"`
	PendingDeposits    int64   `json:"pending_deposits"`
	PendingWithdrawals int64   `json:"pending_withdrawals"`
	TotalBets          int64   `json:"total_bets"`
	ActiveBets         int64   `json:"active_bets"`
	TotalWagered       float64 `json:"total_wagered"`
	TotalPayouts       float64 `json:"total_payouts"`
	NetRevenue         float64 `json:"net_revenue"`
	PlatformBalance    float64 `json:"platform_balance"`
}

// RevenueBreakdown is one game type's slice of revenue.
type RevenueBreakdown struct {
	GameType     string  `json:"game_type"`
	TotalWagered float64 `json:"total_wagered"`
	TotalPayouts float64 `json:"total_payouts"`
	NetRevenue   float64 `json:"net_revenue"`
	BetCount     int64   `json:"bet_count"`
}

// UserEngagementMetrics describes signup and activity cohorts.
type UserEngagementMetrics struct {
	TotalUsers            int64   `json:"total_users"`
	ActiveUsers24h        int64   `json:"active_users_24h"`
	ActiveUsers7d         int64   `json:"active_users_7d"`
	ActiveUsers30d        int64   `json:"active_users_30d"`
	NewUsersToday         int64   `json:"new_users_today"`
	NewUsers7d            int64   `json:"new_users_7d"`
	NewUsers30d           int64   `json:"new_users_30d"`
	AverageBetsPerUser    float64 `json:"average_bets_per_user"`
	AverageDepositPerUser float64 `json:"average_deposit_per_user"`
}
