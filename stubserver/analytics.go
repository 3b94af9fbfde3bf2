package stubserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betadmin/models"
)

func (s *Server) dashboardStats(c *fiber.Ctx) error {
	var stats models.DashboardStats

	s.db.Model(&User{}).Count(&stats.TotalUsers)
	s.db.Model(&User{}).Where("is_active = ?", true).Count(&stats.ActiveUsers)
	s.db.Model(&User{}).Where("is_blocked = ?", true).Count(&stats.BlockedUsers)

	s.db.Model(&Deposit{}).Where("status = ?", models.DepositStatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalDeposits)
	s.db.Model(&Deposit{}).Where("status = ?", models.DepositStatusPending).Count(&stats.PendingDeposits)

	s.db.Model(&Withdrawal{}).Where("status = ?", models.WithdrawalStatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.TotalWithdrawals)
	s.db.Model(&Withdrawal{}).Where("status = ?", models.WithdrawalStatusPending).Count(&stats.PendingWithdrawals)

	s.db.Model(&Bet{}).Count(&stats.TotalBets)
	s.db.Model(&Bet{}).Where("status = ?", models.BetStatusPending).Count(&stats.ActiveBets)
	s.db.Model(&Bet{}).Select("COALESCE(SUM(stake_amount), 0)").Scan(&stats.TotalWagered)
	s.db.Model(&Bet{}).Where("status = ?", models.BetStatusWon).
		Select("COALESCE(SUM(payout_amount), 0)").Scan(&stats.TotalPayouts)

	stats.NetRevenue = stats.TotalDeposits - stats.TotalWithdrawals - stats.TotalPayouts
	stats.PlatformBalance = stats.NetRevenue

	return c.JSON(stats)
}

func (s *Server) revenueBreakdown(c *fiber.Ctx) error {
	breakdown := make([]models.RevenueBreakdown, 0, len(models.BetTypes))

	for _, betType := range models.BetTypes {
		query := func() *gorm.DB {
			return dateRangeFilter(c, s.db.Model(&Bet{}).Where("bet_type = ?", betType))
		}

		var row models.RevenueBreakdown
		row.GameType = betType
		query().Count(&row.BetCount)
		query().Select("COALESCE(SUM(stake_amount), 0)").Scan(&row.TotalWagered)
		query().Where("status = ?", models.BetStatusWon).
			Select("COALESCE(SUM(payout_amount), 0)").Scan(&row.TotalPayouts)
		row.NetRevenue = row.TotalWagered - row.TotalPayouts

		breakdown = append(breakdown, row)
	}

	return c.JSON(breakdown)
}

func (s *Server) engagementMetrics(c *fiber.Ctx) error {
	var metrics models.UserEngagementMetrics
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	s.db.Model(&User{}).Count(&metrics.TotalUsers)

	s.db.Model(&Bet{}).Where("created_at >= ?", now.Add(-24*time.Hour)).
		Distinct("user_id").Count(&metrics.ActiveUsers24h)
	s.db.Model(&Bet{}).Where("created_at >= ?", now.AddDate(0, 0, -7)).
		Distinct("user_id").Count(&metrics.ActiveUsers7d)
	s.db.Model(&Bet{}).Where("created_at >= ?", now.AddDate(0, 0, -30)).
		Distinct("user_id").Count(&metrics.ActiveUsers30d)

	s.db.Model(&User{}).Where("created_at >= ?", today).Count(&metrics.NewUsersToday)
	s.db.Model(&User{}).Where("created_at >= ?", now.AddDate(0, 0, -7)).Count(&metrics.NewUsers7d)
	s.db.Model(&User{}).Where("created_at >= ?", now.AddDate(0, 0, -30)).Count(&metrics.NewUsers30d)

	var totalBets, bettingUsers int64
	s.db.Model(&Bet{}).Count(&totalBets)
	s.db.Model(&Bet{}).Distinct("user_id").Count(&bettingUsers)
	if bettingUsers > 0 {
		metrics.AverageBetsPerUser = float64(totalBets) / float64(bettingUsers)
	}

	var totalDeposits float64
	var depositingUsers int64
	s.db.Model(&Deposit{}).Where("status = ?", models.DepositStatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalDeposits)
	s.db.Model(&Deposit{}).Where("status = ?", models.DepositStatusApproved).
		Distinct("user_id").Count(&depositingUsers)
	if depositingUsers > 0 {
		metrics.AverageDepositPerUser = totalDeposits / float64(depositingUsers)
	}

	return c.JSON(metrics)
}
