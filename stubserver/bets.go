package stubserver

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betadmin/models"
)

func (s *Server) betToResponse(bet Bet) models.Bet {
	resp := models.Bet{
		ID:           bet.ID,
		UserID:       bet.UserID,
		BetType:      bet.BetType,
		StakeAmount:  bet.StakeAmount,
		Status:       bet.Status,
		Multiplier:   bet.Multiplier,
		PayoutAmount: bet.PayoutAmount,
		CreatedAt:    formatTime(bet.CreatedAt),
		SettledAt:    formatTimePtr(bet.SettledAt),
	}

	var user User
	if err := s.db.First(&user, bet.UserID).Error; err == nil {
		resp.UserPhone = user.PhoneNumber
	} else {
		resp.UserPhone = "Unknown"
	}

	if bet.BetData != "" {
		_ = json.Unmarshal([]byte(bet.BetData), &resp.BetData)
	}
	if bet.GameResult != "" {
		_ = json.Unmarshal([]byte(bet.GameResult), &resp.GameResult)
	}
	return resp
}

// betQuery builds a fresh filtered query. A new chain per aggregate keeps
// gorm's statement state from leaking between finishers.
func (s *Server) betQuery(c *fiber.Ctx) func() *gorm.DB {
	return func() *gorm.DB {
		query := s.db.Model(&Bet{})
		if betType := c.Query("bet_type"); betType != "" {
			query = query.Where("bet_type = ?", betType)
		}
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if userID := c.QueryInt("user_id", 0); userID > 0 {
			query = query.Where("user_id = ?", userID)
		}
		return dateRangeFilter(c, query)
	}
}

func (s *Server) listBets(c *fiber.Ctx) error {
	page, pageSize := paginationParams(c)

	query := s.betQuery(c)

	var total int64
	query().Count(&total)

	var bets []Bet
	if err := query().Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bets).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to fetch bets")
	}

	list := make([]models.Bet, 0, len(bets))
	for _, bet := range bets {
		list = append(list, s.betToResponse(bet))
	}

	return c.JSON(models.BetListResponse{
		Bets:       list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calcTotalPages(total, pageSize),
	})
}

func (s *Server) listActiveBets(c *fiber.Ctx) error {
	var bets []Bet
	if err := s.db.Where("status = ?", models.BetStatusPending).
		Order("created_at DESC").
		Find(&bets).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to fetch bets")
	}

	list := make([]models.Bet, 0, len(bets))
	for _, bet := range bets {
		list = append(list, s.betToResponse(bet))
	}
	return c.JSON(list)
}

func (s *Server) betStatistics(c *fiber.Ctx) error {
	query := s.betQuery(c)

	var stats models.BetStatistics
	query().Count(&stats.TotalBets)
	query().Where("status = ?", models.BetStatusPending).Count(&stats.ActiveBets)
	query().Where("status = ?", models.BetStatusWon).Count(&stats.WonBets)
	query().Where("status = ?", models.BetStatusLost).Count(&stats.LostBets)
	stats.SettledBets = stats.TotalBets - stats.ActiveBets

	query().Select("COALESCE(SUM(stake_amount), 0)").Scan(&stats.TotalWagered)
	query().Where("status = ?", models.BetStatusWon).
		Select("COALESCE(SUM(payout_amount), 0)").Scan(&stats.TotalPayouts)
	stats.NetRevenue = stats.TotalWagered - stats.TotalPayouts

	return c.JSON(stats)
}
