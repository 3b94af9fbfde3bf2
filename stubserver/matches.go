package stubserver

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"betadmin/models"
)

func matchToResponse(m Match) models.Match {
	return models.Match{
		ID:               m.ID,
		HomeTeam:         m.HomeTeam,
		AwayTeam:         m.AwayTeam,
		EventDescription: m.EventDescription,
		YesOdds:          m.YesOdds,
		NoOdds:           m.NoOdds,
		Status:           m.Status,
		Result:           m.Result,
		CreatedAt:        formatTime(m.CreatedAt),
		SettledAt:        formatTimePtr(m.SettledAt),
	}
}

func (s *Server) listMatches(c *fiber.Ctx) error {
	query := s.db.Model(&Match{})
	if status := c.Query("status"); status != "" {
		switch status {
		case models.MatchStatusActive, models.MatchStatusSettled, models.MatchStatusCancelled:
			query = query.Where("status = ?", status)
		default:
			return detail(c, fiber.StatusBadRequest, "Invalid status: "+status)
		}
	}

	var matches []Match
	if err := query.Order("created_at DESC").Limit(50).Find(&matches).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to fetch matches")
	}

	list := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		list = append(list, matchToResponse(m))
	}
	return c.JSON(list)
}

func (s *Server) createMatch(c *fiber.Ctx) error {
	reqData := new(struct {
		HomeTeam         string  `json:"home_team"`
		AwayTeam         string  `json:"away_team"`
		EventDescription string  `json:"event_description"`
		YesOdds          float64 `json:"yes_odds"`
		NoOdds           float64 `json:"no_odds"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.HomeTeam == "" || reqData.AwayTeam == "" {
		return detail(c, fiber.StatusBadRequest, "Both teams are required")
	}
	if reqData.YesOdds <= 1 || reqData.NoOdds <= 1 {
		return detail(c, fiber.StatusBadRequest, "Odds must be greater than 1.0")
	}

	match := Match{
		HomeTeam:         reqData.HomeTeam,
		AwayTeam:         reqData.AwayTeam,
		EventDescription: reqData.EventDescription,
		YesOdds:          reqData.YesOdds,
		NoOdds:           reqData.NoOdds,
		Status:           models.MatchStatusActive,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.db.Create(&match).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to create match")
	}

	s.logAdminAction(c.Locals("adminId").(uint), "create_match", "match", match.ID,
		map[string]any{"home_team": match.HomeTeam, "away_team": match.AwayTeam})

	return c.JSON(fiber.Map{
		"success":  true,
		"match_id": match.ID,
		"message":  "Match created successfully",
	})
}

func (s *Server) settleMatch(c *fiber.Ctx) error {
	matchID, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid match id")
	}

	reqData := new(struct {
		Result string `json:"result"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result := models.MatchResultNo
	if strings.EqualFold(reqData.Result, "yes") {
		result = models.MatchResultYes
	}

	var match Match
	if err := s.db.First(&match, matchID).Error; err != nil {
		return detail(c, fiber.StatusBadRequest, "Match not found")
	}
	if match.Status != models.MatchStatusActive {
		return detail(c, fiber.StatusBadRequest, "Match is already settled")
	}

	now := time.Now().UTC()
	match.Status = models.MatchStatusSettled
	match.Result = result
	match.SettledAt = &now

	var bets []Bet
	s.db.Where("match_id = ? AND status = ?", match.ID, models.BetStatusPending).Find(&bets)

	// Settle every open bet on the match: winners get stake times the side's
	// odds, losers get nothing.
	tx := s.db.Begin()
	if err := tx.Save(&match).Error; err != nil {
		tx.Rollback()
		return detail(c, fiber.StatusInternalServerError, "Failed to settle match")
	}

	for i := range bets {
		bet := &bets[i]
		bet.SettledAt = &now
		bet.GameResult = fmt.Sprintf(`{"result":%q}`, result)
		if bet.Selection == result {
			odds := match.YesOdds
			if result == models.MatchResultNo {
				odds = match.NoOdds
			}
			bet.Status = models.BetStatusWon
			bet.Multiplier = odds
			bet.PayoutAmount = bet.StakeAmount * odds

			var user User
			if err := tx.First(&user, bet.UserID).Error; err == nil {
				user.WalletBalance += bet.PayoutAmount
				if err := tx.Save(&user).Error; err != nil {
					tx.Rollback()
					return detail(c, fiber.StatusInternalServerError, "Failed to pay out bet")
				}
			}
		} else {
			bet.Status = models.BetStatusLost
			bet.PayoutAmount = 0
		}
		if err := tx.Save(bet).Error; err != nil {
			tx.Rollback()
			return detail(c, fiber.StatusInternalServerError, "Failed to settle bets")
		}
	}
	tx.Commit()

	s.logAdminAction(c.Locals("adminId").(uint), "settle_match", "match", match.ID,
		map[string]any{"result": result, "settled_bets": len(bets)})

	return c.JSON(fiber.Map{
		"success":      true,
		"match_id":     match.ID,
		"result":       result,
		"settled_bets": len(bets),
		"message":      "Match settled as " + strings.ToUpper(result),
	})
}
