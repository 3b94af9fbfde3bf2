package stubserver

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betadmin/models"
)

func (s *Server) userToResponse(user User) models.User {
	return models.User{
		ID:            user.ID,
		PhoneNumber:   user.PhoneNumber,
		IsActive:      user.IsActive,
		IsBlocked:     user.IsBlocked,
		CreatedAt:     formatTime(user.CreatedAt),
		WalletBalance: user.WalletBalance,
	}
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	page, pageSize := paginationParams(c)

	query := func() *gorm.DB {
		q := s.db.Model(&User{})
		if search := c.Query("search"); search != "" {
			q = q.Where("phone_number LIKE ?", "%"+search+"%")
		}
		if raw := c.Query("is_blocked"); raw != "" {
			q = q.Where("is_blocked = ?", raw == "true")
		}
		return q
	}

	var total int64
	query().Count(&total)

	var users []User
	if err := query().Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	userList := make([]models.User, 0, len(users))
	for _, user := range users {
		userList = append(userList, s.userToResponse(user))
	}

	return c.JSON(models.UserListResponse{
		Users:      userList,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calcTotalPages(total, pageSize),
	})
}

func (s *Server) getUserDetails(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user User
	if err := s.db.First(&user, userID).Error; err != nil {
		return detail(c, fiber.StatusNotFound, "User not found")
	}

	var totalDeposits, totalWithdrawals, totalWagered, totalWinnings float64
	var totalBets int64

	s.db.Model(&Deposit{}).
		Where("user_id = ? AND status = ?", user.ID, models.DepositStatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalDeposits)
	s.db.Model(&Withdrawal{}).
		Where("user_id = ? AND status = ?", user.ID, models.WithdrawalStatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalWithdrawals)
	s.db.Model(&Bet{}).Where("user_id = ?", user.ID).Count(&totalBets)
	s.db.Model(&Bet{}).Where("user_id = ?", user.ID).
		Select("COALESCE(SUM(stake_amount), 0)").Scan(&totalWagered)
	s.db.Model(&Bet{}).Where("user_id = ? AND status = ?", user.ID, models.BetStatusWon).
		Select("COALESCE(SUM(payout_amount), 0)").Scan(&totalWinnings)

	return c.JSON(models.UserDetail{
		User:             s.userToResponse(user),
		TotalDeposits:    totalDeposits,
		TotalWithdrawals: totalWithdrawals,
		TotalBets:        totalBets,
		TotalWagered:     totalWagered,
		TotalWinnings:    totalWinnings,
	})
}

func (s *Server) blockUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid user id")
	}

	reqData := new(struct {
		Reason string `json:"reason"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user User
	if err := s.db.First(&user, userID).Error; err != nil {
		return detail(c, fiber.StatusNotFound, "User not found")
	}
	if user.IsBlocked {
		return detail(c, fiber.StatusBadRequest, "User is already blocked")
	}

	reason := reqData.Reason
	if reason == "" {
		reason = "No reason provided"
	}

	user.IsBlocked = true
	if err := s.db.Save(&user).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to block user")
	}

	s.logAdminAction(c.Locals("adminId").(uint), "block_user", "user", user.ID,
		map[string]any{"reason": reason, "phone_number": user.PhoneNumber})

	return c.JSON(fiber.Map{"message": "User blocked successfully", "user_id": user.ID})
}

func (s *Server) unblockUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user User
	if err := s.db.First(&user, userID).Error; err != nil {
		return detail(c, fiber.StatusNotFound, "User not found")
	}
	if !user.IsBlocked {
		return detail(c, fiber.StatusBadRequest, "User is not blocked")
	}

	user.IsBlocked = false
	if err := s.db.Save(&user).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to unblock user")
	}

	s.logAdminAction(c.Locals("adminId").(uint), "unblock_user", "user", user.ID,
		map[string]any{"phone_number": user.PhoneNumber})

	return c.JSON(fiber.Map{"message": "User unblocked successfully", "user_id": user.ID})
}
