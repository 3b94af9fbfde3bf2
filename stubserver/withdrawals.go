package stubserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betadmin/models"
)

func withdrawalToResponse(w Withdrawal) models.Withdrawal {
	return models.Withdrawal{
		ID:               w.ID,
		UserID:           w.UserID,
		Amount:           w.Amount,
		WithdrawalMethod: w.WithdrawalMethod,
		BankName:         w.BankName,
		AccountNumber:    w.AccountNumber,
		AccountHolder:    w.AccountHolder,
		Status:           w.Status,
		PaymentReference: w.PaymentReference,
		CreatedAt:        formatTime(w.CreatedAt),
		ReviewedAt:       formatTimePtr(w.ReviewedAt),
		RejectionReason:  w.RejectionReason,
	}
}

func (s *Server) pendingWithdrawals(c *fiber.Ctx) error {
	var withdrawals []Withdrawal
	if err := s.db.Where("status = ?", models.WithdrawalStatusPending).
		Order("created_at ASC").
		Limit(100).
		Find(&withdrawals).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to fetch withdrawals")
	}

	list := make([]models.Withdrawal, 0, len(withdrawals))
	for _, w := range withdrawals {
		list = append(list, withdrawalToResponse(w))
	}
	return c.JSON(list)
}

func (s *Server) listWithdrawals(c *fiber.Ctx) error {
	page, pageSize := paginationParams(c)

	query := func() *gorm.DB {
		q := s.db.Model(&Withdrawal{})
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		return q
	}

	var total int64
	query().Count(&total)

	var withdrawals []Withdrawal
	if err := query().Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&withdrawals).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to fetch withdrawals")
	}

	list := make([]models.Withdrawal, 0, len(withdrawals))
	for _, w := range withdrawals {
		list = append(list, withdrawalToResponse(w))
	}

	return c.JSON(models.WithdrawalListResponse{
		Withdrawals: list,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  calcTotalPages(total, pageSize),
	})
}

func (s *Server) approveWithdrawal(c *fiber.Ctx) error {
	reqData := new(struct {
		WithdrawalID     uint   `json:"withdrawal_id"`
		PaymentReference string `json:"payment_reference"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var withdrawal Withdrawal
	if err := s.db.First(&withdrawal, reqData.WithdrawalID).Error; err != nil {
		return detail(c, fiber.StatusBadRequest, "Withdrawal not found")
	}
	if withdrawal.Status != models.WithdrawalStatusPending {
		return detail(c, fiber.StatusBadRequest, "Withdrawal is not pending")
	}

	// The wallet was debited when the request was created; approval just
	// marks it paid out.
	now := time.Now().UTC()
	withdrawal.Status = models.WithdrawalStatusApproved
	withdrawal.ReviewedAt = &now
	withdrawal.PaymentReference = reqData.PaymentReference
	if err := s.db.Save(&withdrawal).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to approve withdrawal")
	}

	s.logAdminAction(c.Locals("adminId").(uint), "approve_withdrawal", "withdrawal", withdrawal.ID,
		map[string]any{"amount": withdrawal.Amount, "user_id": withdrawal.UserID, "payment_reference": reqData.PaymentReference})

	return c.JSON(fiber.Map{"message": "Withdrawal approved successfully", "withdrawal_id": withdrawal.ID})
}

func (s *Server) rejectWithdrawal(c *fiber.Ctx) error {
	reqData := new(struct {
		WithdrawalID    uint   `json:"withdrawal_id"`
		RejectionReason string `json:"rejection_reason"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.RejectionReason == "" {
		return detail(c, fiber.StatusBadRequest, "Rejection reason is required")
	}

	var withdrawal Withdrawal
	if err := s.db.First(&withdrawal, reqData.WithdrawalID).Error; err != nil {
		return detail(c, fiber.StatusBadRequest, "Withdrawal not found")
	}
	if withdrawal.Status != models.WithdrawalStatusPending {
		return detail(c, fiber.StatusBadRequest, "Withdrawal is not pending")
	}

	var user User
	if err := s.db.First(&user, withdrawal.UserID).Error; err != nil {
		return detail(c, fiber.StatusBadRequest, "User not found")
	}

	// Rejection returns the held funds to the wallet.
	now := time.Now().UTC()
	withdrawal.Status = models.WithdrawalStatusRejected
	withdrawal.ReviewedAt = &now
	withdrawal.RejectionReason = reqData.RejectionReason
	user.WalletBalance += withdrawal.Amount

	tx := s.db.Begin()
	if err := tx.Save(&withdrawal).Error; err != nil {
		tx.Rollback()
		return detail(c, fiber.StatusInternalServerError, "Failed to reject withdrawal")
	}
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return detail(c, fiber.StatusInternalServerError, "Failed to refund wallet")
	}
	tx.Commit()

	s.logAdminAction(c.Locals("adminId").(uint), "reject_withdrawal", "withdrawal", withdrawal.ID,
		map[string]any{"amount": withdrawal.Amount, "user_id": withdrawal.UserID, "reason": reqData.RejectionReason})

	return c.JSON(fiber.Map{"message": "Withdrawal rejected successfully", "withdrawal_id": withdrawal.ID})
}
