package stubserver

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"betadmin/models"
)

func depositToResponse(d Deposit) models.Deposit {
	return models.Deposit{
		ID:              d.ID,
		UserID:          d.UserID,
		Amount:          d.Amount,
		PaymentMethod:   d.PaymentMethod,
		Status:          d.Status,
		ProofType:       d.ProofType,
		ProofValue:      d.ProofValue,
		Notes:           d.Notes,
		CreatedAt:       formatTime(d.CreatedAt),
		ReviewedAt:      formatTimePtr(d.ReviewedAt),
		RejectionReason: d.RejectionReason,
	}
}

func (s *Server) pendingDeposits(c *fiber.Ctx) error {
	var deposits []Deposit
	if err := s.db.Where("status = ?", models.DepositStatusPending).
		Order("created_at ASC").
		Limit(100).
		Find(&deposits).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to fetch deposits")
	}

	list := make([]models.Deposit, 0, len(deposits))
	for _, d := range deposits {
		list = append(list, depositToResponse(d))
	}
	return c.JSON(list)
}

func (s *Server) listDeposits(c *fiber.Ctx) error {
	page, pageSize := paginationParams(c)

	query := func() *gorm.DB {
		q := s.db.Model(&Deposit{})
		if status := c.Query("status"); status != "" {
			q = q.Where("status = ?", status)
		}
		if method := c.Query("payment_method"); method != "" {
			q = q.Where("payment_method = ?", method)
		}
		return q
	}

	var total int64
	query().Count(&total)

	var deposits []Deposit
	if err := query().Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&deposits).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to fetch deposits")
	}

	list := make([]models.Deposit, 0, len(deposits))
	for _, d := range deposits {
		list = append(list, depositToResponse(d))
	}

	return c.JSON(models.DepositListResponse{
		Deposits:   list,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calcTotalPages(total, pageSize),
	})
}

func (s *Server) createDeposit(c *fiber.Ctx) error {
	reqData := new(struct {
		UserID        uint    `json:"user_id"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"payment_method"`
		ProofType     string  `json:"proof_type"`
		ProofValue    string  `json:"proof_value"`
		Notes         string  `json:"notes"`
		AutoApprove   bool    `json:"auto_approve"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.Amount <= 0 {
		return detail(c, fiber.StatusBadRequest, "Amount must be greater than 0")
	}

	var user User
	if err := s.db.First(&user, reqData.UserID).Error; err != nil {
		return detail(c, fiber.StatusNotFound, "User not found")
	}

	deposit := Deposit{
		UserID:        reqData.UserID,
		Amount:        reqData.Amount,
		PaymentMethod: reqData.PaymentMethod,
		Status:        models.DepositStatusPending,
		ProofType:     reqData.ProofType,
		ProofValue:    reqData.ProofValue,
		Notes:         reqData.Notes,
		CreatedAt:     time.Now().UTC(),
	}

	tx := s.db.Begin()
	if err := tx.Create(&deposit).Error; err != nil {
		tx.Rollback()
		return detail(c, fiber.StatusInternalServerError, "Failed to create deposit")
	}

	if reqData.AutoApprove {
		now := time.Now().UTC()
		deposit.Status = models.DepositStatusApproved
		deposit.ReviewedAt = &now
		if err := tx.Save(&deposit).Error; err != nil {
			tx.Rollback()
			return detail(c, fiber.StatusInternalServerError, "Failed to approve deposit")
		}
		user.WalletBalance += deposit.Amount
		if err := tx.Save(&user).Error; err != nil {
			tx.Rollback()
			return detail(c, fiber.StatusInternalServerError, "Failed to credit wallet")
		}
	}
	tx.Commit()

	actionType := "create_deposit"
	if reqData.AutoApprove {
		actionType = "create_deposit_approved"
	}
	s.logAdminAction(c.Locals("adminId").(uint), actionType, "deposit", deposit.ID,
		map[string]any{"user_id": deposit.UserID, "amount": deposit.Amount, "auto_approved": reqData.AutoApprove})

	return c.Status(fiber.StatusCreated).JSON(depositToResponse(deposit))
}

func (s *Server) approveDeposit(c *fiber.Ctx) error {
	reqData := new(struct {
		DepositID uint `json:"deposit_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var deposit Deposit
	if err := s.db.First(&deposit, reqData.DepositID).Error; err != nil {
		return detail(c, fiber.StatusBadRequest, "Deposit not found")
	}
	if deposit.Status != models.DepositStatusPending {
		return detail(c, fiber.StatusBadRequest, "Deposit is not pending")
	}

	var user User
	if err := s.db.First(&user, deposit.UserID).Error; err != nil {
		return detail(c, fiber.StatusBadRequest, "User not found")
	}

	// Approval and wallet credit must land together.
	now := time.Now().UTC()
	deposit.Status = models.DepositStatusApproved
	deposit.ReviewedAt = &now
	user.WalletBalance += deposit.Amount

	tx := s.db.Begin()
	if err := tx.Save(&deposit).Error; err != nil {
		tx.Rollback()
		return detail(c, fiber.StatusInternalServerError, "Failed to approve deposit")
	}
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		return detail(c, fiber.StatusInternalServerError, "Failed to credit wallet")
	}
	tx.Commit()

	s.logAdminAction(c.Locals("adminId").(uint), "approve_deposit", "deposit", deposit.ID,
		map[string]any{"amount": deposit.Amount, "user_id": deposit.UserID})

	return c.JSON(fiber.Map{"message": "Deposit approved successfully", "deposit_id": deposit.ID})
}

func (s *Server) rejectDeposit(c *fiber.Ctx) error {
	reqData := new(struct {
		DepositID       uint   `json:"deposit_id"`
		RejectionReason string `json:"rejection_reason"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.RejectionReason == "" {
		return detail(c, fiber.StatusBadRequest, "Rejection reason is required")
	}

	var deposit Deposit
	if err := s.db.First(&deposit, reqData.DepositID).Error; err != nil {
		return detail(c, fiber.StatusBadRequest, "Deposit not found")
	}
	if deposit.Status != models.DepositStatusPending {
		return detail(c, fiber.StatusBadRequest, "Deposit is not pending")
	}

	now := time.Now().UTC()
	deposit.Status = models.DepositStatusRejected
	deposit.ReviewedAt = &now
	deposit.RejectionReason = reqData.RejectionReason
	if err := s.db.Save(&deposit).Error; err != nil {
		return detail(c, fiber.StatusInternalServerError, "Failed to reject deposit")
	}

	s.logAdminAction(c.Locals("adminId").(uint), "reject_deposit", "deposit", deposit.ID,
		map[string]any{"amount": deposit.Amount, "user_id": deposit.UserID, "reason": reqData.RejectionReason})

	return c.JSON(fiber.Map{"message": "Deposit rejected successfully", "deposit_id": deposit.ID})
}
