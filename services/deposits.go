package services

import (
	"net/url"
	"strconv"

	"betadmin/client"
	"betadmin/models"
)

// DepositService maps deposit review onto the backend deposit endpoints.
type DepositService struct {
	client *client.Client
}

func NewDepositService(c *client.Client) *DepositService {
	return &DepositService{client: c}
}

// CreateDepositRequest is the body of an admin-initiated deposit, typically
// entered when a bank transfer with a reference number arrives.
type CreateDepositRequest struct {
	UserID        uint    `json:"user_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	ProofType     string  `json:"proof_type,omitempty"`
	ProofValue    string  `json:"proof_value,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	AutoApprove   bool    `json:"auto_approve"`
}

// ListDepositsParams are the supported deposit list filters.
type ListDepositsParams struct {
	Page          int
	PageSize      int
	Status        string
	PaymentMethod string
}

// Pending fetches the full pending set in one unpaginated call.
func (s *DepositService) Pending() ([]models.Deposit, error) {
	var resp []models.Deposit
	if err := s.client.Get("/api/admin/deposits/pending", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// List fetches one page of deposits across all statuses.
func (s *DepositService) List(params ListDepositsParams) (*models.DepositListResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("page_size", strconv.Itoa(params.PageSize))
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.PaymentMethod != "" {
		query.Set("payment_method", params.PaymentMethod)
	}

	var resp models.DepositListResponse
	if err := s.client.Get("/api/admin/deposits", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create records a new deposit on behalf of a user.
func (s *DepositService) Create(req CreateDepositRequest) (*models.Deposit, error) {
	var resp models.Deposit
	if err := s.client.Post("/api/admin/deposits", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Approve approves a pending deposit, crediting the user's wallet server-side.
func (s *DepositService) Approve(depositID uint) error {
	body := map[string]uint{"deposit_id": depositID}
	return s.client.Post("/api/admin/deposits/approve", body, nil)
}

// Reject rejects a pending deposit with a reason.
func (s *DepositService) Reject(depositID uint, reason string) error {
	body := map[string]any{
		"deposit_id":       depositID,
		"rejection_reason": reason,
	}
	return s.client.Post("/api/admin/deposits/reject", body, nil)
}
