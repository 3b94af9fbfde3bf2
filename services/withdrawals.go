package services

import (
	"net/url"
	"strconv"

	"betadmin/client"
	"betadmin/models"
)

// WithdrawalService maps withdrawal review onto the backend withdrawal endpoints.
type WithdrawalService struct {
	client *client.Client
}

func NewWithdrawalService(c *client.Client) *WithdrawalService {
	return &WithdrawalService{client: c}
}

// ListWithdrawalsParams are the supported withdrawal list filters.
type ListWithdrawalsParams struct {
	Page     int
	PageSize int
	Status   string
}

// Pending fetches the full pending set in one unpaginated call.
func (s *WithdrawalService) Pending() ([]models.Withdrawal, error) {
	var resp []models.Withdrawal
	if err := s.client.Get("/api/admin/withdrawals/pending", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// List fetches one page of withdrawals across all statuses.
func (s *WithdrawalService) List(params ListWithdrawalsParams) (*models.WithdrawalListResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(params.Page))
	query.Set("page_size", strconv.Itoa(params.PageSize))
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	var resp models.WithdrawalListResponse
	if err := s.client.Get("/api/admin/withdrawals", query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Approve approves a pending withdrawal, recording the outbound payment reference.
func (s *WithdrawalService) Approve(withdrawalID uint, paymentReference string) error {
	body := map[string]any{
		"withdrawal_id":     withdrawalID,
		"payment_reference": paymentReference,
	}
	return s.client.Post("/api/admin/withdrawals/approve", body, nil)
}

// Reject rejects a pending withdrawal with a reason; the held funds return to
// the user's wallet server-side.
func (s *WithdrawalService) Reject(withdrawalID uint, reason string) error {
	body := map[string]any{
		"withdrawal_id":    withdrawalID,
		"rejection_reason": reason,
	}
	return s.client.Post("/api/admin/withdrawals/reject", body, nil)
}
