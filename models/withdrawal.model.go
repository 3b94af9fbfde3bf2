package models

// Withdrawal request statuses, same transition shape as deposits.
const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusApproved  = "approved"
	WithdrawalStatusRejected  = "rejected"
	WithdrawalStatusCancelled = "cancelled"
)

// Withdrawal is a money-out request awaiting or past review.
type Withdrawal struct {
	ID               uint    `json:"id"`
	UserID           uint    `json:"user_id"`
	Amount           float64 `json:"amount"`
	WithdrawalMethod string  `json:"withdrawal_method,omitempty"`
	BankName         string  `json:"bank_name"`
	AccountNumber    string  `json:"account_number"`
	AccountHolder    string  `json:"account_holder"`
	Status           string  `json:"status"`
	PaymentReference string  `json:"payment_reference,omitempty"`
	CreatedAt        string  `json:"created_at"`
	ReviewedAt       string  `json:"reviewed_at,omitempty"`
	RejectionReason  string  `json:"rejection_reason,omitempty"`
}

// WithdrawalListResponse is the paginated withdrawal list envelope.
type WithdrawalListResponse struct {
	Withdrawals []Withdrawal `json:"withdrawals"`
	Total       int64        `json:"total"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	TotalPages  int          `json:"total_pages"`
}
