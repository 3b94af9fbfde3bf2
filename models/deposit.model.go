package models

// Deposit request statuses. Transitions are one-way and terminal:
// pending -> approved or pending -> rejected.
const (
	DepositStatusPending  = "pending"
	DepositStatusApproved = "approved"
	DepositStatusRejected = "rejected"
	DepositStatusExpired  = "expired"
)

// Payment methods accepted for deposits.
const (
	PaymentMethodVoucher      = "1voucher"
	PaymentMethodSnapscan     = "snapscan"
	PaymentMethodCapitec      = "capitec"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodOther        = "other"
)

// Deposit is a money-in request awaiting or past review.
type Deposit struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"user_id"`
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"payment_method"`
	Status          string  `json:"status"`
	ProofType       string  `json:"proof_type,omitempty"`
	ProofValue      string  `json:"proof_value,omitempty"`
	Notes           string  `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	ReviewedAt      string  `json:"reviewed_at,omitempty"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
}

// DepositListResponse is the paginated deposit list envelope.
type DepositListResponse struct {
	Deposits   []Deposit `json:"deposits"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}
