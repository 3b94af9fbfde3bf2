package models

// AdminSession is the identity shown in the console header. It is decoded
// client-side from the bearer token for display only; authorization stays
// with the backend.
type AdminSession struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is returned by POST /api/admin/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ActionResponse is the generic body returned by mutating admin endpoints.
type ActionResponse struct {
	Message      string `json:"message"`
	UserID       uint   `json:"user_id,omitempty"`
	DepositID    uint   `json:"deposit_id,omitempty"`
	WithdrawalID uint   `json:"withdrawal_id,omitempty"`
}
