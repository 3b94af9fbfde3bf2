package models

// User is a platform player as listed by GET /api/admin/users.
type User struct {
	ID            uint    `json:"id"`
	PhoneNumber   string  `json:"phone_number"`
	IsActive      bool    `json:"is_active"`
	IsBlocked     bool    `json:"is_blocked"`
	CreatedAt     string  `json:"created_at"`
	WalletBalance float64 `json:"wallet_balance"`
}

// UserDetail extends User with lifetime totals, as returned by
// GET /api/admin/users/{id}.
type UserDetail struct {
	User
	TotalDeposits    float64 `json:"total_deposits"`
	TotalWithdrawals float64 `json:"total_withdrawals"`
	TotalBets        int64   `json:"total_bets"`
	TotalWagered     float64 `json:"total_wagered"`
	TotalWinnings    float64 `json:"total_winnings"`
}

// UserListResponse is the paginated user list envelope.
type UserListResponse struct {
	Users      []User `json:"users"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}
