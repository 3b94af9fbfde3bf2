package models

// Bet statuses. Bets are read-only from the console's perspective.
const (
	BetStatusPending  = "pending"
	BetStatusWon      = "won"
	BetStatusLost     = "lost"
	BetStatusRefunded = "refunded"
)

// Bet types, one per game offered on the platform.
const (
	BetTypeLuckyWheel    = "lucky_wheel"
	BetTypeColorGame     = "color_game"
	BetTypePick3         = "pick_3"
	BetTypeFootballYesNo = "football_yesno"
)

// BetTypes lists every game type, in the order reports render them.
var BetTypes = []string{BetTypeLuckyWheel, BetTypeColorGame, BetTypePick3, BetTypeFootballYesNo}

// Bet is a single wager as listed by GET /api/admin/bets.
type Bet struct {
	ID           uint           `json:"id"`
	UserID       uint           `json:"user_id"`
	UserPhone    string         `json:"user_phone"`
	BetType      string         `json:"bet_type"`
	StakeAmount  float64        `json:"stake_amount"`
	BetData      map[string]any `json:"bet_data,omitempty"`
	Status       string         `json:"status"`
	GameResult   map[string]any `json:"game_result,omitempty"`
	Multiplier   float64        `json:"multiplier,omitempty"`
	PayoutAmount float64        `json:"payout_amount"`
	CreatedAt    string         `json:"created_at"`
	SettledAt    string         `json:"settled_at,omitempty"`
}

// BetListResponse is the paginated bet list envelope.
type BetListResponse struct {
	Bets       []Bet `json:"bets"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// BetStatistics summarises wagering over an optional type/date window.
type BetStatistics struct {
	TotalBets    int64   `json:"total_bets"`
	ActiveBets   int64   `json:"active_bets"`
	SettledBets  int64   `json:"settled_bets"`
	WonBets      int64   `json:"won_bets"`
	LostBets     int64   `json:"lost_bets"`
	TotalWagered float64 `json:"total_wagered"`
	TotalPayouts float64 `json:"total_payouts"`
	NetRevenue   float64 `json:"net_revenue"`
}
