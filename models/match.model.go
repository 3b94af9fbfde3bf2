package models

// Match statuses. Settlement is one-way and terminal.
const (
	MatchStatusActive    = "active"
	MatchStatusSettled   = "settled"
	MatchStatusCancelled = "cancelled"
)

// Binary match results.
const (
	MatchResultYes = "yes"
	MatchResultNo  = "no"
)

// Match is a football yes/no event offered for betting.
type Match struct {
	ID               uint    `json:"id"`
	HomeTeam         string  `json:"home_team"`
	AwayTeam         string  `json:"away_team"`
	EventDescription string  `json:"event_description"`
	YesOdds          float64 `json:"yes_odds"`
	NoOdds           float64 `json:"no_odds"`
	Status           string  `json:"status"`
	Result           string  `json:"result,omitempty"`
	CreatedAt        string  `json:"created_at"`
	SettledAt        string  `json:"settled_at,omitempty"`
}

// CreateMatchResponse is returned by POST /api/admin/matches.
type CreateMatchResponse struct {
	Success bool   `json:"success"`
	MatchID uint   `json:"match_id"`
	Message string `json:"message"`
}

// SettleMatchResponse is returned by POST /api/admin/matches/{id}/settle.
type SettleMatchResponse struct {
	Success     bool   `json:"success"`
	MatchID     uint   `json:"match_id"`
	Result      string `json:"result"`
	SettledBets int    `json:"settled_bets"`
	Message     string `json:"message"`
}
