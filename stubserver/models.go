package stubserver

import "time"

// Database records for the stub backend. This is a development fixture, not
// the production ledger: balances live directly on the user row.

type AdminUser struct {
	ID             uint   `gorm:"primaryKey"`
	Email          string `gorm:"unique;not null"`
	HashedPassword string `gorm:"not null"`
	Role           string `gorm:"default:'admin'"`
	IsActive       bool   `gorm:"default:true"`
	LastLogin      *time.Time
}

type User struct {
	ID            uint   `gorm:"primaryKey"`
	PhoneNumber   string `gorm:"unique;not null"`
	IsActive      bool   `gorm:"default:true"`
	IsBlocked     bool   `gorm:"default:false"`
	WalletBalance float64
	CreatedAt     time.Time
}

type Deposit struct {
	ID              uint `gorm:"primaryKey"`
	UserID          uint `gorm:"index;not null"`
	Amount          float64
	PaymentMethod   string
	Status          string `gorm:"default:'pending';index"`
	ProofType       string
	ProofValue      string
	Notes           string
	RejectionReason string
	CreatedAt       time.Time
	ReviewedAt      *time.Time
}

type Withdrawal struct {
	ID               uint `gorm:"primaryKey"`
	UserID           uint `gorm:"index;not null"`
	Amount           float64
	WithdrawalMethod string `gorm:"default:'bank_transfer'"`
	BankName         string
	AccountNumber    string
	AccountHolder    string
	Status           string `gorm:"default:'pending';index"`
	PaymentReference string
	RejectionReason  string
	CreatedAt        time.Time
	ReviewedAt       *time.Time
}

type Match struct {
	ID               uint `gorm:"primaryKey"`
	HomeTeam         string
	AwayTeam         string
	EventDescription string
	YesOdds          float64
	NoOdds           float64
	Status           string `gorm:"default:'active';index"`
	Result           string
	CreatedAt        time.Time
	SettledAt        *time.Time
}

type Bet struct {
	ID           uint `gorm:"primaryKey"`
	UserID       uint `gorm:"index;not null"`
	BetType      string
	StakeAmount  float64
	BetData      string
	MatchID      uint   `gorm:"index"`
	Selection    string // yes/no for football bets
	Status       string `gorm:"default:'pending';index"`
	GameResult   string
	Multiplier   float64
	PayoutAmount float64
	CreatedAt    time.Time
	SettledAt    *time.Time
}

// AdminActionLog records every admin mutation for audit purposes.
type AdminActionLog struct {
	ID         string `gorm:"primaryKey"`
	AdminID    uint   `gorm:"index"`
	ActionType string
	EntityType string
	EntityID   uint
	Details    string
	CreatedAt  time.Time
}
