package stubserver

import (
	"time"

	"betadmin/models"
)

// SeedDemoData loads a small, deterministic data set: a few users with
// wallets, pending money movement on both sides, one open match and a spread
// of bets. Used by the local runner and by the integration tests.
func (s *Server) SeedDemoData() error {
	now := time.Now().UTC()

	users := []User{
		{ID: 7, PhoneNumber: "0821234567", IsActive: true, WalletBalance: 120.50, CreatedAt: now.AddDate(0, -2, 0)},
		{ID: 8, PhoneNumber: "0837654321", IsActive: true, WalletBalance: 45.00, CreatedAt: now.AddDate(0, -1, 0)},
		{ID: 9, PhoneNumber: "0849998877", IsActive: true, IsBlocked: true, WalletBalance: 0, CreatedAt: now.AddDate(0, 0, -10)},
	}
	for _, user := range users {
		if err := s.db.Create(&user).Error; err != nil {
			return err
		}
	}

	deposits := []Deposit{
		{ID: 42, UserID: 7, Amount: 200, PaymentMethod: models.PaymentMethodBankTransfer,
			Status: models.DepositStatusPending, ProofType: "reference_number", ProofValue: "FNB123456",
			CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 43, UserID: 8, Amount: 50, PaymentMethod: models.PaymentMethodVoucher,
			Status: models.DepositStatusPending, CreatedAt: now.Add(-1 * time.Hour)},
	}
	for _, deposit := range deposits {
		if err := s.db.Create(&deposit).Error; err != nil {
			return err
		}
	}

	withdrawal := Withdrawal{
		ID: 21, UserID: 7, Amount: 75, WithdrawalMethod: "bank_transfer",
		BankName: "Capitec", AccountNumber: "1234567890", AccountHolder: "T Ndlovu",
		Status: models.WithdrawalStatusPending, CreatedAt: now.Add(-3 * time.Hour),
	}
	if err := s.db.Create(&withdrawal).Error; err != nil {
		return err
	}

	match := Match{
		ID: 5, HomeTeam: "Kaizer Chiefs", AwayTeam: "Orlando Pirates",
		EventDescription: "Kaizer Chiefs to win", YesOdds: 1.85, NoOdds: 1.95,
		Status: models.MatchStatusActive, CreatedAt: now.Add(-6 * time.Hour),
	}
	if err := s.db.Create(&match).Error; err != nil {
		return err
	}

	bets := []Bet{
		{UserID: 7, BetType: models.BetTypeFootballYesNo, StakeAmount: 20, MatchID: 5,
			Selection: models.MatchResultYes, Status: models.BetStatusPending,
			BetData: `{"match_id":5,"selection":"yes"}`, CreatedAt: now.Add(-5 * time.Hour)},
		{UserID: 8, BetType: models.BetTypeFootballYesNo, StakeAmount: 10, MatchID: 5,
			Selection: models.MatchResultNo, Status: models.BetStatusPending,
			BetData: `{"match_id":5,"selection":"no"}`, CreatedAt: now.Add(-4 * time.Hour)},
		{UserID: 7, BetType: models.BetTypeLuckyWheel, StakeAmount: 5,
			Status: models.BetStatusLost, CreatedAt: now.AddDate(0, 0, -2)},
		{UserID: 8, BetType: models.BetTypeColorGame, StakeAmount: 15, Multiplier: 2,
			PayoutAmount: 30, Status: models.BetStatusWon, CreatedAt: now.AddDate(0, 0, -1)},
	}
	for _, bet := range bets {
		if err := s.db.Create(&bet).Error; err != nil {
			return err
		}
	}

	return nil
}
