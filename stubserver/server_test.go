package stubserver

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betadmin/client"
	"betadmin/models"
	"betadmin/services"
	"betadmin/session"
)

// startServer runs a seeded stub backend on an ephemeral port and returns its
// base URL.
func startServer(t *testing.T) string {
	t.Helper()

	s, err := New(Options{
		JWTKey:        "test-secret",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
		SaltRound:     4,
		Quiet:         true,
	})
	require.NoError(t, err)
	require.NoError(t, s.SeedDemoData())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go s.App.Listener(ln)
	t.Cleanup(func() { s.App.Shutdown() })

	return "http://" + ln.Addr().String()
}

// loggedInClient logs in as the seeded admin and returns a ready client.
func loggedInClient(t *testing.T, baseURL string) (*client.Client, *session.Session) {
	t.Helper()

	sess := session.New(session.NewMemoryStore())
	c := client.New(baseURL, sess, nil)

	resp, err := services.NewAuthService(c).Login("admin@example.com", "admin123")
	require.NoError(t, err)
	_, err = sess.SetToken(resp.AccessToken, "admin@example.com")
	require.NoError(t, err)

	return c, sess
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	baseURL := startServer(t)
	c := client.New(baseURL, session.New(session.NewMemoryStore()), nil)

	_, err := services.NewAuthService(c).Login("admin@example.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", err.Error())
}

func TestLoginIssuesDecodableToken(t *testing.T) {
	baseURL := startServer(t)
	_, sess := loggedInClient(t, baseURL)

	assert.Equal(t, session.StateAuthenticated, sess.State())
	admin := sess.Admin()
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Role)
	assert.Equal(t, "admin@example.com", admin.Email)
}

func TestRequestsWithoutTokenRejected(t *testing.T) {
	baseURL := startServer(t)
	c := client.New(baseURL, session.New(session.NewMemoryStore()), nil)

	_, err := services.NewUserService(c).List(services.ListUsersParams{Page: 1, PageSize: 50})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.StatusCode)
}

func TestUserSearchByPhoneNumber(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	users := services.NewUserService(c)

	resp, err := users.List(services.ListUsersParams{Page: 1, PageSize: 50, Search: "0821234567"})

	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	user := resp.Users[0]
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "0821234567", user.PhoneNumber)
	assert.Equal(t, 120.50, user.WalletBalance)
	assert.False(t, user.IsBlocked)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestUserBlockedFilter(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	users := services.NewUserService(c)

	blocked := true
	resp, err := users.List(services.ListUsersParams{Page: 1, PageSize: 50, IsBlocked: &blocked})

	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, uint(9), resp.Users[0].ID)
}

func TestUserDetailCarriesLifetimeTotals(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)

	detail, err := services.NewUserService(c).Get(7)

	require.NoError(t, err)
	assert.Equal(t, "0821234567", detail.PhoneNumber)
	// Seeded: a 20.00 football bet and a 5.00 lucky wheel bet.
	assert.Equal(t, int64(2), detail.TotalBets)
	assert.Equal(t, 25.0, detail.TotalWagered)
}

func TestBlockUnblockRoundTrip(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	users := services.NewUserService(c)

	require.NoError(t, users.Block(7, "Fraudulent activity"))

	detail, err := users.Get(7)
	require.NoError(t, err)
	assert.True(t, detail.IsBlocked)

	// Blocking an already blocked user is refused.
	err = users.Block(7, "again")
	require.Error(t, err)

	require.NoError(t, users.Unblock(7))
	detail, err = users.Get(7)
	require.NoError(t, err)
	assert.False(t, detail.IsBlocked)
}

func TestApproveDepositCreditsWalletAndLeavesQueue(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	deposits := services.NewDepositService(c)
	users := services.NewUserService(c)

	pending, err := deposits.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 2)

	require.NoError(t, deposits.Approve(42))

	// The seeded 200.00 lands on the 120.50 balance.
	detail, err := users.Get(7)
	require.NoError(t, err)
	assert.Equal(t, 320.50, detail.WalletBalance)

	pending, err = deposits.Pending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.NotEqual(t, uint(42), pending[0].ID)

	// Approval is one-way.
	err = deposits.Approve(42)
	require.Error(t, err)
	assert.Equal(t, "Deposit is not pending", err.Error())
}

func TestRejectDepositLeavesWalletUntouched(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	deposits := services.NewDepositService(c)

	require.NoError(t, deposits.Reject(42, "No proof of payment"))

	detail, err := services.NewUserService(c).Get(7)
	require.NoError(t, err)
	assert.Equal(t, 120.50, detail.WalletBalance)

	resp, err := deposits.List(services.ListDepositsParams{Page: 1, PageSize: 50, Status: models.DepositStatusRejected})
	require.NoError(t, err)
	require.Len(t, resp.Deposits, 1)
	assert.Equal(t, "No proof of payment", resp.Deposits[0].RejectionReason)
}

func TestCreateDepositAutoApproveCreditsImmediately(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	deposits := services.NewDepositService(c)

	deposit, err := deposits.Create(services.CreateDepositRequest{
		UserID: 8, Amount: 100, PaymentMethod: models.PaymentMethodCapitec, AutoApprove: true,
	})

	require.NoError(t, err)
	assert.Equal(t, models.DepositStatusApproved, deposit.Status)
	assert.NotEmpty(t, deposit.ReviewedAt)

	detail, err := services.NewUserService(c).Get(8)
	require.NoError(t, err)
	assert.Equal(t, 145.0, detail.WalletBalance)
}

func TestCreateDepositDefaultsToPending(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)

	deposit, err := services.NewDepositService(c).Create(services.CreateDepositRequest{
		UserID: 8, Amount: 100, PaymentMethod: models.PaymentMethodVoucher,
	})

	require.NoError(t, err)
	assert.Equal(t, models.DepositStatusPending, deposit.Status)

	detail, err := services.NewUserService(c).Get(8)
	require.NoError(t, err)
	assert.Equal(t, 45.0, detail.WalletBalance)
}

func TestRejectWithdrawalRefundsWallet(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	withdrawals := services.NewWithdrawalService(c)

	require.NoError(t, withdrawals.Reject(21, "Bank details do not match"))

	// The held 75.00 returns to the wallet.
	detail, err := services.NewUserService(c).Get(7)
	require.NoError(t, err)
	assert.Equal(t, 195.50, detail.WalletBalance)

	pending, err := withdrawals.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApproveWithdrawalRecordsReference(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	withdrawals := services.NewWithdrawalService(c)

	require.NoError(t, withdrawals.Approve(21, "EFT-2026-001"))

	// Approval pays out held funds; the balance does not move again.
	detail, err := services.NewUserService(c).Get(7)
	require.NoError(t, err)
	assert.Equal(t, 120.50, detail.WalletBalance)

	resp, err := withdrawals.List(services.ListWithdrawalsParams{Page: 1, PageSize: 50, Status: models.WithdrawalStatusApproved})
	require.NoError(t, err)
	require.Len(t, resp.Withdrawals, 1)
	assert.Equal(t, "EFT-2026-001", resp.Withdrawals[0].PaymentReference)
}

func TestMatchListRejectsUnknownStatus(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)

	_, err := services.NewMatchService(c).List("postponed")

	require.Error(t, err)
	assert.Equal(t, "Invalid status: postponed", err.Error())
}

func TestCreateMatchAppearsInActiveList(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	matches := services.NewMatchService(c)

	resp, err := matches.Create(services.CreateMatchRequest{
		HomeTeam: "Sundowns", AwayTeam: "SuperSport",
		EventDescription: "Sundowns to win", YesOdds: 1.75, NoOdds: 2.05,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)

	active, err := matches.List(models.MatchStatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestSettleMatchPaysWinnersAndIsTerminal(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)
	matches := services.NewMatchService(c)
	bets := services.NewBetService(c)

	resp, err := matches.Settle(5, "yes")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.SettledBets)
	assert.Contains(t, resp.Message, "YES")

	// User 7 backed yes with 20.00 at 1.85 odds.
	detail, err := services.NewUserService(c).Get(7)
	require.NoError(t, err)
	assert.Equal(t, 157.50, detail.WalletBalance)

	// User 8 backed no and loses; nothing credited.
	detail, err = services.NewUserService(c).Get(8)
	require.NoError(t, err)
	assert.Equal(t, 45.0, detail.WalletBalance)

	won, err := bets.List(services.ListBetsParams{Page: 1, PageSize: 50, Status: models.BetStatusWon, BetType: models.BetTypeFootballYesNo})
	require.NoError(t, err)
	require.Len(t, won.Bets, 1)
	assert.Equal(t, 37.0, won.Bets[0].PayoutAmount)

	// A settled match cannot settle twice.
	_, err = matches.Settle(5, "no")
	require.Error(t, err)
}

func TestActiveBetsListsOnlyPending(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)

	active, err := services.NewBetService(c).Active()

	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, bet := range active {
		assert.Equal(t, models.BetStatusPending, bet.Status)
	}
}

func TestBetListResolvesUserPhone(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)

	resp, err := services.NewBetService(c).List(services.ListBetsParams{Page: 1, PageSize: 50, UserID: 7})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Bets)
	for _, bet := range resp.Bets {
		assert.Equal(t, "0821234567", bet.UserPhone)
	}
}

func TestBetStatisticsTotals(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)

	stats, err := services.NewBetService(c).Statistics(services.StatisticsParams{})

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalBets)
	assert.Equal(t, int64(2), stats.ActiveBets)
	assert.Equal(t, 50.0, stats.TotalWagered)
	assert.Equal(t, 30.0, stats.TotalPayouts)
}

func TestDashboardStatsReflectSeed(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)

	stats, err := services.NewAnalyticsService(c).Dashboard()

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.BlockedUsers)
	assert.Equal(t, int64(2), stats.PendingDeposits)
	assert.Equal(t, int64(1), stats.PendingWithdrawals)
	assert.Equal(t, int64(4), stats.TotalBets)
}

func TestRevenueBreakdownCoversEveryGame(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)

	breakdown, err := services.NewAnalyticsService(c).Revenue("", "")

	require.NoError(t, err)
	require.Len(t, breakdown, len(models.BetTypes))

	byGame := map[string]models.RevenueBreakdown{}
	for _, row := range breakdown {
		byGame[row.GameType] = row
	}
	assert.Equal(t, int64(2), byGame[models.BetTypeFootballYesNo].BetCount)
	assert.Equal(t, 30.0, byGame[models.BetTypeColorGame].TotalPayouts)
}

func TestEngagementMetrics(t *testing.T) {
	baseURL := startServer(t)
	c, _ := loggedInClient(t, baseURL)

	metrics, err := services.NewAnalyticsService(c).Users()

	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.TotalUsers)
	// Both betting users placed bets within the last week.
	assert.Equal(t, int64(2), metrics.ActiveUsers7d)
	assert.Equal(t, 2.0, metrics.AverageBetsPerUser)
}
