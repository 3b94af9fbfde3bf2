package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betadmin/client"
	"betadmin/models"
	"betadmin/session"
)

type capturedRequest struct {
	method string
	path   string
	query  url.Values
	body   map[string]any
}

// newCaptureServer records every request and answers with the given JSON body.
func newCaptureServer(t *testing.T, responseBody string) (*client.Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.Query()
		captured.body = nil
		if r.Body != nil {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				captured.body = body
			}
		}
		w.Write([]byte(responseBody))
	}))
	t.Cleanup(srv.Close)

	return client.New(srv.URL, session.New(session.NewMemoryStore()), nil), captured
}

func TestAuthLoginPostsCredentials(t *testing.T) {
	c, captured := newCaptureServer(t, `{"access_token":"tok","token_type":"bearer"}`)

	resp, err := NewAuthService(c).Login("admin@example.com", "admin123")

	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/api/admin/login", captured.path)
	assert.Equal(t, "admin@example.com", captured.body["email"])
	assert.Equal(t, "admin123", captured.body["password"])
}

func TestUsersListOmitsAbsentFilters(t *testing.T) {
	c, captured := newCaptureServer(t, `{"users":[],"total":0,"page":1,"page_size":50,"total_pages":1}`)

	_, err := NewUserService(c).List(ListUsersParams{Page: 1, PageSize: 50})

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/users", captured.path)
	assert.Equal(t, "1", captured.query.Get("page"))
	assert.Equal(t, "50", captured.query.Get("page_size"))
	assert.False(t, captured.query.Has("search"))
	assert.False(t, captured.query.Has("is_blocked"))
}

func TestUsersListCarriesFilters(t *testing.T) {
	c, captured := newCaptureServer(t, `{"users":[],"total":0,"page":1,"page_size":50,"total_pages":1}`)

	blocked := true
	_, err := NewUserService(c).List(ListUsersParams{Page: 2, PageSize: 25, Search: "0821234567", IsBlocked: &blocked})

	require.NoError(t, err)
	assert.Equal(t, "2", captured.query.Get("page"))
	assert.Equal(t, "0821234567", captured.query.Get("search"))
	assert.Equal(t, "true", captured.query.Get("is_blocked"))
}

func TestUsersBlockPostsReason(t *testing.T) {
	c, captured := newCaptureServer(t, `{"message":"User blocked successfully","user_id":7}`)

	err := NewUserService(c).Block(7, "Fraudulent activity")

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/users/7/block", captured.path)
	assert.Equal(t, "Fraudulent activity", captured.body["reason"])
}

func TestDepositsPendingPathAndShape(t *testing.T) {
	c, captured := newCaptureServer(t, `[{"id":42,"user_id":7,"amount":200,"status":"pending"}]`)

	deposits, err := NewDepositService(c).Pending()

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/deposits/pending", captured.path)
	require.Len(t, deposits, 1)
	assert.Equal(t, uint(42), deposits[0].ID)
	assert.Equal(t, models.DepositStatusPending, deposits[0].Status)
}

func TestDepositsApproveBody(t *testing.T) {
	c, captured := newCaptureServer(t, `{"message":"Deposit approved successfully","deposit_id":42}`)

	err := NewDepositService(c).Approve(42)

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/deposits/approve", captured.path)
	assert.Equal(t, float64(42), captured.body["deposit_id"])
}

func TestDepositsCreateCarriesAutoApprove(t *testing.T) {
	c, captured := newCaptureServer(t, `{"id":50,"user_id":7,"amount":100,"status":"approved"}`)

	deposit, err := NewDepositService(c).Create(CreateDepositRequest{
		UserID: 7, Amount: 100, PaymentMethod: models.PaymentMethodBankTransfer, AutoApprove: true,
	})

	require.NoError(t, err)
	assert.Equal(t, models.DepositStatusApproved, deposit.Status)
	assert.Equal(t, true, captured.body["auto_approve"])
	assert.Equal(t, float64(7), captured.body["user_id"])
}

func TestWithdrawalsApproveBody(t *testing.T) {
	c, captured := newCaptureServer(t, `{"message":"Withdrawal approved successfully","withdrawal_id":21}`)

	err := NewWithdrawalService(c).Approve(21, "EFT-001")

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/withdrawals/approve", captured.path)
	assert.Equal(t, float64(21), captured.body["withdrawal_id"])
	assert.Equal(t, "EFT-001", captured.body["payment_reference"])
}

func TestWithdrawalsRejectBody(t *testing.T) {
	c, captured := newCaptureServer(t, `{"message":"Withdrawal rejected successfully","withdrawal_id":21}`)

	err := NewWithdrawalService(c).Reject(21, "Bank details mismatch")

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/withdrawals/reject", captured.path)
	assert.Equal(t, "Bank details mismatch", captured.body["rejection_reason"])
}

func TestMatchesListStatusFilter(t *testing.T) {
	c, captured := newCaptureServer(t, `[]`)

	_, err := NewMatchService(c).List(models.MatchStatusActive)

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/matches", captured.path)
	assert.Equal(t, "active", captured.query.Get("status"))
}

func TestMatchesListNoStatusOmitsParam(t *testing.T) {
	c, captured := newCaptureServer(t, `[]`)

	_, err := NewMatchService(c).List("")

	require.NoError(t, err)
	assert.False(t, captured.query.Has("status"))
}

func TestMatchesSettlePathAndBody(t *testing.T) {
	c, captured := newCaptureServer(t, `{"success":true,"match_id":5,"result":"yes","settled_bets":2,"message":"Match settled as YES. 2 bets processed."}`)

	resp, err := NewMatchService(c).Settle(5, "yes")

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/matches/5/settle", captured.path)
	assert.Equal(t, "yes", captured.body["result"])
	assert.Equal(t, 2, resp.SettledBets)
}

func TestBetsListOmitsZeroFilters(t *testing.T) {
	c, captured := newCaptureServer(t, `{"bets":[],"total":0,"page":1,"page_size":50,"total_pages":1}`)

	_, err := NewBetService(c).List(ListBetsParams{Page: 1, PageSize: 50})

	require.NoError(t, err)
	for _, key := range []string{"bet_type", "status", "user_id", "date_from", "date_to"} {
		assert.False(t, captured.query.Has(key), "expected %s to be omitted", key)
	}
}

func TestBetsStatisticsQuery(t *testing.T) {
	c, captured := newCaptureServer(t, `{"total_bets":4,"total_wagered":50}`)

	stats, err := NewBetService(c).Statistics(StatisticsParams{
		BetType: models.BetTypeColorGame, DateFrom: "2026-08-01", DateTo: "2026-08-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/bets/statistics", captured.path)
	assert.Equal(t, "color_game", captured.query.Get("bet_type"))
	assert.Equal(t, int64(4), stats.TotalBets)
}

func TestAnalyticsRevenueDates(t *testing.T) {
	c, captured := newCaptureServer(t, `[{"game_type":"color_game","bet_count":1}]`)

	breakdown, err := NewAnalyticsService(c).Revenue("2026-08-01", "2026-08-31")

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/analytics/revenue", captured.path)
	assert.Equal(t, "2026-08-01", captured.query.Get("date_from"))
	require.Len(t, breakdown, 1)
	assert.Equal(t, models.BetTypeColorGame, breakdown[0].GameType)
}
