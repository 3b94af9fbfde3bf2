package console

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"betadmin/models"
)

// FormatAmount renders a rand amount the way the dashboard did.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("R %.2f", amount)
}

// UserStatus renders the blocked flag as a label.
func UserStatus(user models.User) string {
	if user.IsBlocked {
		return "Blocked"
	}
	return "Active"
}

// formatTimestamp shortens an RFC3339 timestamp for table display. Unparseable
// values pass through unchanged.
func formatTimestamp(raw string) string {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("2006-01-02 15:04")
	}
	return raw
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// RenderUsersTable writes the Users screen table.
func RenderUsersTable(w io.Writer, users []models.User) {
	table := newTable(w)
	fmt.Fprintln(table, "ID\tPHONE\tBALANCE\tSTATUS\tJOINED")
	for _, user := range users {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\n",
			user.ID, user.PhoneNumber, FormatAmount(user.WalletBalance),
			UserStatus(user), formatTimestamp(user.CreatedAt))
	}
	table.Flush()
}

// RenderDepositsTable writes the Deposits screen table.
func RenderDepositsTable(w io.Writer, deposits []models.Deposit) {
	table := newTable(w)
	fmt.Fprintln(table, "ID\tUSER\tAMOUNT\tMETHOD\tSTATUS\tPROOF\tCREATED")
	for _, d := range deposits {
		proof := d.ProofValue
		if proof == "" {
			proof = "-"
		}
		fmt.Fprintf(table, "%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.UserID, FormatAmount(d.Amount), d.PaymentMethod, d.Status,
			proof, formatTimestamp(d.CreatedAt))
	}
	table.Flush()
}

// RenderWithdrawalsTable writes the Withdrawals screen table.
func RenderWithdrawalsTable(w io.Writer, withdrawals []models.Withdrawal) {
	table := newTable(w)
	fmt.Fprintln(table, "ID\tUSER\tAMOUNT\tBANK\tACCOUNT\tHOLDER\tSTATUS\tCREATED")
	for _, wd := range withdrawals {
		fmt.Fprintf(table, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			wd.ID, wd.UserID, FormatAmount(wd.Amount), wd.BankName, wd.AccountNumber,
			wd.AccountHolder, wd.Status, formatTimestamp(wd.CreatedAt))
	}
	table.Flush()
}

// RenderMatchesTable writes the Matches screen table.
func RenderMatchesTable(w io.Writer, matches []models.Match) {
	table := newTable(w)
	fmt.Fprintln(table, "ID\tEVENT\tYES\tNO\tSTATUS\tRESULT")
	for _, m := range matches {
		result := m.Result
		if result == "" {
			result = "-"
		}
		fmt.Fprintf(table, "%d\t%s vs %s: %s\t%.2f\t%.2f\t%s\t%s\n",
			m.ID, m.HomeTeam, m.AwayTeam, m.EventDescription,
			m.YesOdds, m.NoOdds, m.Status, result)
	}
	table.Flush()
}

// RenderBetsTable writes the Bets screen table.
func RenderBetsTable(w io.Writer, bets []models.Bet) {
	table := newTable(w)
	fmt.Fprintln(table, "ID\tUSER\tTYPE\tSTAKE\tSTATUS\tPAYOUT\tPLACED")
	for _, bet := range bets {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			bet.ID, bet.UserPhone, bet.BetType, FormatAmount(bet.StakeAmount),
			bet.Status, FormatAmount(bet.PayoutAmount), formatTimestamp(bet.CreatedAt))
	}
	table.Flush()
}

// RenderDashboard writes the headline stat cards.
func RenderDashboard(w io.Writer, stats *models.DashboardStats) {
	if stats == nil {
		fmt.Fprintln(w, "Dashboard statistics unavailable.")
		return
	}
	table := newTable(w)
	fmt.Fprintf(table, "Users\t%d total, %d active, %d blocked\n",
		stats.TotalUsers, stats.ActiveUsers, stats.BlockedUsers)
	fmt.Fprintf(table, "Deposits\t%s approved, %d pending\n",
		FormatAmount(stats.TotalDeposits), stats.PendingDeposits)
	fmt.Fprintf(table, "Withdrawals\t%s approved, %d pending\n",
		FormatAmount(stats.TotalWithdrawals), stats.PendingWithdrawals)
	fmt.Fprintf(table, "Bets\t%d total, %d active\n", stats.TotalBets, stats.ActiveBets)
	fmt.Fprintf(table, "Wagered\t%s\n", FormatAmount(stats.TotalWagered))
	fmt.Fprintf(table, "Payouts\t%s\n", FormatAmount(stats.TotalPayouts))
	fmt.Fprintf(table, "Net revenue\t%s\n", FormatAmount(stats.NetRevenue))
	table.Flush()
}

// RenderRevenue writes the per-game revenue breakdown.
func RenderRevenue(w io.Writer, breakdown []models.RevenueBreakdown) {
	if len(breakdown) == 0 {
		fmt.Fprintln(w, "Revenue breakdown unavailable.")
		return
	}
	table := newTable(w)
	fmt.Fprintln(table, "GAME\tBETS\tWAGERED\tPAYOUTS\tNET")
	for _, row := range breakdown {
		fmt.Fprintf(table, "%s\t%d\t%s\t%s\t%s\n",
			row.GameType, row.BetCount, FormatAmount(row.TotalWagered),
			FormatAmount(row.TotalPayouts), FormatAmount(row.NetRevenue))
	}
	table.Flush()
}

// RenderEngagement writes the signup and activity cohorts.
func RenderEngagement(w io.Writer, metrics *models.UserEngagementMetrics) {
	if metrics == nil {
		fmt.Fprintln(w, "Engagement metrics unavailable.")
		return
	}
	table := newTable(w)
	fmt.Fprintf(table, "Active users\t%d (24h), %d (7d), %d (30d)\n",
		metrics.ActiveUsers24h, metrics.ActiveUsers7d, metrics.ActiveUsers30d)
	fmt.Fprintf(table, "New users\t%d (today), %d (7d), %d (30d)\n",
		metrics.NewUsersToday, metrics.NewUsers7d, metrics.NewUsers30d)
	fmt.Fprintf(table, "Avg bets/user\t%.1f\n", metrics.AverageBetsPerUser)
	fmt.Fprintf(table, "Avg deposit/user\t%s\n", FormatAmount(metrics.AverageDepositPerUser))
	table.Flush()
}
