// Package console is the interactive terminal front-end. Each resource screen
// wraps its controller: the controller owns list state and review actions, the
// console only parses commands and renders tables.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"betadmin/controllers"
	"betadmin/models"
	"betadmin/session"
)

// Controllers bundles the resource screens the console drives.
type Controllers struct {
	Users       *controllers.UsersController
	Deposits    *controllers.DepositsController
	Withdrawals *controllers.WithdrawalsController
	Matches     *controllers.MatchesController
	Bets        *controllers.BetsController
	Reports     *controllers.ReportsController
}

// Factory builds the resource controllers once a session exists. Deferred
// because several controllers fetch on construction, which would 401 before
// login.
type Factory func(notifier controllers.Notifier) Controllers

// Console runs the command loop on a reader/writer pair, stdin and stdout in
// production and buffers in tests.
type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	auth  *controllers.AuthController
	build Factory
	ctl   Controllers
	sess  *session.Session

	// Set by the client's unauthorized hook; checked before every prompt so
	// an expired token drops straight back to the login screen.
	loginRequired atomic.Bool

	cron *cron.Cron
}

func New(in io.Reader, out io.Writer, sess *session.Session, auth *controllers.AuthController, build Factory) *Console {
	return &Console{
		in:    bufio.NewScanner(in),
		out:   out,
		auth:  auth,
		build: build,
		sess:  sess,
	}
}

// ForceLogin is wired as the API client's unauthorized hook.
func (c *Console) ForceLogin() {
	c.loginRequired.Store(true)
}

// Notifier returns a toast sink that prints into the console output.
func (c *Console) Notifier() controllers.Notifier {
	return consoleNotifier{out: c.out}
}

type consoleNotifier struct {
	out io.Writer
}

func (n consoleNotifier) Success(msg string) { fmt.Fprintf(n.out, "[OK] %s\n", msg) }
func (n consoleNotifier) Error(msg string)   { fmt.Fprintf(n.out, "[ERROR] %s\n", msg) }

// Run drives the whole session: login first, then the screen loop until quit
// or EOF.
func (c *Console) Run() error {
	if c.sess.State() != session.StateAuthenticated {
		if !c.loginLoop() {
			return nil
		}
	}
	if admin := c.sess.Admin(); admin != nil {
		fmt.Fprintf(c.out, "Logged in as %s\n", admin.Email)
	}
	c.loginRequired.Store(false)
	c.ctl = c.build(c.Notifier())

	c.startAutoRefresh()
	defer c.stopAutoRefresh()

	for {
		if c.loginRequired.Swap(false) {
			fmt.Fprintln(c.out, "Session expired, please log in again.")
			if !c.loginLoop() {
				return nil
			}
		}

		line, ok := c.prompt("betadmin> ")
		if !ok {
			return nil
		}
		cmd, rest := splitCommand(line)

		switch cmd {
		case "":
		case "help":
			c.printHelp()
		case "users":
			c.usersScreen()
		case "deposits":
			c.depositsScreen()
		case "withdrawals":
			c.withdrawalsScreen()
		case "matches":
			c.matchesScreen()
		case "bets":
			c.betsScreen()
		case "reports":
			c.reportsScreen(rest)
		case "logout":
			c.auth.Logout()
			fmt.Fprintln(c.out, "Logged out.")
			if !c.loginLoop() {
				return nil
			}
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown command %q, try 'help'.\n", cmd)
		}
	}
}

// startAutoRefresh keeps the reports warm in the background so the dashboard
// screen opens with fresh numbers.
func (c *Console) startAutoRefresh() {
	c.cron = cron.New()
	c.cron.AddFunc("@every 60s", func() {
		if c.sess.State() == session.StateAuthenticated {
			c.ctl.Reports.Refresh()
		}
	})
	c.cron.Start()
}

func (c *Console) stopAutoRefresh() {
	if c.cron != nil {
		c.cron.Stop()
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, `Screens:
  users         player search, block and unblock
  deposits      pending review queue and history
  withdrawals   pending review queue and history
  matches       football events, create and settle
  bets          read-only wagers, statistics and CSV export
  reports       dashboard, revenue and engagement
  logout        clear the stored session
  quit          exit
`)
}

// loginLoop prompts for credentials until a login succeeds or input ends.
// Returns false on EOF.
func (c *Console) loginLoop() bool {
	for {
		email, ok := c.prompt("Email: ")
		if !ok {
			return false
		}
		password, ok := c.prompt("Password: ")
		if !ok {
			return false
		}

		result := c.auth.Login(email, password)
		if result.Success {
			fmt.Fprintf(c.out, "Welcome, %s\n", result.Admin.Email)
			c.loginRequired.Store(false)
			return true
		}
		fmt.Fprintf(c.out, "[ERROR] Login failed: %s\n", result.Error)
	}
}

func (c *Console) usersScreen() {
	uc := c.ctl.Users
	uc.List.Reload()

	for {
		c.renderUsers()
		line, ok := c.prompt("users> ")
		if !ok {
			return
		}
		cmd, rest := splitCommand(line)

		switch cmd {
		case "":
		case "back":
			return
		case "page":
			if n, err := strconv.Atoi(rest); err == nil {
				uc.List.SetPage(n)
			} else {
				fmt.Fprintln(c.out, "Usage: page <n>")
			}
		case "search":
			uc.List.Search(rest)
			waitForSearch()
		case "blocked":
			blocked := true
			uc.SetBlockedFilter(&blocked)
		case "active":
			blocked := false
			uc.SetBlockedFilter(&blocked)
		case "all":
			uc.SetBlockedFilter(nil)
		case "show":
			c.showUserDetail(rest)
		case "block":
			c.blockUser(rest)
		case "unblock":
			if id, err := parseID(rest); err == nil {
				uc.Unblock(id)
			} else {
				fmt.Fprintln(c.out, "Usage: unblock <id>")
			}
		default:
			fmt.Fprintln(c.out, "Commands: page <n>, search <term>, blocked, active, all, show <id>, block <id>, unblock <id>, back")
		}
	}
}

func (c *Console) renderUsers() {
	users := c.ctl.Users.List.Items()
	RenderUsersTable(c.out, users)
	page, total, totalPages := c.ctl.Users.List.Pagination()
	fmt.Fprintf(c.out, "Page %d of %d (%d users)\n", page, totalPages, total)
}

func (c *Console) showUserDetail(rest string) {
	id, err := parseID(rest)
	if err != nil {
		fmt.Fprintln(c.out, "Usage: show <id>")
		return
	}
	detail, err := c.ctl.Users.Detail(id)
	if err != nil {
		return
	}
	fmt.Fprintf(c.out, "User %d  %s  %s  balance %s\n",
		detail.ID, detail.PhoneNumber, UserStatus(detail.User), FormatAmount(detail.WalletBalance))
	fmt.Fprintf(c.out, "Lifetime: deposits %s, withdrawals %s, %d bets wagering %s, winnings %s\n",
		FormatAmount(detail.TotalDeposits), FormatAmount(detail.TotalWithdrawals),
		detail.TotalBets, FormatAmount(detail.TotalWagered), FormatAmount(detail.TotalWinnings))
}

func (c *Console) blockUser(rest string) {
	id, err := parseID(rest)
	if err != nil {
		fmt.Fprintln(c.out, "Usage: block <id>")
		return
	}
	user, ok := findUser(c.ctl.Users.List.Items(), id)
	if !ok {
		fmt.Fprintf(c.out, "User %d is not in the current list.\n", id)
		return
	}

	c.ctl.Users.OpenBlockModal(user)
	reason, ok := c.prompt("Reason: ")
	if !ok || reason == "" {
		c.ctl.Users.CloseBlockModal()
		if ok {
			fmt.Fprintln(c.out, "[ERROR] Reason is required!")
		}
		return
	}
	c.ctl.Users.BlockReason = reason
	c.ctl.Users.SubmitBlock()
}

func (c *Console) depositsScreen() {
	dc := c.ctl.Deposits
	dc.List.Reload()

	for {
		fmt.Fprintf(c.out, "[tab: %s]\n", dc.Tab)
		RenderDepositsTable(c.out, dc.List.Items())
		if dc.Tab == controllers.TabAll {
			page, total, totalPages := dc.List.Pagination()
			fmt.Fprintf(c.out, "Page %d of %d (%d deposits)\n", page, totalPages, total)
		}

		line, ok := c.prompt("deposits> ")
		if !ok {
			return
		}
		cmd, rest := splitCommand(line)

		switch cmd {
		case "":
		case "back":
			return
		case "pending":
			dc.SetTab(controllers.TabPending)
		case "all":
			dc.SetTab(controllers.TabAll)
		case "page":
			if n, err := strconv.Atoi(rest); err == nil {
				dc.List.SetPage(n)
			} else {
				fmt.Fprintln(c.out, "Usage: page <n>")
			}
		case "status":
			dc.List.SetFilter("status", rest)
		case "method":
			dc.List.SetFilter("payment_method", rest)
		case "approve":
			if id, err := parseID(rest); err == nil {
				dc.Approve(id)
			} else {
				fmt.Fprintln(c.out, "Usage: approve <id>")
			}
		case "reject":
			c.rejectDeposit(rest)
		case "create":
			c.createDeposit()
		default:
			fmt.Fprintln(c.out, "Commands: pending, all, page <n>, status <s>, method <m>, approve <id>, reject <id>, create, back")
		}
	}
}

func (c *Console) rejectDeposit(rest string) {
	id, err := parseID(rest)
	if err != nil {
		fmt.Fprintln(c.out, "Usage: reject <id>")
		return
	}
	deposit, ok := findDeposit(c.ctl.Deposits.List.Items(), id)
	if !ok {
		fmt.Fprintf(c.out, "Deposit %d is not in the current list.\n", id)
		return
	}

	c.ctl.Deposits.OpenRejectModal(deposit)
	reason, ok := c.prompt("Reason: ")
	if !ok {
		c.ctl.Deposits.CloseRejectModal()
		return
	}
	c.ctl.Deposits.RejectReason = reason
	c.ctl.Deposits.SubmitReject()
}

func (c *Console) createDeposit() {
	dc := c.ctl.Deposits
	dc.OpenCreateModal()

	userID, ok := c.prompt("User id: ")
	if !ok {
		dc.CloseCreateModal()
		return
	}
	if id, err := parseID(userID); err == nil {
		dc.CreateForm.UserID = id
	}

	amount, ok := c.prompt("Amount: ")
	if !ok {
		dc.CloseCreateModal()
		return
	}
	if v, err := strconv.ParseFloat(amount, 64); err == nil {
		dc.CreateForm.Amount = v
	}

	method, ok := c.prompt("Payment method [bank_transfer]: ")
	if !ok {
		dc.CloseCreateModal()
		return
	}
	if method != "" {
		dc.CreateForm.PaymentMethod = method
	}

	proofType, ok := c.prompt("Proof type (blank for none): ")
	if !ok {
		dc.CloseCreateModal()
		return
	}
	if proofType != "" {
		dc.CreateForm.ProofType = proofType
		proofValue, ok := c.prompt("Proof value: ")
		if !ok {
			dc.CloseCreateModal()
			return
		}
		dc.CreateForm.ProofValue = proofValue
	}

	autoApprove, ok := c.prompt("Auto approve? [y/N]: ")
	if !ok {
		dc.CloseCreateModal()
		return
	}
	dc.CreateForm.AutoApprove = strings.EqualFold(autoApprove, "y")

	dc.SubmitCreate()
}

func (c *Console) withdrawalsScreen() {
	wc := c.ctl.Withdrawals
	wc.List.Reload()

	for {
		fmt.Fprintf(c.out, "[tab: %s]\n", wc.Tab)
		RenderWithdrawalsTable(c.out, wc.List.Items())
		if wc.Tab == controllers.TabAll {
			page, total, totalPages := wc.List.Pagination()
			fmt.Fprintf(c.out, "Page %d of %d (%d withdrawals)\n", page, totalPages, total)
		}

		line, ok := c.prompt("withdrawals> ")
		if !ok {
			return
		}
		cmd, rest := splitCommand(line)

		switch cmd {
		case "":
		case "back":
			return
		case "pending":
			wc.SetTab(controllers.TabPending)
		case "all":
			wc.SetTab(controllers.TabAll)
		case "page":
			if n, err := strconv.Atoi(rest); err == nil {
				wc.List.SetPage(n)
			} else {
				fmt.Fprintln(c.out, "Usage: page <n>")
			}
		case "status":
			wc.List.SetFilter("status", rest)
		case "approve":
			c.approveWithdrawal(rest)
		case "reject":
			c.rejectWithdrawal(rest)
		default:
			fmt.Fprintln(c.out, "Commands: pending, all, page <n>, status <s>, approve <id>, reject <id>, back")
		}
	}
}

func (c *Console) approveWithdrawal(rest string) {
	id, err := parseID(rest)
	if err != nil {
		fmt.Fprintln(c.out, "Usage: approve <id>")
		return
	}
	withdrawal, ok := findWithdrawal(c.ctl.Withdrawals.List.Items(), id)
	if !ok {
		fmt.Fprintf(c.out, "Withdrawal %d is not in the current list.\n", id)
		return
	}

	c.ctl.Withdrawals.OpenApproveModal(withdrawal)
	reference, ok := c.prompt("Payment reference (optional): ")
	if !ok {
		c.ctl.Withdrawals.CloseApproveModal()
		return
	}
	c.ctl.Withdrawals.PaymentReference = reference
	c.ctl.Withdrawals.SubmitApprove()
}

func (c *Console) rejectWithdrawal(rest string) {
	id, err := parseID(rest)
	if err != nil {
		fmt.Fprintln(c.out, "Usage: reject <id>")
		return
	}
	withdrawal, ok := findWithdrawal(c.ctl.Withdrawals.List.Items(), id)
	if !ok {
		fmt.Fprintf(c.out, "Withdrawal %d is not in the current list.\n", id)
		return
	}

	c.ctl.Withdrawals.OpenRejectModal(withdrawal)
	reason, ok := c.prompt("Reason: ")
	if !ok {
		c.ctl.Withdrawals.CloseRejectModal()
		return
	}
	c.ctl.Withdrawals.RejectReason = reason
	c.ctl.Withdrawals.SubmitReject()
}

func (c *Console) matchesScreen() {
	mc := c.ctl.Matches
	mc.List.Reload()

	for {
		RenderMatchesTable(c.out, mc.List.Items())
		line, ok := c.prompt("matches> ")
		if !ok {
			return
		}
		cmd, rest := splitCommand(line)

		switch cmd {
		case "":
		case "back":
			return
		case "status":
			mc.SetStatusFilter(rest)
		case "create":
			c.createMatch()
		case "settle":
			c.settleMatch(rest)
		default:
			fmt.Fprintln(c.out, "Commands: status <s>, create, settle <id> <yes|no>, back")
		}
	}
}

func (c *Console) createMatch() {
	mc := c.ctl.Matches
	mc.OpenCreateModal()

	fields := []struct {
		label string
		set   func(string)
	}{
		{"Home team: ", func(v string) { mc.CreateForm.HomeTeam = v }},
		{"Away team: ", func(v string) { mc.CreateForm.AwayTeam = v }},
		{"Event description: ", func(v string) { mc.CreateForm.EventDescription = v }},
		{"Yes odds: ", func(v string) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				mc.CreateForm.YesOdds = f
			}
		}},
		{"No odds: ", func(v string) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				mc.CreateForm.NoOdds = f
			}
		}},
	}
	for _, field := range fields {
		value, ok := c.prompt(field.label)
		if !ok {
			mc.CloseCreateModal()
			return
		}
		field.set(value)
	}

	mc.SubmitCreate()
}

func (c *Console) settleMatch(rest string) {
	parts := strings.Fields(rest)
	if len(parts) != 2 {
		fmt.Fprintln(c.out, "Usage: settle <id> <yes|no>")
		return
	}
	id, err := parseID(parts[0])
	if err != nil {
		fmt.Fprintln(c.out, "Usage: settle <id> <yes|no>")
		return
	}
	match, ok := findMatch(c.ctl.Matches.List.Items(), id)
	if !ok {
		fmt.Fprintf(c.out, "Match %d is not in the current list.\n", id)
		return
	}

	c.ctl.Matches.OpenSettleModal(match)
	c.ctl.Matches.SettleResult = parts[1]
	c.ctl.Matches.SubmitSettle()
}

func (c *Console) betsScreen() {
	bc := c.ctl.Bets
	bc.List.Reload()

	for {
		RenderBetsTable(c.out, bc.List.Items())
		page, total, totalPages := bc.List.Pagination()
		fmt.Fprintf(c.out, "Page %d of %d (%d bets)\n", page, totalPages, total)

		line, ok := c.prompt("bets> ")
		if !ok {
			return
		}
		cmd, rest := splitCommand(line)

		switch cmd {
		case "":
		case "back":
			return
		case "page":
			if n, err := strconv.Atoi(rest); err == nil {
				bc.List.SetPage(n)
			} else {
				fmt.Fprintln(c.out, "Usage: page <n>")
			}
		case "type":
			bc.List.SetFilter("bet_type", rest)
		case "status":
			bc.List.SetFilter("status", rest)
		case "user":
			bc.List.SetFilter("user_id", rest)
		case "from":
			bc.List.SetFilter("date_from", rest)
		case "to":
			bc.List.SetFilter("date_to", rest)
		case "stats":
			if stats, err := bc.Statistics(); err == nil {
				c.renderBetStatistics(stats)
			}
		case "export":
			c.exportBets(rest)
		default:
			fmt.Fprintln(c.out, "Commands: page <n>, type <t>, status <s>, user <id>, from <date>, to <date>, stats, export <file>, back")
		}
	}
}

func (c *Console) renderBetStatistics(stats *models.BetStatistics) {
	table := newTable(c.out)
	fmt.Fprintf(table, "Bets\t%d total, %d active, %d settled\n",
		stats.TotalBets, stats.ActiveBets, stats.SettledBets)
	fmt.Fprintf(table, "Outcomes\t%d won, %d lost\n", stats.WonBets, stats.LostBets)
	fmt.Fprintf(table, "Wagered\t%s\n", FormatAmount(stats.TotalWagered))
	fmt.Fprintf(table, "Payouts\t%s\n", FormatAmount(stats.TotalPayouts))
	fmt.Fprintf(table, "Net revenue\t%s\n", FormatAmount(stats.NetRevenue))
	table.Flush()
}

func (c *Console) exportBets(path string) {
	if path == "" {
		fmt.Fprintln(c.out, "Usage: export <file>")
		return
	}
	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(c.out, "[ERROR] Failed to create %s: %v\n", path, err)
		return
	}
	defer file.Close()

	if err := c.ctl.Bets.Export(file); err == nil {
		fmt.Fprintf(c.out, "Wrote %s\n", path)
	}
}

func (c *Console) reportsScreen(rest string) {
	rc := c.ctl.Reports
	if parts := strings.Fields(rest); len(parts) == 2 {
		rc.SetDateRange(parts[0], parts[1])
	} else {
		rc.Refresh()
	}

	fmt.Fprintf(c.out, "== Dashboard ==\n")
	RenderDashboard(c.out, rc.Dashboard())
	fmt.Fprintf(c.out, "\n== Revenue (%s to %s) ==\n", rc.DateFrom, rc.DateTo)
	RenderRevenue(c.out, rc.Revenue())
	fmt.Fprintf(c.out, "\n== Engagement ==\n")
	RenderEngagement(c.out, rc.Engagement())
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func splitCommand(line string) (cmd, rest string) {
	cmd, rest, _ = strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(rest)
}

// waitForSearch lets the debounced search request land before the table
// re-renders. The debounce window is 300ms by default.
func waitForSearch() {
	time.Sleep(600 * time.Millisecond)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	return uint(id), err
}

func findUser(users []models.User, id uint) (models.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func findDeposit(deposits []models.Deposit, id uint) (models.Deposit, bool) {
	for _, d := range deposits {
		if d.ID == id {
			return d, true
		}
	}
	return models.Deposit{}, false
}

func findWithdrawal(withdrawals []models.Withdrawal, id uint) (models.Withdrawal, bool) {
	for _, w := range withdrawals {
		if w.ID == id {
			return w, true
		}
	}
	return models.Withdrawal{}, false
}

func findMatch(matches []models.Match, id uint) (models.Match, bool) {
	for _, m := range matches {
		if m.ID == id {
			return m, true
		}
	}
	return models.Match{}, false
}
