package main

import (
	"log"
	"os"

	"betadmin/client"
	"betadmin/config"
	"betadmin/console"
	"betadmin/controllers"
	"betadmin/services"
	"betadmin/session"
)

func main() {
	config.LoadConfig()

	sess := session.New(session.NewFileStore(config.AppConfig.TokenFile))
	sess.Init()

	// The console is wired as the unauthorized hook so an expired token drops
	// the operator back to the login prompt instead of erroring every screen.
	var ui *console.Console
	api := client.New(config.AppConfig.APIBaseURL, sess, func() {
		if ui != nil {
			ui.ForceLogin()
		}
	})

	auth := controllers.NewAuthController(services.NewAuthService(api), sess)

	ui = console.New(os.Stdin, os.Stdout, sess, auth, func(notifier controllers.Notifier) console.Controllers {
		opts := controllers.ListOptions{
			PageSize:      config.AppConfig.PageSize,
			DebounceDelay: config.AppConfig.SearchDebounceDelay(),
			MinSearchLen:  config.AppConfig.SearchMinLength,
			Notifier:      notifier,
		}
		return console.Controllers{
			Users:       controllers.NewUsersController(services.NewUserService(api), opts),
			Deposits:    controllers.NewDepositsController(services.NewDepositService(api), config.AppConfig.MinDepositAmount, opts),
			Withdrawals: controllers.NewWithdrawalsController(services.NewWithdrawalService(api), opts),
			Matches:     controllers.NewMatchesController(services.NewMatchService(api), opts),
			Bets:        controllers.NewBetsController(services.NewBetService(api), opts),
			Reports:     controllers.NewReportsController(services.NewAnalyticsService(api)),
		}
	})

	if err := ui.Run(); err != nil {
		log.Fatalf("Console error: %v", err)
	}
}
