// Package stubserver is a local stand-in for the platform backend. It
// implements the admin HTTP contract over an in-memory sqlite database so the
// console can be developed and integration-tested without the production
// system. The balance arithmetic here is a fixture, not a ledger.
package stubserver

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Options configure a stub server instance.
type Options struct {
	DSN           string // sqlite DSN, empty for in-memory
	JWTKey        string
	AdminEmail    string
	AdminPassword string
	SaltRound     int
	Quiet         bool // disable the request logger (tests)
}

// Server holds the fiber app and its database.
type Server struct {
	App    *fiber.App
	db     *gorm.DB
	jwtKey []byte
}

// New builds a stub server with a seeded admin account and empty tables.
func New(opts Options) (*Server, error) {
	db, err := connectDb(opts.DSN)
	if err != nil {
		return nil, err
	}

	s := &Server{db: db, jwtKey: []byte(opts.JWTKey)}

	if err := s.seedAdmin(opts.AdminEmail, opts.AdminPassword, opts.SaltRound); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: opts.Quiet})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))
	if !opts.Quiet {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		}))
	}

	s.App = app
	s.setupRoutes()
	return s, nil
}

// DB exposes the underlying database for seeding demo data.
func (s *Server) DB() *gorm.DB { return s.db }

func (s *Server) setupRoutes() {
	admin := s.App.Group("/api/admin")
	admin.Post("/login", s.login)

	auth := admin.Use(s.requireAdmin)

	auth.Get("/users", s.listUsers)
	auth.Get("/users/:id", s.getUserDetails)
	auth.Post("/users/:id/block", s.blockUser)
	auth.Post("/users/:id/unblock", s.unblockUser)

	auth.Get("/deposits/pending", s.pendingDeposits)
	auth.Get("/deposits", s.listDeposits)
	auth.Post("/deposits", s.createDeposit)
	auth.Post("/deposits/approve", s.approveDeposit)
	auth.Post("/deposits/reject", s.rejectDeposit)

	auth.Get("/withdrawals/pending", s.pendingWithdrawals)
	auth.Get("/withdrawals", s.listWithdrawals)
	auth.Post("/withdrawals/approve", s.approveWithdrawal)
	auth.Post("/withdrawals/reject", s.rejectWithdrawal)

	auth.Get("/matches", s.listMatches)
	auth.Post("/matches", s.createMatch)
	auth.Post("/matches/:id/settle", s.settleMatch)

	auth.Get("/bets", s.listBets)
	auth.Get("/bets/active", s.listActiveBets)
	auth.Get("/bets/statistics", s.betStatistics)

	auth.Get("/analytics/dashboard", s.dashboardStats)
	auth.Get("/analytics/revenue", s.revenueBreakdown)
	auth.Get("/analytics/users", s.engagementMetrics)
}

// Listen starts serving on the given port.
func (s *Server) Listen(port string) error {
	log.Printf("Stub backend is running on port %s", port)
	return s.App.Listen(":" + port)
}

// detail mirrors the backend's error body: {"detail": message}.
func detail(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"detail": message})
}
