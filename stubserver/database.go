package stubserver

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// connectDb opens the sqlite database and migrates the schema. The default
// DSN is a private in-memory database, one per server instance. The shared
// cache plus a single connection keeps the pool from opening a second,
// empty in-memory database.
func connectDb(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = fmt.Sprintf("file:stub-%s?mode=memory&cache=shared", uuid.NewString())
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&AdminUser{},
		&User{},
		&Deposit{},
		&Withdrawal{},
		&Match{},
		&Bet{},
		&AdminActionLog{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// logAdminAction records an audit entry. Failures are swallowed; the audit
// log never blocks the action itself.
func (s *Server) logAdminAction(adminID uint, actionType, entityType string, entityID uint, details map[string]any) {
	payload, _ := json.Marshal(details)
	s.db.Create(&AdminActionLog{
		ID:         uuid.NewString(),
		AdminID:    adminID,
		ActionType: actionType,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    string(payload),
		CreatedAt:  time.Now().UTC(),
	})
}
