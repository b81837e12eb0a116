package postgres

import (
	"context"
	"fmt"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"contact-service/internal/shared"
)

// Open connects to PostgreSQL and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := db.AutoMigrate(&UserModel{}, &ContactModel{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return db, nil
}

// Health reports database connectivity for the liveness probe.
type Health struct {
	db *gorm.DB
}

func NewHealth(db *gorm.DB) *Health {
	return &Health{db: db}
}

// Ping runs a trivial query so the probe exercises the full connection path.
func (h *Health) Ping(ctx context.Context) error {
	if err := h.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("%w: database ping: %v", shared.ErrDependency, err)
	}
	return nil
}
