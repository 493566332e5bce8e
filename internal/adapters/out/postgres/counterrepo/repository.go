// Package counterrepo implements the named counter sequences order ids are
// allocated from. The increment runs as a single upsert statement, so
// concurrent callers on the same counter each receive a distinct, strictly
// increasing value.
package counterrepo

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CounterDTO represents one named sequence row.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int    `gorm:"not null"`
}

// TableName specifies the database table name for counters.
func (CounterDTO) TableName() string {
	return "counters"
}

// GormCounterRepository implements ports.CounterRepository using GORM.
type GormCounterRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormCounterRepository creates a new GORM counter repository.
func NewGormCounterRepository(db *gorm.DB, logger *zap.Logger) *GormCounterRepository {
	return &GormCounterRepository{
		db:     db,
		logger: logger,
	}
}

// Next atomically increments the named counter and returns the new value.
// The counter row is created at 1 on first use. Atomicity comes from the
// upsert executing as one statement against the row.
func (r *GormCounterRepository) Next(ctx context.Context, name string) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`, name).Scan(&next).Error
	if err != nil {
		r.logger.Error("failed to advance counter",
			zap.String("counter", name),
			zap.Error(err),
		)
		return 0, err
	}

	return next, nil
}
