package eventrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/event"
	"orders/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errDuplicatedEvent is the user-facing description of the uniqueness
// conflict on event_id.
var errDuplicatedEvent = errors.New("An event with same Id already exists.")

// GormEventRepository implements ports.EventRepository using GORM.
type GormEventRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormEventRepository creates a new GORM event repository.
func NewGormEventRepository(db *gorm.DB, logger *zap.Logger) *GormEventRepository {
	return &GormEventRepository{
		db:     db,
		logger: logger,
	}
}

// Add inserts a new event. A violation of the event_id unique index is
// reported as errs.ConflictError, which the registration flow converts
// into a no-op success; any other failure is logged and returned as-is.
func (r *GormEventRepository) Add(ctx context.Context, aggregate *event.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("eventId", errDuplicatedEvent)
		}

		r.logger.Error("failed to save event",
			zap.Int("order_id", aggregate.OrderID()),
			zap.String("event_id", aggregate.ID()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// GetAllByOrderID retrieves every event recorded for the order, oldest first.
func (r *GormEventRepository) GetAllByOrderID(ctx context.Context, orderID int) ([]*event.Event, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("date").Find(&dtos).Error
	if err != nil {
		r.logger.Error("failed to retrieve events for order",
			zap.Int("order_id", orderID),
			zap.Error(err),
		)
		return nil, err
	}

	events := make([]*event.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		events = append(events, e)
	}

	return events, nil
}

// GetMostRecentByOrderID retrieves the single most recent event for the
// order, by event date descending.
func (r *GormEventRepository) GetMostRecentByOrderID(ctx context.Context, orderID int) (*event.Event, error) {
	var dto EventDTO
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("date DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("event", orderID)
		}

		r.logger.Error("failed to retrieve most recent event for order",
			zap.Int("order_id", orderID),
			zap.Error(err),
		)
		return nil, err
	}

	return toDomain(dto)
}
