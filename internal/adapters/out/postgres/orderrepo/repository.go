package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errDuplicatedOrder is the user-facing description of the uniqueness
// conflict on (external_reference_id, channel).
var errDuplicatedOrder = errors.New("An order with same ExternalReferenceId and Channel already exists.")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, logger *zap.Logger) *GormOrderRepository {
	return &GormOrderRepository{
		db:     db,
		logger: logger,
	}
}

// Add saves a new order and its line items to the database.
// A violation of the (external_reference_id, channel) unique index is
// reported as errs.ConflictError; any other failure is logged and returned
// as-is.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", errDuplicatedOrder)
		}

		r.logger.Error("failed to save order",
			zap.Int("order_id", aggregate.ID()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// Update replaces the persisted order row keyed by order_id.
//
// The replace is unconditional, with no concurrency token: when two
// status transitions race on the same order, the last writer wins. Line
// items never change after creation and are left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Products = nil

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("order_id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		r.logger.Error("failed to update order",
			zap.Int("order_id", aggregate.ID()),
			zap.Error(result.Error),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return nil
}

// GetByID retrieves an order by its numeric identifier.
func (r *GormOrderRepository) GetByID(ctx context.Context, id int) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Products").First(&dto, "order_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}

		r.logger.Error("failed to retrieve order",
			zap.Int("order_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return toDomain(dto)
}

// GetBySpecification retrieves every order matching the specification.
// Each set constraint contributes one AND clause; an empty specification
// returns all orders.
func (r *GormOrderRepository) GetBySpecification(
	ctx context.Context,
	spec ports.OrderSpecification,
) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Products")

	if id := spec.OrderID(); id != nil {
		query = query.Where("order_id = ?", *id)
	}
	if documentNumber := spec.DocumentNumber(); documentNumber != nil {
		query = query.Where("buyer_document_number = ?", *documentNumber)
	}
	if status := spec.Status(); status != nil {
		query = query.Where("status = ?", status.String())
	}
	if from := spec.CreatedOnFrom(); from != nil {
		query = query.Where("purchase_date >= ?", *from)
	}
	if to := spec.CreatedOnTo(); to != nil {
		query = query.Where("purchase_date <= ?", *to)
	}

	var dtos []OrderDTO
	if err := query.Order("order_id").Find(&dtos).Error; err != nil {
		r.logger.Error("failed to retrieve orders by specification", zap.Error(err))
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
