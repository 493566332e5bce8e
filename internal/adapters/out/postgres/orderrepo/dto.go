// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and their
// relational representation: the buyer is embedded in the order row and line
// items live in a child table.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite unique index on (external_reference_id, channel) is the
// storage-level constraint giving duplicate order creation first-writer-wins
// semantics.
type OrderDTO struct {
	ID                  int             `gorm:"column:order_id;primaryKey"`
	ExternalReferenceID string          `gorm:"uniqueIndex:idx_orders_external_reference_channel"`
	Channel             string          `gorm:"uniqueIndex:idx_orders_external_reference_channel"`
	PurchaseDate        time.Time       `gorm:"index"`
	TotalValue          decimal.Decimal `gorm:"type:numeric"`
	Buyer               BuyerDTO        `gorm:"embedded;embeddedPrefix:buyer_"`
	Status              string          `gorm:"index"`
	UpdatedOn           time.Time
	Products            []ProductDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// BuyerDTO represents the buyer columns embedded within the order table.
type BuyerDTO struct {
	FirstName      string
	LastName       string
	DocumentNumber string `gorm:"index"`
	Phone          string
}

// ProductDTO represents one persisted line item of an order.
type ProductDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int   `gorm:"column:order_id;index"`
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:numeric"`
	Quantity    int
}

// TableName specifies the database table name for order line items.
func (ProductDTO) TableName() string {
	return "order_products"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	products := make([]ProductDTO, 0, len(aggregate.Products()))
	for _, p := range aggregate.Products() {
		products = append(products, ProductDTO{
			OrderID:     aggregate.ID(),
			SKU:         p.SKU(),
			Name:        p.Name(),
			Description: p.Description(),
			Price:       p.Price(),
			Quantity:    p.Quantity(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID(),
		ExternalReferenceID: aggregate.ExternalReferenceID(),
		Channel:             aggregate.Channel().String(),
		PurchaseDate:        aggregate.PurchaseDate(),
		TotalValue:          aggregate.TotalValue(),
		Buyer: BuyerDTO{
			FirstName:      aggregate.Buyer().FirstName(),
			LastName:       aggregate.Buyer().LastName(),
			DocumentNumber: aggregate.Buyer().DocumentNumber(),
			Phone:          aggregate.Buyer().Phone(),
		},
		Status:    aggregate.Status().String(),
		UpdatedOn: aggregate.UpdatedOn(),
		Products:  products,
	}
}

// toDomain converts a database DTO back to an order aggregate.
// Timestamps are normalized to UTC because the driver returns them in the
// session time zone.
func toDomain(dto OrderDTO) (*order.Order, error) {
	buyer, err := order.NewBuyer(
		dto.Buyer.FirstName,
		dto.Buyer.LastName,
		dto.Buyer.DocumentNumber,
		dto.Buyer.Phone,
	)
	if err != nil {
		return nil, err
	}

	products := make([]order.Product, 0, len(dto.Products))
	for _, p := range dto.Products {
		product, productErr := order.NewProduct(p.SKU, p.Name, p.Description, p.Price, p.Quantity)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	channel, err := order.ChannelFromString(dto.Channel)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.ExternalReferenceID,
		channel,
		dto.PurchaseDate.UTC(),
		dto.TotalValue,
		buyer,
		products,
		status,
		dto.UpdatedOn.UTC(),
	)
}
