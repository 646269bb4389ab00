// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed on customer, status, and creation time to keep the listing and
// analytics queries cheap.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;index"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(18,2)"`
	DiscountedAmount decimal.Decimal `gorm:"type:numeric(18,2)"`
	Status           int             `gorm:"index"`
	CreatedAt        time.Time       `gorm:"index"`
	FulfilledAt      *time.Time
	Items            []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order line items.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Quantity  int             `gorm:""`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,2)"`
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   item.OrderID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		TotalAmount:      aggregate.TotalAmount().Decimal(),
		DiscountedAmount: aggregate.DiscountedAmount().Decimal(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		FulfilledAt:      aggregate.FulfilledAt(),
		Items:            itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	discountedAmount, err := kernel.NewMoney(dto.DiscountedAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		totalAmount,
		discountedAmount,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.FulfilledAt,
		items,
	)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Item{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, orderID, productID, dto.Quantity, unitPrice)
}
