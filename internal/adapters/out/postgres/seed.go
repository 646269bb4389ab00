package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type seedCustomer struct {
	id          string
	name        string
	email       string
	segment     customer.Segment
	isFirstTime bool
	ageDays     int
}

// Demo customers covering every segment plus a first-time buyer, so each
// discount rule can be exercised against a fresh database.
var seedCustomers = []seedCustomer{
	{"2585a176-1e69-4d3c-b174-9da5f5521505", "John Doe", "john.doe@email.com", customer.Regular, false, 30},
	{"8f4e2c1d-5a7b-4e9f-a3c2-7b8d4e5f6a9c", "Jane Smith", "jane.smith@email.com", customer.Premium, false, 60},
	{"c7b3f8e2-9a4d-4c5e-b8f1-3e7a9b2c4d5f", "Alice Johnson", "alice.johnson@email.com", customer.VIP, false, 90},
	{"d4a8c2e7-3b5f-4e1d-9c7a-6f2b8e4a7c9d", "Bob Wilson", "bob.wilson@email.com", customer.Regular, true, 5},
	{"f9e3b7c1-4d6a-4f2e-8b5c-1a9f3c7e2b4d", "Emma Davis", "emma.davis@email.com", customer.Premium, false, 15},
}

type seedItem struct {
	productID string
	quantity  int
	unitPrice string
}

type seedOrder struct {
	id               string
	customerID       string
	totalAmount      string
	discountedAmount string
	status           order.Status
	ageDays          int
	fulfilledAgeDays int // 0 means never fulfilled
	items            []seedItem
}

// Demo orders spanning every seeded status plus a fulfilled delivery, so
// the listing and analytics endpoints return meaningful data out of the box.
var seedOrders = []seedOrder{
	{
		id:               "b8f2d4a7-3c5e-4b9f-a1d8-7e4c2f9b6a3d",
		customerID:       "2585a176-1e69-4d3c-b174-9da5f5521505",
		totalAmount:      "299.99",
		discountedAmount: "299.99",
		status:           order.Delivered,
		ageDays:          25,
		fulfilledAgeDays: 23,
		items: []seedItem{
			{"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", 2, "149.99"},
			{"b6c7d8e9-f0a1-4b2c-3d4e-5f6a7b8c9d0e", 1, "299.99"},
		},
	},
	{
		id:               "e7c3a9d2-5f8b-4a1e-9c6d-2b7f4e8a1c5f",
		customerID:       "8f4e2c1d-5a7b-4e9f-a3c2-7b8d4e5f6a9c",
		totalAmount:      "599.98",
		discountedAmount: "539.98",
		status:           order.Shipped,
		ageDays:          15,
		items: []seedItem{
			{"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", 3, "199.99"},
			{"f3e4d5c6-b7a8-4f9e-0d1c-2b3a4f5e6d7c", 1, "99.99"},
		},
	},
	{
		id:               "a4d8f2b7-6e1c-4f3a-b9d5-8c2e7a4f1b6d",
		customerID:       "c7b3f8e2-9a4d-4c5e-b8f1-3e7a9b2c4d5f",
		totalAmount:      "1299.97",
		discountedAmount: "1169.97",
		status:           order.Processing,
		ageDays:          10,
		items: []seedItem{
			{"e7f8a9b0-c1d2-4e3f-4a5b-6c7d8e9f0a1b", 1, "1299.97"},
		},
	},
	{
		id:               "f1b6c9e4-2d7a-4e8f-c3b9-5f1d8a6e2c7b",
		customerID:       "d4a8c2e7-3b5f-4e1d-9c7a-6f2b8e4a7c9d",
		totalAmount:      "149.99",
		discountedAmount: "134.99",
		status:           order.Pending,
		ageDays:          3,
		items: []seedItem{
			{"a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d", 1, "149.99"},
		},
	},
	{
		id:               "c9e7b3f1-4a8d-4c2e-f7b4-1d9a5c8e3b6f",
		customerID:       "f9e3b7c1-4d6a-4f2e-8b5c-1a9f3c7e2b4d",
		totalAmount:      "750.00",
		discountedAmount: "675.00",
		status:           order.Cancelled,
		ageDays:          8,
		items: []seedItem{
			{"b6c7d8e9-f0a1-4b2c-3d4e-5f6a7b8c9d0e", 2, "375.00"},
		},
	},
}

// seedTracker ignores aggregate tracking during seeding.
type seedTracker struct{}

func (seedTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

// SeedDemoData inserts the demo customers and orders on a fresh database.
// Entities are reconstructed through the Restore constructors so seeding
// passes the same validation as any other entry point. A database that
// already holds customers is left untouched, and the whole seed is applied
// in one transaction.
func SeedDemoData(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	var customers int64
	if err := db.WithContext(ctx).Model(&customerrepo.CustomerDTO{}).Count(&customers).Error; err != nil {
		return fmt.Errorf("seed precondition: %w", err)
	}
	if customers > 0 {
		logger.Info("demo data already present, skipping seed")
		return nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customerRepo := customerrepo.NewGormCustomerRepository(tx)
		for _, seed := range seedCustomers {
			c, seedErr := restoreSeedCustomer(seed)
			if seedErr != nil {
				return fmt.Errorf("seed customer %s: %w", seed.name, seedErr)
			}
			if seedErr = customerRepo.Add(ctx, c); seedErr != nil {
				return fmt.Errorf("seed customer %s: %w", seed.name, seedErr)
			}
		}

		orderRepo := orderrepo.NewGormOrderRepository(tx, seedTracker{})
		for _, seed := range seedOrders {
			ord, seedErr := restoreSeedOrder(seed)
			if seedErr != nil {
				return fmt.Errorf("seed order %s: %w", seed.id, seedErr)
			}
			if seedErr = orderRepo.Add(ctx, ord); seedErr != nil {
				return fmt.Errorf("seed order %s: %w", seed.id, seedErr)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("demo data seeded",
		slog.Int("customers", len(seedCustomers)),
		slog.Int("orders", len(seedOrders)),
	)
	return nil
}

func restoreSeedCustomer(seed seedCustomer) (*customer.Customer, error) {
	id, err := kernel.UUIDFromString(seed.id)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		seed.name,
		seed.email,
		seed.segment,
		seed.isFirstTime,
		time.Now().UTC().AddDate(0, 0, -seed.ageDays),
	)
}

func restoreSeedOrder(seed seedOrder) (*order.Order, error) {
	id, err := kernel.UUIDFromString(seed.id)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromString(seed.customerID)
	if err != nil {
		return nil, err
	}
	totalAmount, err := kernel.NewMoneyFromString(seed.totalAmount)
	if err != nil {
		return nil, err
	}
	discountedAmount, err := kernel.NewMoneyFromString(seed.discountedAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(seed.items))
	for _, it := range seed.items {
		productID, itemErr := kernel.UUIDFromString(it.productID)
		if itemErr != nil {
			return nil, itemErr
		}
		unitPrice, itemErr := kernel.NewMoneyFromString(it.unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(id, productID, it.quantity, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	now := time.Now().UTC()
	var fulfilledAt *time.Time
	if seed.fulfilledAgeDays > 0 {
		t := now.AddDate(0, 0, -seed.fulfilledAgeDays)
		fulfilledAt = &t
	}

	return order.RestoreOrder(
		id, customerID,
		totalAmount, discountedAmount,
		seed.status,
		now.AddDate(0, 0, -seed.ageDays),
		fulfilledAt,
		items,
	)
}
