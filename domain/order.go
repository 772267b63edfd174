package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderRow is the joined list projection: one order plus its customer's
// display name ("Last, First").
type OrderRow struct {
	ID           uint            `json:"id"`
	OrderDate    time.Time       `json:"order_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CustomerID   uint            `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
}

type OrderUseCase interface {
	List(ctx context.Context, query string, page int) ([]OrderRow, PageInfo, error)
	Create(ctx context.Context, order *Order, items []OrderItem) error
}

type OrderRepository interface {
	List(ctx context.Context, query string, page PageRequest) ([]OrderRow, int64, error)
	Recent(ctx context.Context, limit int) ([]OrderRow, error)
	RecentByCustomer(ctx context.Context, customerID uint, limit int) ([]Order, error)

	// CreateWithItems persists the order and its items in one transaction.
	// The order total is derived from the items inside the transaction.
	CreateWithItems(ctx context.Context, order *Order, items []OrderItem) error
}
