package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CustomerDetail is the customer page payload: the customer itself with its
// revenue KPIs plus the most recent orders and contacts.
type CustomerDetail struct {
	Customer       Customer         `json:"customer"`
	RangeRevenue   *decimal.Decimal `json:"range_revenue,omitempty"`
	RangeFrom      string           `json:"range_from,omitempty"`
	RangeTo        string           `json:"range_to,omitempty"`
	RecentOrders   []Order          `json:"recent_orders"`
	RecentContacts []Contact        `json:"recent_contacts"`
	Notice         string           `json:"notice,omitempty"`
}

type CustomerUseCase interface {
	List(ctx context.Context, query string, page int) ([]Customer, PageInfo, error)
	Detail(ctx context.Context, customerID uint, dateFrom, dateTo string) (*CustomerDetail, error)
	RangedRevenue(ctx context.Context, customerID uint, dateFrom, dateTo string) (decimal.Decimal, error)
	Update(ctx context.Context, customerID uint, payload Customer) error
}

type CustomerRepository interface {
	Search(ctx context.Context, query string, page PageRequest) ([]Customer, int64, error)
	GetByID(ctx context.Context, customerID uint) (*Customer, error)
	Update(ctx context.Context, customerID uint, payload Customer) error
	Delete(ctx context.Context, customerID uint) error
	TopByName(ctx context.Context, limit int) ([]Customer, error)

	// Revenue aggregates. All exclude Cancelled orders and return 0 when no
	// qualifying order exists. RevenueBetween is half-open [from, to).
	TotalRevenue(ctx context.Context, customerID uint) (decimal.Decimal, error)
	LastYearRevenue(ctx context.Context, customerID uint) (decimal.Decimal, error)
	RevenueBetween(ctx context.Context, customerID uint, from, to time.Time) (decimal.Decimal, error)
}
