package domain

import (
	"context"
	"time"
)

// ContactRow is the joined list projection: one logged interaction plus its
// customer's display name ("Last, First").
type ContactRow struct {
	ID           uint      `json:"id"`
	ContactTime  time.Time `json:"contact_time"`
	Channel      string    `json:"channel"`
	Subject      *string   `json:"subject,omitempty"`
	CustomerID   uint      `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
}

type ContactUseCase interface {
	List(ctx context.Context, channel string, page int) ([]ContactRow, PageInfo, error)
	Log(ctx context.Context, contact *Contact) error
}

type ContactRepository interface {
	// List filters by channel when channel is non-empty; callers pass ""
	// for no filter.
	List(ctx context.Context, channel string, page PageRequest) ([]ContactRow, int64, error)
	Recent(ctx context.Context, limit int) ([]ContactRow, error)
	RecentByCustomer(ctx context.Context, customerID uint, limit int) ([]Contact, error)

	// LastByCustomer returns nil (not an error) when the customer has no
	// logged contact.
	LastByCustomer(ctx context.Context, customerID uint) (*Contact, error)

	Create(ctx context.Context, contact *Contact) error
}
