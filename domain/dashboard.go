package domain

import "context"

// DashboardOverview backs the landing page: top customers by name plus the
// most recent orders and contacts across all customers.
type DashboardOverview struct {
	Customers []Customer   `json:"customers"`
	Orders    []OrderRow   `json:"orders"`
	Contacts  []ContactRow `json:"contacts"`
}

type DashboardUseCase interface {
	Overview(ctx context.Context) (*DashboardOverview, error)
}
