package service

import (
	"context"

	"github.com/kelias-gh/CRM/domain"
)

const dashboardLimit = 10

type dashboardService struct {
	customers domain.CustomerRepository
	orders    domain.OrderRepository
	contacts  domain.ContactRepository
}

func NewDashboardService(customers domain.CustomerRepository, orders domain.OrderRepository, contacts domain.ContactRepository) domain.DashboardUseCase {
	return &dashboardService{
		customers: customers,
		orders:    orders,
		contacts:  contacts,
	}
}

func (s *dashboardService) Overview(ctx context.Context) (*domain.DashboardOverview, error) {
	customers, err := s.customers.TopByName(ctx, dashboardLimit)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.Recent(ctx, dashboardLimit)
	if err != nil {
		return nil, err
	}

	contacts, err := s.contacts.Recent(ctx, dashboardLimit)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardOverview{
		Customers: customers,
		Orders:    orders,
		Contacts:  contacts,
	}, nil
}
