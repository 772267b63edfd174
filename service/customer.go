package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/utils"
)

type customerService struct {
	customers domain.CustomerRepository
	orders    domain.OrderRepository
	contacts  domain.ContactRepository
}

func NewCustomerService(customers domain.CustomerRepository, orders domain.OrderRepository, contacts domain.ContactRepository) domain.CustomerUseCase {
	return &customerService{
		customers: customers,
		orders:    orders,
		contacts:  contacts,
	}
}

func (s *customerService) List(ctx context.Context, query string, page int) ([]domain.Customer, domain.PageInfo, error) {
	req := domain.NewPageRequest(page, domain.CustomersPerPage)

	customers, total, err := s.customers.Search(ctx, query, req)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}

	// Attach last-contact recency per row
	now := time.Now()
	for i := range customers {
		last, err := s.contacts.LastByCustomer(ctx, customers[i].ID)
		if err != nil {
			return nil, domain.PageInfo{}, err
		}
		if last != nil {
			days := utils.DaysSince(last.ContactTime, now)
			customers[i].LastContact = last
			customers[i].LastContactDays = &days
		}
	}

	return customers, domain.NewPageInfo(req, total), nil
}

func (s *customerService) Detail(ctx context.Context, customerID uint, dateFrom, dateTo string) (*domain.CustomerDetail, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.customers.TotalRevenue(ctx, customerID)
	if err != nil {
		return nil, err
	}
	lastYearRevenue, err := s.customers.LastYearRevenue(ctx, customerID)
	if err != nil {
		return nil, err
	}
	customer.TotalRevenue = &totalRevenue
	customer.LastYearRevenue = &lastYearRevenue

	last, err := s.contacts.LastByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		days := utils.DaysSince(last.ContactTime, time.Now())
		customer.LastContact = last
		customer.LastContactDays = &days
	}

	detail := &domain.CustomerDetail{Customer: *customer}

	// The ranged KPI is opt-in; a malformed or partial date pair is
	// reported as a notice and the filter is simply not applied.
	if dateFrom != "" || dateTo != "" {
		if dateFrom == "" || dateTo == "" {
			detail.Notice = "both from and to are required for a revenue range"
		} else if from, to, perr := utils.ParseDayRange(dateFrom, dateTo); perr != nil {
			detail.Notice = perr.Error()
		} else {
			ranged, err := s.customers.RevenueBetween(ctx, customerID, from, to)
			if err != nil {
				return nil, err
			}
			detail.RangeRevenue = &ranged
			detail.RangeFrom = dateFrom
			detail.RangeTo = dateTo
		}
	}

	detail.RecentOrders, err = s.orders.RecentByCustomer(ctx, customerID, 10)
	if err != nil {
		return nil, err
	}
	detail.RecentContacts, err = s.contacts.RecentByCustomer(ctx, customerID, 10)
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *customerService) RangedRevenue(ctx context.Context, customerID uint, dateFrom, dateTo string) (decimal.Decimal, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return decimal.Zero, err
	}

	from, to, err := utils.ParseDayRange(dateFrom, dateTo)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid date range: %w", err)
	}

	return s.customers.RevenueBetween(ctx, customerID, from, to)
}

func (s *customerService) Update(ctx context.Context, customerID uint, payload domain.Customer) error {
	return s.customers.Update(ctx, customerID, payload)
}
