package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelias-gh/CRM/domain"
)

type fakeCustomerRepo struct {
	customers map[uint]domain.Customer

	totalRevenue    decimal.Decimal
	lastYearRevenue decimal.Decimal
	rangeRevenue    decimal.Decimal

	rangeCalled bool
	rangeFrom   time.Time
	rangeTo     time.Time
}

func (f *fakeCustomerRepo) Search(ctx context.Context, query string, page domain.PageRequest) ([]domain.Customer, int64, error) {
	var out []domain.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, customerID uint) (*domain.Customer, error) {
	c, ok := f.customers[customerID]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customerID uint, payload domain.Customer) error {
	if _, ok := f.customers[customerID]; !ok {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, customerID uint) error { return nil }

func (f *fakeCustomerRepo) TopByName(ctx context.Context, limit int) ([]domain.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) TotalRevenue(ctx context.Context, customerID uint) (decimal.Decimal, error) {
	return f.totalRevenue, nil
}

func (f *fakeCustomerRepo) LastYearRevenue(ctx context.Context, customerID uint) (decimal.Decimal, error) {
	return f.lastYearRevenue, nil
}

func (f *fakeCustomerRepo) RevenueBetween(ctx context.Context, customerID uint, from, to time.Time) (decimal.Decimal, error) {
	f.rangeCalled = true
	f.rangeFrom = from
	f.rangeTo = to
	return f.rangeRevenue, nil
}

type fakeOrderRepo struct{}

func (f *fakeOrderRepo) List(ctx context.Context, query string, page domain.PageRequest) ([]domain.OrderRow, int64, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) Recent(ctx context.Context, limit int) ([]domain.OrderRow, error) {
	return nil, nil
}

func (f *fakeOrderRepo) RecentByCustomer(ctx context.Context, customerID uint, limit int) ([]domain.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	return nil
}

func newCustomerFixture() (*fakeCustomerRepo, domain.CustomerUseCase, *fakeContactRepo) {
	customers := &fakeCustomerRepo{
		customers: map[uint]domain.Customer{
			1: {ID: 1, FirstName: "Anna", LastName: "Berger", FullName: "Anna Berger"},
		},
		totalRevenue:    decimal.RequireFromString("125.00"),
		lastYearRevenue: decimal.RequireFromString("50.00"),
		rangeRevenue:    decimal.RequireFromString("40.00"),
	}
	contacts := &fakeContactRepo{}
	svc := NewCustomerService(customers, &fakeOrderRepo{}, contacts)
	return customers, svc, contacts
}

func TestDetailAttachesRevenueKPIs(t *testing.T) {
	_, svc, _ := newCustomerFixture()

	detail, err := svc.Detail(context.Background(), 1, "", "")
	require.NoError(t, err)

	require.NotNil(t, detail.Customer.TotalRevenue)
	assert.True(t, detail.Customer.TotalRevenue.Equal(decimal.RequireFromString("125.00")))
	require.NotNil(t, detail.Customer.LastYearRevenue)
	assert.True(t, detail.Customer.LastYearRevenue.Equal(decimal.RequireFromString("50.00")))
	assert.Nil(t, detail.RangeRevenue)
	assert.Empty(t, detail.Notice)
}

func TestDetailAttachesLastContactDays(t *testing.T) {
	_, svc, contacts := newCustomerFixture()
	contacts.lastByCustomer = func(customerID uint) (*domain.Contact, error) {
		return &domain.Contact{
			ID:          5,
			CustomerID:  customerID,
			Channel:     domain.ChannelPhone,
			ContactTime: time.Now().AddDate(0, 0, -3),
		}, nil
	}

	detail, err := svc.Detail(context.Background(), 1, "", "")
	require.NoError(t, err)
	require.NotNil(t, detail.Customer.LastContactDays)
	assert.Equal(t, 3, *detail.Customer.LastContactDays)
}

func TestDetailRangedRevenueApplied(t *testing.T) {
	customers, svc, _ := newCustomerFixture()

	detail, err := svc.Detail(context.Background(), 1, "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	require.NotNil(t, detail.RangeRevenue)
	assert.True(t, detail.RangeRevenue.Equal(decimal.RequireFromString("40.00")))
	assert.Equal(t, "2024-01-01", detail.RangeFrom)
	assert.Equal(t, "2024-01-31", detail.RangeTo)

	// half-open window: the whole end day is included
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), customers.rangeFrom)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), customers.rangeTo)
}

func TestDetailPartialRangeYieldsNotice(t *testing.T) {
	customers, svc, _ := newCustomerFixture()

	detail, err := svc.Detail(context.Background(), 1, "2024-01-01", "")
	require.NoError(t, err)

	assert.NotEmpty(t, detail.Notice)
	assert.Nil(t, detail.RangeRevenue)
	assert.False(t, customers.rangeCalled)
}

func TestDetailMalformedRangeYieldsNotice(t *testing.T) {
	customers, svc, _ := newCustomerFixture()

	detail, err := svc.Detail(context.Background(), 1, "not-a-date", "2024-01-31")
	require.NoError(t, err)

	assert.NotEmpty(t, detail.Notice)
	assert.Nil(t, detail.RangeRevenue)
	assert.False(t, customers.rangeCalled)
}

func TestDetailUnknownCustomer(t *testing.T) {
	_, svc, _ := newCustomerFixture()

	_, err := svc.Detail(context.Background(), 99, "", "")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestRangedRevenueUnknownCustomer(t *testing.T) {
	_, svc, _ := newCustomerFixture()

	_, err := svc.RangedRevenue(context.Background(), 99, "2024-01-01", "2024-01-31")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestRangedRevenueRejectsBadDates(t *testing.T) {
	_, svc, _ := newCustomerFixture()

	_, err := svc.RangedRevenue(context.Background(), 1, "2024-13-99", "2024-01-31")
	assert.Error(t, err)
}
