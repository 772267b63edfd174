package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/utils"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

const revenueSQL = `SELECT COALESCE(SUM(total_amount), 0) FROM "orders" WHERE customer_id = $1 AND status <> $2`

func TestTotalRevenueExcludesCancelled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	// {100.00 Paid, 50.00 Cancelled, 25.00 Open} sums to 125.00 because the
	// query itself filters the cancelled order out
	mock.ExpectQuery(regexp.QuoteMeta(revenueSQL)).
		WithArgs(1, domain.OrderStatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("125.00"))

	total, err := repo.TotalRevenue(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("125.00")), "got %s", total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTotalRevenueZeroWithoutQualifyingOrders(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(revenueSQL)).
		WithArgs(7, domain.OrderStatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))

	total, err := repo.TotalRevenue(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueBetweenUsesHalfOpenWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	from, to := utils.DayRange(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	rangedSQL := regexp.QuoteMeta(revenueSQL) +
		` AND \(?order_date >= \$3 AND order_date < \$4\)?`
	mock.ExpectQuery(rangedSQL).
		WithArgs(1, domain.OrderStatusCancelled, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("40.00"))

	total, err := repo.RevenueBetween(context.Background(), 1, from, to)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("40.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestGetByIDFillsFullName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow(1, "Anna", "Berger"))

	customer, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Anna Berger", customer.FullName)
}
