package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelias-gh/CRM/domain"
)

func TestCreateWithItemsDerivesTotalFromItems(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow(1, "Anna", "Berger"))
	// only the zero-priced item triggers a product lookup
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sku", "name", "base_price"}).
			AddRow(2, "PROD-002", "Support Plan", "25.00"))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	order := &domain.Order{
		CustomerID: 1,
		OrderDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.OrderStatusOpen,
	}
	items := []domain.OrderItem{
		{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("50.00")},
		{ProductID: 2, Quantity: 1}, // zero price, snapshots the base price
	}

	err := repo.CreateWithItems(context.Background(), order, items)
	require.NoError(t, err)

	// 2 x 50.00 + 1 x 25.00
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("125.00")),
		"got %s", order.TotalAmount)
	assert.Equal(t, uint(10), order.ID)
	for _, item := range order.Items {
		assert.Equal(t, uint(10), item.OrderID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItemsRejectsEmptyItems(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewOrderRepository(db)

	err := repo.CreateWithItems(context.Background(), &domain.Order{
		CustomerID: 1,
		Status:     domain.OrderStatusOpen,
	}, nil)
	assert.Error(t, err)
}

func TestCreateWithItemsRejectsUnknownStatus(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewOrderRepository(db)

	err := repo.CreateWithItems(context.Background(), &domain.Order{
		CustomerID: 1,
		Status:     "Shipped",
	}, []domain.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}})
	assert.Error(t, err)
}

func TestCreateWithItemsUnknownCustomer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.CreateWithItems(context.Background(), &domain.Order{
		CustomerID: 99,
		Status:     domain.OrderStatusOpen,
	}, []domain.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItemsRollsBackWhenItemInsertFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "customers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow(1, "Anna", "Berger"))
	mock.ExpectQuery(`INSERT INTO "orders"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(`INSERT INTO "order_items"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err := repo.CreateWithItems(context.Background(), &domain.Order{
		CustomerID: 1,
		Status:     domain.OrderStatusOpen,
	}, []domain.OrderItem{{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(5)}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
