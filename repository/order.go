package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/utils"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

const orderRowSelect = "orders.id, orders.order_date, orders.total_amount, orders.status, " +
	"customers.id AS customer_id, customers.last_name || ', ' || customers.first_name AS customer_name"

// listQuery builds a fresh joined query filtered by the search term, which
// matches the order id as text or the customer's first/last name.
func (r *orderRepository) listQuery(ctx context.Context, query string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Order{}).
		Joins("JOIN customers ON customers.id = orders.customer_id")
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"CAST(orders.id AS TEXT) ILIKE ? OR customers.first_name ILIKE ? OR customers.last_name ILIKE ?",
			like, like, like,
		)
	}
	return q
}

func (r *orderRepository) List(ctx context.Context, query string, page domain.PageRequest) ([]domain.OrderRow, int64, error) {
	var total int64
	if err := r.listQuery(ctx, query).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var rows []domain.OrderRow
	err := r.listQuery(ctx, query).
		Select(orderRowSelect).
		Order("orders.order_date DESC, orders.id DESC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return rows, total, nil
}

func (r *orderRepository) Recent(ctx context.Context, limit int) ([]domain.OrderRow, error) {
	var rows []domain.OrderRow
	err := r.listQuery(ctx, "").
		Select(orderRowSelect).
		Order("orders.order_date DESC, orders.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}
	return rows, nil
}

func (r *orderRepository) RecentByCustomer(ctx context.Context, customerID uint, limit int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("order_date DESC, id DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer orders: %w", err)
	}

	for i := range orders {
		var count int64
		err := r.db.WithContext(ctx).Model(&domain.OrderItem{}).
			Where("order_id = ?", orders[i].ID).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count order items: %w", err)
		}
		orders[i].ItemCount = count
	}
	return orders, nil
}

// CreateWithItems persists an order and its items atomically. The order
// total is always the sum of quantity x unit price over the items; it is
// computed here, never taken from the caller.
func (r *orderRepository) CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	if len(items) == 0 {
		return errors.New("an order needs at least one item")
	}
	if !domain.IsValidOrderStatus(order.Status) {
		return fmt.Errorf("unknown order status %q", order.Status)
	}

	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var customer domain.Customer
	if err := tx.First(&customer, order.CustomerID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCustomerNotFound
		}
		return errors.New(utils.TranslateDBError(err))
	}

	total := decimal.Zero
	for i := range items {
		if items[i].Quantity <= 0 {
			tx.Rollback()
			return errors.New("item quantity must be positive")
		}

		// A zero unit price means "snapshot the product's current base price"
		if items[i].UnitPrice.IsZero() {
			var product domain.Product
			if err := tx.First(&product, items[i].ProductID).Error; err != nil {
				tx.Rollback()
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product %d not found", items[i].ProductID)
				}
				return errors.New(utils.TranslateDBError(err))
			}
			items[i].UnitPrice = product.BasePrice
		}

		total = total.Add(items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity))))
	}
	order.TotalAmount = total

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return errors.New(utils.TranslateDBError(err))
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := tx.Create(&items).Error; err != nil {
		tx.Rollback()
		return errors.New(utils.TranslateDBError(err))
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	order.Items = items
	return nil
}
