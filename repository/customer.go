package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/utils"
)

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return &customerRepository{db: db}
}

// searchQuery builds a fresh filtered query; callers chain their own
// ordering and pagination onto it.
func (r *customerRepository) searchQuery(ctx context.Context, query string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Customer{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			like, like, like, like,
		)
	}
	return q
}

func (r *customerRepository) Search(ctx context.Context, query string, page domain.PageRequest) ([]domain.Customer, int64, error) {
	var total int64
	if err := r.searchQuery(ctx, query).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var customers []domain.Customer
	err := r.searchQuery(ctx, query).
		Order("last_name, first_name, id").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&customers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch customers: %w", err)
	}

	for i := range customers {
		customers[i].FullName = customers[i].FirstName + " " + customers[i].LastName
	}
	return customers, total, nil
}

func (r *customerRepository) GetByID(ctx context.Context, customerID uint) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).First(&customer, customerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, errors.New(utils.TranslateDBError(err))
	}
	customer.FullName = customer.FirstName + " " + customer.LastName
	return &customer, nil
}

func (r *customerRepository) TopByName(ctx context.Context, limit int) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.WithContext(ctx).
		Order("last_name, first_name, id").
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	for i := range customers {
		customers[i].FullName = customers[i].FirstName + " " + customers[i].LastName
	}
	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, customerID uint, payload domain.Customer) error {
	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var existing domain.Customer
	if err := tx.First(&existing, customerID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCustomerNotFound
		}
		return errors.New(utils.TranslateDBError(err))
	}

	// Email must stay unique across the other customers
	if payload.Email != nil {
		var emailCount int64
		err := tx.Model(&domain.Customer{}).
			Where("email = ? AND id != ?", *payload.Email, customerID).
			Count(&emailCount).Error
		if err != nil {
			tx.Rollback()
			return errors.New(utils.TranslateDBError(err))
		}
		if emailCount > 0 {
			tx.Rollback()
			return errors.New("email is already used by another customer")
		}
	}

	// Map update so nil pointers clear the column instead of being skipped
	err := tx.Model(&domain.Customer{}).
		Where("id = ?", customerID).
		Updates(map[string]interface{}{
			"first_name": payload.FirstName,
			"last_name":  payload.LastName,
			"email":      payload.Email,
			"phone":      payload.Phone,
		}).Error
	if err != nil {
		tx.Rollback()
		return errors.New(utils.TranslateDBError(err))
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit customer update: %w", err)
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, customerID uint) error {
	var customer domain.Customer
	if err := r.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCustomerNotFound
		}
		return errors.New(utils.TranslateDBError(err))
	}

	// Orders, order items and contacts go with it via ON DELETE CASCADE
	if err := r.db.WithContext(ctx).Delete(&customer).Error; err != nil {
		return errors.New(utils.TranslateDBError(err))
	}
	return nil
}

// sumOrders is the one revenue aggregate: Cancelled orders never count, and
// an empty result is exactly 0.
func (r *customerRepository) sumOrders(ctx context.Context, customerID uint, window func(*gorm.DB) *gorm.DB) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("customer_id = ? AND status <> ?", customerID, domain.OrderStatusCancelled)
	if window != nil {
		q = window(q)
	}

	var total decimal.Decimal
	if err := q.Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	return total, nil
}

func (r *customerRepository) TotalRevenue(ctx context.Context, customerID uint) (decimal.Decimal, error) {
	return r.sumOrders(ctx, customerID, nil)
}

func (r *customerRepository) LastYearRevenue(ctx context.Context, customerID uint) (decimal.Decimal, error) {
	start, end := utils.LastCalendarYearRange(time.Now())
	return r.sumOrders(ctx, customerID, func(q *gorm.DB) *gorm.DB {
		return q.Where("order_date >= ? AND order_date < ?", start, end)
	})
}

func (r *customerRepository) RevenueBetween(ctx context.Context, customerID uint, from, to time.Time) (decimal.Decimal, error) {
	return r.sumOrders(ctx, customerID, func(q *gorm.DB) *gorm.DB {
		return q.Where("order_date >= ? AND order_date < ?", from, to)
	})
}
