package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kelias-gh/CRM/domain"
	"github.com/kelias-gh/CRM/utils"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) domain.ContactRepository {
	return &contactRepository{db: db}
}

const contactRowSelect = "contacts.id, contacts.contact_time, contacts.channel, contacts.subject, " +
	"customers.id AS customer_id, customers.last_name || ', ' || customers.first_name AS customer_name"

func (r *contactRepository) listQuery(ctx context.Context, channel string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Contact{}).
		Joins("JOIN customers ON customers.id = contacts.customer_id")
	if channel != "" {
		q = q.Where("contacts.channel = ?", channel)
	}
	return q
}

func (r *contactRepository) List(ctx context.Context, channel string, page domain.PageRequest) ([]domain.ContactRow, int64, error) {
	var total int64
	if err := r.listQuery(ctx, channel).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contacts: %w", err)
	}

	var rows []domain.ContactRow
	err := r.listQuery(ctx, channel).
		Select(contactRowSelect).
		Order("contacts.contact_time DESC, contacts.id DESC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch contacts: %w", err)
	}
	return rows, total, nil
}

func (r *contactRepository) Recent(ctx context.Context, limit int) ([]domain.ContactRow, error) {
	var rows []domain.ContactRow
	err := r.listQuery(ctx, "").
		Select(contactRowSelect).
		Order("contacts.contact_time DESC, contacts.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent contacts: %w", err)
	}
	return rows, nil
}

func (r *contactRepository) RecentByCustomer(ctx context.Context, customerID uint, limit int) ([]domain.Contact, error) {
	var contacts []domain.Contact
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("contact_time DESC, id DESC").
		Limit(limit).
		Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer contacts: %w", err)
	}
	return contacts, nil
}

func (r *contactRepository) LastByCustomer(ctx context.Context, customerID uint) (*domain.Contact, error) {
	var contact domain.Contact
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("contact_time DESC, id DESC").
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch last contact: %w", err)
	}
	return &contact, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	var customer domain.Customer
	if err := r.db.WithContext(ctx).First(&customer, contact.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCustomerNotFound
		}
		return errors.New(utils.TranslateDBError(err))
	}

	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return errors.New(utils.TranslateDBError(err))
	}
	return nil
}
