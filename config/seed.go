package config

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kelias-gh/CRM/domain"
)

func strPtr(s string) *string { return &s }

// SeedDemoData fills empty tables with a small demo dataset: customers,
// a product catalog, orders with items, and contact history. Each section
// is guarded by a count so re-running is a no-op.
func SeedDemoData(db *gorm.DB) error {
	if err := seedCustomers(db); err != nil {
		return err
	}
	if err := seedProducts(db); err != nil {
		return err
	}
	if err := seedOrders(db); err != nil {
		return err
	}
	if err := seedContacts(db); err != nil {
		return err
	}
	return nil
}

func seedCustomers(db *gorm.DB) error {
	var count int64
	db.Model(&domain.Customer{}).Count(&count)
	if count > 0 {
		return nil
	}

	customers := []domain.Customer{
		{FirstName: "Anna", LastName: "Berger", Email: strPtr("anna.berger@example.com"), Phone: strPtr("+43 123 456789")},
		{FirstName: "Max", LastName: "Huber", Email: strPtr("max.huber@example.com"), Phone: strPtr("+43 987 654321")},
		{FirstName: "Lisa", LastName: "Mueller", Email: strPtr("lisa.mueller@example.com"), Phone: strPtr("+43 555 123456")},
		{FirstName: "Thomas", LastName: "Schmidt", Email: strPtr("thomas.schmidt@example.com"), Phone: strPtr("+43 777 888999")},
		{FirstName: "Sarah", LastName: "Wagner", Email: strPtr("sarah.wagner@example.com"), Phone: strPtr("+43 111 222333")},
	}

	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}
	log.Printf("Seeded %d sample customers", len(customers))
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	db.Model(&domain.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	products := []domain.Product{
		{SKU: "PROD-001", Name: "Software License Basic", BasePrice: decimal.RequireFromString("99.00")},
		{SKU: "PROD-002", Name: "Software License Pro", BasePrice: decimal.RequireFromString("199.00")},
		{SKU: "PROD-003", Name: "Support Package", BasePrice: decimal.RequireFromString("49.00")},
		{SKU: "PROD-004", Name: "Consulting Hour", BasePrice: decimal.RequireFromString("120.00")},
		{SKU: "PROD-005", Name: "Training Package", BasePrice: decimal.RequireFromString("299.00")},
	}

	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	log.Printf("Seeded %d sample products", len(products))
	return nil
}

// seedOrders creates 1-3 orders per customer with 2 items each. Totals are
// derived from the items, so the seeded data cannot drift from the invariant.
func seedOrders(db *gorm.DB) error {
	var count int64
	db.Model(&domain.Order{}).Count(&count)
	if count > 0 {
		return nil
	}

	var customers []domain.Customer
	if err := db.Order("id").Find(&customers).Error; err != nil {
		return err
	}
	var products []domain.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return err
	}
	if len(products) == 0 {
		return nil
	}

	for i, customer := range customers {
		for j := 1; j <= (i%3)+1; j++ {
			orderDate := time.Now().AddDate(0, 0, -(i*10 + j*5))
			status := domain.OrderStatusOpen
			if j%2 == 0 {
				status = domain.OrderStatusPaid
			}

			order := domain.Order{
				CustomerID: customer.ID,
				OrderDate:  orderDate,
				Status:     status,
			}

			total := decimal.Zero
			items := make([]domain.OrderItem, 0, 2)
			for k := 1; k <= 2; k++ {
				product := products[(i+j+k)%len(products)]
				quantity := (i+j+k)%3 + 1
				items = append(items, domain.OrderItem{
					ProductID: product.ID,
					Quantity:  quantity,
					UnitPrice: product.BasePrice,
				})
				total = total.Add(product.BasePrice.Mul(decimal.NewFromInt(int64(quantity))))
			}
			order.TotalAmount = total

			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&order).Error; err != nil {
					return err
				}
				for k := range items {
					items[k].OrderID = order.ID
				}
				return tx.Create(&items).Error
			})
			if err != nil {
				return fmt.Errorf("failed to seed orders: %w", err)
			}
		}
	}

	log.Print("Seeded sample orders")
	return nil
}

func seedContacts(db *gorm.DB) error {
	var count int64
	db.Model(&domain.Contact{}).Count(&count)
	if count > 0 {
		return nil
	}

	var customers []domain.Customer
	if err := db.Order("id").Find(&customers).Error; err != nil {
		return err
	}

	var admin domain.User
	var adminID *uint
	if err := db.Where("role = ?", domain.RoleAdmin).First(&admin).Error; err == nil {
		adminID = &admin.ID
	}

	subjects := []string{
		"Quote follow-up",
		"Appointment scheduling",
		"Support request",
		"Callback requested",
		"Contract renewal",
		"New features",
		"Training date",
		"Invoice question",
	}

	var contacts []domain.Contact
	for i, customer := range customers {
		for j := 2; j <= (i%3)+3; j++ {
			contactTime := time.Now().AddDate(0, 0, -(i*5 + j*2))
			channel := domain.ContactChannels[(i+j)%len(domain.ContactChannels)]
			subject := subjects[(i+j)%len(subjects)]
			notes := fmt.Sprintf("Sample note for the contact on %s.", contactTime.Format("2006-01-02"))

			contacts = append(contacts, domain.Contact{
				CustomerID:  customer.ID,
				UserID:      adminID,
				Channel:     channel,
				Subject:     &subject,
				Notes:       &notes,
				ContactTime: contactTime,
			})
		}
	}

	if len(contacts) == 0 {
		return nil
	}
	if err := db.Create(&contacts).Error; err != nil {
		return fmt.Errorf("failed to seed contacts: %w", err)
	}
	log.Print("Seeded sample contacts")
	return nil
}
