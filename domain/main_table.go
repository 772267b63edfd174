package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleStudent = "Student"
	RoleTeacher = "Teacher"
	RoleAdmin   = "Admin"

	OrderStatusOpen      = "Open"
	OrderStatusPaid      = "Paid"
	OrderStatusCancelled = "Cancelled"

	ChannelPhone   = "Phone"
	ChannelEmail   = "Email"
	ChannelMeeting = "Meeting"
	ChannelChat    = "Chat"

	CustomersPerPage = 20
	OrdersPerPage    = 50
	ContactsPerPage  = 50
)

// OrderStatuses lists the allowed order lifecycle states.
var OrderStatuses = []string{OrderStatusOpen, OrderStatusPaid, OrderStatusCancelled}

// ContactChannels lists the allowed contact channels.
var ContactChannels = []string{ChannelPhone, ChannelEmail, ChannelMeeting, ChannelChat}

func IsValidChannel(channel string) bool {
	for _, c := range ContactChannels {
		if c == channel {
			return true
		}
	}
	return false
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null;size:100" json:"name"`
	Email    *string `gorm:"unique;size:255" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	Role     string  `gorm:"not null;size:20;default:'Student'" json:"role"` // Student | Teacher | Admin

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Contacts []Contact `gorm:"foreignKey:UserID" json:"-"`
}

type Customer struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"not null;size:100" json:"first_name"`
	LastName  string  `gorm:"not null;size:100" json:"last_name"`
	Email     *string `gorm:"unique;size:255" json:"email,omitempty"`
	Phone     *string `gorm:"size:50" json:"phone,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Orders   []Order   `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE;" json:"-"`
	Contacts []Contact `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE;" json:"-"`

	// Computed per request, never stored
	FullName        string           `gorm:"-" json:"full_name"`
	TotalRevenue    *decimal.Decimal `gorm:"-" json:"total_revenue,omitempty"`
	LastYearRevenue *decimal.Decimal `gorm:"-" json:"last_year_revenue,omitempty"`
	LastContact     *Contact         `gorm:"-" json:"last_contact,omitempty"`
	LastContactDays *int             `gorm:"-" json:"last_contact_days,omitempty"`
}

type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	SKU       string          `gorm:"unique;size:100" json:"sku"`
	Name      string          `gorm:"not null;size:255" json:"name"`
	BasePrice decimal.Decimal `gorm:"not null;type:numeric(10,2)" json:"base_price"`

	OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"-"`
}

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"not null;index:idx_orders_customer_date,priority:1" json:"customer_id"`
	OrderDate   time.Time       `gorm:"not null;index:idx_orders_date;index:idx_orders_customer_date,priority:2" json:"order_date"`
	Status      string          `gorm:"size:20;default:'Open'" json:"status"` // Open | Paid | Cancelled
	TotalAmount decimal.Decimal `gorm:"not null;type:numeric(10,2)" json:"total_amount"`

	Customer Customer    `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;" json:"items,omitempty"`

	ItemCount int64 `gorm:"-" json:"item_count,omitempty"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"not null" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"not null;type:numeric(10,2)" json:"unit_price"` // snapshot at order time

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

type Contact struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index:idx_contacts_customer_time,priority:1" json:"customer_id"`
	UserID      *uint     `json:"user_id,omitempty"`
	Channel     string    `gorm:"not null;size:20" json:"channel"` // Phone | Email | Meeting | Chat
	Subject     *string   `gorm:"size:255" json:"subject,omitempty"`
	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`
	ContactTime time.Time `gorm:"not null;index:idx_contacts_time;index:idx_contacts_customer_time,priority:2" json:"contact_time"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	User     *User    `gorm:"foreignKey:UserID" json:"-"`
}
