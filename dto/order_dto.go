package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kelias-gh/CRM/domain"
)

type OrderItemRequest struct {
	ProductID uint             `json:"product_id" binding:"required,min=1"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price"` // omitted: snapshot the product's current base price
}

type CreateOrderRequest struct {
	CustomerID uint               `json:"customer_id" binding:"required,min=1"`
	OrderDate  *time.Time         `json:"order_date"`
	Status     string             `json:"status" binding:"omitempty,oneof=Open Paid Cancelled"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func MapCreateOrderRequest(req *CreateOrderRequest) (domain.Order, []domain.OrderItem) {
	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	status := req.Status
	if status == "" {
		status = domain.OrderStatusOpen
	}

	order := domain.Order{
		CustomerID: req.CustomerID,
		OrderDate:  orderDate,
		Status:     status,
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		item := domain.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
		if it.UnitPrice != nil {
			item.UnitPrice = *it.UnitPrice
		}
		items = append(items, item)
	}

	return order, items
}
