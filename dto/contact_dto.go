package dto

import (
	"time"

	"github.com/kelias-gh/CRM/domain"
)

type LogContactRequest struct {
	CustomerID  uint       `json:"customer_id" binding:"required,min=1"`
	Channel     string     `json:"channel" binding:"required,oneof=Phone Email Meeting Chat"`
	Subject     string     `json:"subject" binding:"omitempty,max=255"`
	Notes       string     `json:"notes" binding:"omitempty"`
	ContactTime *time.Time `json:"contact_time"` // omitted: now
}

func MapLogContactRequest(req *LogContactRequest, userID *uint) domain.Contact {
	contactTime := time.Now()
	if req.ContactTime != nil {
		contactTime = *req.ContactTime
	}

	return domain.Contact{
		CustomerID:  req.CustomerID,
		UserID:      userID,
		Channel:     req.Channel,
		Subject:     NormalizeOptional(req.Subject),
		Notes:       NormalizeOptional(req.Notes),
		ContactTime: contactTime,
	}
}
