package dto

import (
	"strings"

	"github.com/kelias-gh/CRM/domain"
)

type UpdateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=255"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
}

// NormalizeOptional maps trimmed-empty input to "no value" so an empty
// string is never persisted.
func NormalizeOptional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func MapUpdateCustomerRequest(req *UpdateCustomerRequest) domain.Customer {
	return domain.Customer{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     NormalizeOptional(req.Email),
		Phone:     NormalizeOptional(req.Phone),
	}
}

type RevenueQuery struct {
	From string `form:"from" binding:"required,dateformat"`
	To   string `form:"to" binding:"required,dateformat"`
}
