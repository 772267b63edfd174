package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

// TranslateDBError turns database errors into user-facing messages.
func TranslateDBError(err error) string {
	if err == nil {
		return ""
	}

	// PostgreSQL-specific errors
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // Unique violation
			msg := "Duplicate value, please use another"
			if strings.Contains(pgErr.Message, "customers_email_key") {
				msg = "A customer with this email already exists"
			} else if strings.Contains(pgErr.Message, "users_email_key") {
				msg = "A user with this email already exists"
			} else if strings.Contains(pgErr.Message, "products_sku_key") {
				msg = "A product with this SKU already exists"
			}
			return msg

		case "23503":
			return "This record references a row that does not exist"

		case "23502":
			return "Some required fields are missing"

		case "22P02":
			return "Invalid data format"
		}

		return "A database error occurred"
	}

	// Handle GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Record not found"
	}

	// Handle context timeouts
	lowerErr := strings.ToLower(err.Error())
	if strings.Contains(lowerErr, "context deadline exceeded") {
		return "Request timeout"
	}
	if strings.Contains(lowerErr, "context canceled") {
		return "Request was cancelled"
	}

	return err.Error()
}
