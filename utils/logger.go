package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
)

func ColorText(text, color string) string {
	return color + text + Reset
}

func ColorStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return ColorText(fmt.Sprintf("%d", statusCode), Green)
	case statusCode >= 400 && statusCode < 500:
		return ColorText(fmt.Sprintf("%d", statusCode), Yellow)
	case statusCode >= 500:
		return ColorText(fmt.Sprintf("%d", statusCode), Red)
	default:
		return fmt.Sprintf("%d", statusCode)
	}
}

// GetAPIHitter identifies the caller for log lines: the authenticated user
// when the auth middleware ran, the client IP otherwise.
func GetAPIHitter(c *gin.Context) string {
	if name, exists := c.Get("userName"); exists {
		if s, ok := name.(string); ok && s != "" {
			return s
		}
	}
	return c.ClientIP()
}

func PrintLogInfo(caller *string, statusCode int, functionName string, err *error) {
	who := "Anonymous"
	if caller != nil {
		who = *caller
	}

	event := log.Info()
	if statusCode >= http.StatusInternalServerError {
		event = log.Error()
	} else if statusCode >= http.StatusBadRequest {
		event = log.Warn()
	}

	if err != nil && *err != nil {
		event = event.Err(*err)
	}

	event.
		Int("status", statusCode).
		Str("caller", who).
		Str("function", functionName).
		Send()

	fmt.Printf("Caller: %s | Status: %s | Function: %s\n", who, ColorStatus(statusCode), functionName)
}
