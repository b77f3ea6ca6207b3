package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the error/status body shape the storefront expects:
// a bare {"message": "..."} object. Success responses for reads and writes
// echo the raw stored documents or the raw store mutation result instead.
type MessageResponse struct {
	Message string `json:"message"`
}

func Message(message string) MessageResponse {
	return MessageResponse{Message: message}
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// RateFromContext fetches rate limiter info stored by the middleware.
func RateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}
