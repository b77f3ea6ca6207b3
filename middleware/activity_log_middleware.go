package middleware

import (
	"context"
	"log"
	"time"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityLogWriter is the slice of the store the logger needs.
type ActivityLogWriter interface {
	InsertActivityLog(ctx context.Context, entry models.ActivityLog) error
}

var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ActivityLoggingMiddleware records every non-GET request on the wrapped
// routes to the activity_logs collection. The write happens after the
// response, off the request goroutine; a failed log never fails the request.
func ActivityLoggingMiddleware(logs ActivityLogWriter, resourceType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			c.Next()
			return
		}

		c.Next()

		// Requester identity: verified token email when an auth middleware
		// ran, otherwise the client-supplied query field.
		email, ok := GetUserEmailFromContext(c)
		if !ok {
			email = c.Query("email")
		}

		statusCode := c.Writer.Status()
		status := models.StatusSuccess
		if statusCode >= 400 {
			status = models.StatusFailed
		}

		entry := models.ActivityLog{
			ID:             uuid.NewString(),
			RequesterEmail: email,
			Action:         actionVerb + "_" + resourceType,
			ResourceType:   resourceType,
			ResourceID:     c.Param("id"),
			Status:         status,
			StatusCode:     statusCode,
			CreatedAt:      time.Now().UTC(),
		}

		go func(entry models.ActivityLog) {
			ctx, cancel := config.WithCustomTimeout(5 * time.Second)
			defer cancel()
			if err := logs.InsertActivityLog(ctx, entry); err != nil {
				log.Printf("[activity-logging] failed to write entry: %v", err)
			}
		}(entry)
	}
}
