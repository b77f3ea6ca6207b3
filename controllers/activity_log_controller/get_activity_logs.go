package activity_log_controller

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

const defaultLimit = 100

type Store interface {
	ListActivityLogs(ctx context.Context, limit int64) ([]models.ActivityLog, error)
}

// Controller serves the audit trail written by the activity logging
// middleware, newest first.
type Controller struct {
	store Store
}

func New(s Store) *Controller {
	return &Controller{store: s}
}

// GetActivityLogs lists recent audit entries. The limit query parameter caps
// the page size; anything unparseable falls back to the default.
func (ctl *Controller) GetActivityLogs(c *gin.Context) {
	log.Println("[activity-logs] list (admin protected)")

	limit := int64(defaultLimit)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	entries, err := ctl.store.ListActivityLogs(ctx, limit)
	if err != nil {
		log.Printf("[activity-logs] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Database error"))
		return
	}

	c.JSON(http.StatusOK, entries)
}
