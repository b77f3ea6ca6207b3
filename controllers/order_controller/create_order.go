package order_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/al-mohaimin-farabi/pet-club-backend/config"
	"github.com/al-mohaimin-farabi/pet-club-backend/models"
	"github.com/gin-gonic/gin"
)

func (ctl *Controller) CreateOrder(c *gin.Context) {
	log.Println("[orders] create")

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Message("Invalid request: "+err.Error()))
		return
	}

	order := models.Order{
		Email:      req.Email,
		Name:       req.Name,
		Address:    req.Address,
		Phone:      req.Phone,
		Items:      req.Items,
		TotalPrice: req.TotalPrice,
		Status:     req.Status,
		CreatedAt:  time.Now().UTC(),
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := ctl.store.InsertOrder(ctx, order)
	if err != nil {
		log.Printf("[orders] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.Message("Failed to add order"))
		return
	}

	log.Println("[orders] order added")
	c.JSON(http.StatusOK, result)
}
