package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"hotel-fos-backend/models"
	"hotel-fos-backend/services"
	"hotel-fos-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Orders: svc}
}

// ----------------------------------------------------
// 1. List Orders (GET /api/order)
// ----------------------------------------------------

func (c *OrderController) GetOrders(ctx *gin.Context) {
	views, err := c.Orders.List()
	if err != nil {
		log.Printf("failed to list orders: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error fetching orders")
		return
	}
	ctx.JSON(http.StatusOK, views)
}

// ----------------------------------------------------
// 2. Create Order (POST /api/order)
// ----------------------------------------------------

func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order.GuestID = strings.TrimSpace(order.GuestID)
	if order.GuestID == "" {
		utils.JSONError(ctx, http.StatusBadRequest, "guestId is required")
		return
	}

	// id and createdAt are server-assigned, whatever the client sent
	order.ID = ""
	order.CreatedAt = time.Time{}

	if err := c.Orders.Create(&order); err != nil {
		log.Printf("failed to create order: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error creating order")
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// ----------------------------------------------------
// 3. Update Order Status (PUT /api/order/:id)
// ----------------------------------------------------

func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var payload struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "status is required")
		return
	}

	order, err := c.Orders.UpdateStatus(ctx.Param("id"), payload.Status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.JSONError(ctx, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("failed to update order status: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error updating order")
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// ----------------------------------------------------
// 4. Delete Order (DELETE /api/order/:id)
// ----------------------------------------------------

func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	order, err := c.Orders.Delete(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.JSONError(ctx, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("failed to delete order: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error deleting order")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order deleted", "order": order})
}
