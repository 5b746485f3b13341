package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-fos-backend/services"
	"hotel-fos-backend/utils"

	"github.com/gin-gonic/gin"
)

type BillController struct {
	Bills *services.BillService
}

func NewBillController(svc *services.BillService) *BillController {
	return &BillController{Bills: svc}
}

// GET /api/bill/:guestId — responds with a JSON null body when the guest has
// no bill yet.
func (c *BillController) GetBillByGuest(ctx *gin.Context) {
	bill, err := c.Bills.GetByGuest(ctx.Param("guestId"))
	if err != nil {
		log.Printf("failed to fetch bill: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error fetching bill")
		return
	}
	ctx.JSON(http.StatusOK, bill)
}

// PUT /api/bill/:id
func (c *BillController) UpdateBillPayment(ctx *gin.Context) {
	var payload struct {
		PaymentStatus string `json:"paymentStatus" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "paymentStatus is required")
		return
	}

	bill, err := c.Bills.UpdatePaymentStatus(ctx.Param("id"), payload.PaymentStatus)
	if err != nil {
		if errors.Is(err, services.ErrBillNotFound) {
			utils.JSONError(ctx, http.StatusNotFound, "Bill not found")
			return
		}
		log.Printf("failed to update bill: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error updating bill")
		return
	}

	ctx.JSON(http.StatusOK, bill)
}
