package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-fos-backend/models"
	"hotel-fos-backend/services"
	"hotel-fos-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Guests *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{Guests: svc}
}

func (c *GuestController) GetGuests(ctx *gin.Context) {
	guests, err := c.Guests.GetAll()
	if err != nil {
		log.Printf("failed to list guests: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Server error")
		return
	}
	ctx.JSON(http.StatusOK, guests)
}

func (c *GuestController) CreateGuest(ctx *gin.Context) {
	var guest models.Guest
	if err := ctx.ShouldBindJSON(&guest); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}
	guest.ID = ""

	if err := c.Guests.Create(&guest); err != nil {
		log.Printf("failed to create guest: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Server error")
		return
	}
	ctx.JSON(http.StatusOK, guest)
}

func (c *GuestController) UpdateGuest(ctx *gin.Context) {
	var updates models.Guest
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Invalid request payload")
		return
	}

	guest, err := c.Guests.Update(ctx.Param("id"), updates)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.JSONError(ctx, http.StatusNotFound, "Guest not found")
			return
		}
		log.Printf("failed to update guest: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Server error")
		return
	}
	ctx.JSON(http.StatusOK, guest)
}

func (c *GuestController) DeleteGuest(ctx *gin.Context) {
	if err := c.Guests.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			utils.JSONError(ctx, http.StatusNotFound, "Guest not found")
			return
		}
		log.Printf("failed to delete guest: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Server error")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}
