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

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Menu: svc}
}

func (c *MenuController) GetMenuItems(ctx *gin.Context) {
	items, err := c.Menu.GetAll()
	if err != nil {
		log.Printf("failed to list menu items: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error fetching menu items")
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *MenuController) CreateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Error creating menu item")
		return
	}
	item.ID = ""

	if item.Price < 0 {
		utils.JSONError(ctx, http.StatusBadRequest, "price must be non-negative")
		return
	}

	if err := c.Menu.Create(&item); err != nil {
		log.Printf("failed to create menu item: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error creating menu item")
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

func (c *MenuController) UpdateMenuItem(ctx *gin.Context) {
	var updates models.MenuItem
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "Error updating menu item")
		return
	}

	if updates.Price < 0 {
		utils.JSONError(ctx, http.StatusBadRequest, "price must be non-negative")
		return
	}

	item, err := c.Menu.Update(ctx.Param("id"), updates)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.JSONError(ctx, http.StatusNotFound, "Menu item not found")
			return
		}
		log.Printf("failed to update menu item: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error updating menu item")
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *MenuController) DeleteMenuItem(ctx *gin.Context) {
	item, err := c.Menu.Delete(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			utils.JSONError(ctx, http.StatusNotFound, "Menu item not found")
			return
		}
		log.Printf("failed to delete menu item: %v", err)
		utils.JSONError(ctx, http.StatusInternalServerError, "Error deleting menu item")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Menu item deleted", "item": item})
}
