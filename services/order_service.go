package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-fos-backend/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order_not_found")

type OrderService struct {
	DB    *gorm.DB
	Bills *BillService
}

func NewOrderService(db *gorm.DB, bills *BillService) *OrderService {
	return &OrderService{DB: db, Bills: bills}
}

// OrderGuestView is the guest sub-record on an enriched order.
type OrderGuestView struct {
	Name   string `json:"name"`
	RoomNo string `json:"roomNo"`
}

type OrderMenuItemView struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderLineView carries the resolved menu item and the line total at
// current menu prices.
type OrderLineView struct {
	MenuItemID string            `json:"menuItemId"`
	Quantity   int               `json:"quantity"`
	MenuItem   OrderMenuItemView `json:"menuItem"`
	Price      float64           `json:"price"`
}

// OrderView is the denormalized order shape served to the frontend.
// TotalPrice here is recomputed from resolved lines for display; the stored
// order total is left untouched.
type OrderView struct {
	ID         string          `json:"id"`
	GuestID    string          `json:"guestId"`
	Guest      OrderGuestView  `json:"guest"`
	Items      []OrderLineView `json:"items"`
	TotalPrice float64         `json:"totalPrice"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// List joins every order against guest and menu reference data. Reference
// rows are batch-fetched once, so the cost is three queries regardless of
// order count. Missing references never fail the listing.
func (s *OrderService) List() ([]OrderView, error) {
	var orders []models.Order
	if err := s.DB.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	guests, err := s.lookupGuests(orders)
	if err != nil {
		return nil, err
	}
	menuItems, err := s.lookupMenuItems(orders)
	if err != nil {
		return nil, err
	}

	return buildOrderViews(orders, guests, menuItems), nil
}

func (s *OrderService) lookupGuests(orders []models.Order) (map[string]models.Guest, error) {
	ids := make([]string, 0, len(orders))
	seen := make(map[string]bool, len(orders))
	for _, order := range orders {
		if !seen[order.GuestID] {
			seen[order.GuestID] = true
			ids = append(ids, order.GuestID)
		}
	}

	byID := make(map[string]models.Guest, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	var guests []models.Guest
	if err := s.DB.Where("id IN ?", ids).Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}
	for _, g := range guests {
		byID[g.ID] = g
	}
	return byID, nil
}

func (s *OrderService) lookupMenuItems(orders []models.Order) (map[string]models.MenuItem, error) {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, order := range orders {
		for _, line := range order.Items {
			if !seen[line.MenuItemID] {
				seen[line.MenuItemID] = true
				ids = append(ids, line.MenuItemID)
			}
		}
	}

	byID := make(map[string]models.MenuItem, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	var items []models.MenuItem
	if err := s.DB.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	for _, m := range items {
		byID[m.ID] = m
	}
	return byID, nil
}

// buildOrderViews assembles enriched views in store iteration order. The
// "Unknown" placeholders exist only here, at the edge where lookup misses
// are rendered.
func buildOrderViews(orders []models.Order, guests map[string]models.Guest, menuItems map[string]models.MenuItem) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := OrderView{
			ID:        order.ID,
			GuestID:   order.GuestID,
			Status:    order.Status,
			CreatedAt: order.CreatedAt,
			Items:     make([]OrderLineView, 0, len(order.Items)),
		}

		if guest, ok := guests[order.GuestID]; ok {
			view.Guest = OrderGuestView{Name: guest.Name, RoomNo: guest.RoomNo}
		} else {
			view.Guest = OrderGuestView{Name: "Unknown", RoomNo: "Unknown"}
		}

		for _, line := range order.Items {
			lineView := OrderLineView{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
			}
			if item, ok := menuItems[line.MenuItemID]; ok {
				lineView.MenuItem = OrderMenuItemView{Name: item.Name, Price: item.Price}
				lineView.Price = float64(line.Quantity) * item.Price
			} else {
				lineView.MenuItem = OrderMenuItemView{Name: "Unknown", Price: 0}
				lineView.Price = 0
			}
			view.Items = append(view.Items, lineView)
			view.TotalPrice += lineView.Price
		}

		views = append(views, view)
	}
	return views
}

// Create persists the order and then reconciles the guest's bill. The bill
// step runs only after the order is durable; if it fails the order stays
// saved and the error surfaces to the caller (no rollback).
func (s *OrderService) Create(order *models.Order) error {
	if err := s.DB.Create(order).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	if err := s.Bills.ApplyOrderCharge(order.GuestID, order.TotalPrice); err != nil {
		return fmt.Errorf("order %s saved but bill reconciliation failed: %w", order.ID, err)
	}
	return nil
}

// UpdateStatus changes only the status field. Any string is accepted; the
// bill is not touched.
func (s *OrderService) UpdateStatus(id, status string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order %s: %w", id, err)
	}

	if err := s.DB.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}
	return &order, nil
}

// Delete reconciles the bill first and removes the order row last, so a
// failed bill write never strands a deleted order's charge on the bill.
func (s *OrderService) Delete(id string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order %s: %w", id, err)
	}

	if err := s.Bills.ReverseOrderCharge(order.GuestID, order.TotalPrice); err != nil {
		return nil, err
	}

	if err := s.DB.Delete(&models.Order{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return &order, nil
}
