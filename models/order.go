package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Known order statuses. The column is an open string; stored data predating
// this list must keep loading, so updates are not validated against it.
const (
	OrderStatusPending   = "Pending"
	OrderStatusPreparing = "Preparing"
	OrderStatusReady     = "Ready"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// OrderLine is one line of an order. Price is the unit price snapshot taken
// when the order was placed; later menu price changes do not touch it.
type OrderLine struct {
	MenuItemID string  `json:"menuItemId"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Order struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	GuestID string `gorm:"index;size:36" json:"guestId"`

	// Lines are embedded in the order row as a JSON array.
	Items datatypes.JSONSlice[OrderLine] `json:"items"`

	// Client-supplied at creation and authoritative thereafter. The read
	// path recomputes a display total from current menu prices but never
	// writes it back here.
	TotalPrice float64 `json:"totalPrice"`

	Status string `gorm:"size:64;default:Pending" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}
