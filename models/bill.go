package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill is a guest's running total. FoodCharges tracks the sum of totalPrice
// across the guest's live orders (best effort, see services.BillService);
// TotalAmount must equal RoomCharges + FoodCharges after every write.
type Bill struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	GuestID string `gorm:"index;size:36" json:"guestId"`

	RoomCharges float64 `json:"roomCharges"`
	FoodCharges float64 `json:"foodCharges"`
	TotalAmount float64 `json:"totalAmount"`

	PaymentStatus string `gorm:"size:64;default:Unpaid" json:"paymentStatus"`
}

func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
