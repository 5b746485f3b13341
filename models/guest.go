package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Guest struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `json:"name"`
	Contact string `json:"contact"`
	RoomNo  string `gorm:"size:50" json:"roomNo"`

	CheckInDate *time.Time `json:"checkInDate"`

	// "Paid" | "Unpaid" — informational label only, not derived from bills
	BillStatus string `gorm:"size:64;default:Unpaid" json:"billStatus"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
