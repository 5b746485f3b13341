package services

import (
	"errors"
	"fmt"
	"log"

	"hotel-fos-backend/models"

	"gorm.io/gorm"
)

var ErrBillNotFound = errors.New("bill_not_found")

// BillService keeps each guest's running bill in line with their live
// orders. Charges are applied with single-statement increments so two
// concurrent orders for one guest cannot lose an update; the remaining gap
// is lazy bill creation, where two concurrent first orders can both see "no
// bill" and insert one each (the at-most-one-bill-per-guest rule is soft).
type BillService struct {
	DB *gorm.DB
}

func NewBillService(db *gorm.DB) *BillService {
	return &BillService{DB: db}
}

// GetByGuest returns nil (no error) when the guest has no bill.
func (s *BillService) GetByGuest(guestID string) (*models.Bill, error) {
	var bill models.Bill
	err := s.DB.Where("guest_id = ?", guestID).First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load bill for guest %s: %w", guestID, err)
	}
	return &bill, nil
}

func (s *BillService) UpdatePaymentStatus(id, paymentStatus string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.DB.First(&bill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to load bill %s: %w", id, err)
	}

	if err := s.DB.Model(&bill).Update("payment_status", paymentStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to update bill %s: %w", id, err)
	}
	return &bill, nil
}

// ApplyOrderCharge adds a freshly created order's total to the guest's bill,
// creating the bill on the guest's first order. TotalAmount moves by the
// same delta, which preserves TotalAmount == RoomCharges + FoodCharges
// without the statement reading its own writes (MySQL evaluates SET
// left-to-right against updated values, so the two columns must not
// reference each other).
func (s *BillService) ApplyOrderCharge(guestID string, amount float64) error {
	res := s.DB.Model(&models.Bill{}).Where("guest_id = ?", guestID).
		Updates(map[string]interface{}{
			"food_charges": gorm.Expr("food_charges + ?", amount),
			"total_amount": gorm.Expr("total_amount + ?", amount),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to add charge for guest %s: %w", guestID, res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports changed rows, not matched rows, so a zero-amount charge
	// against an existing bill also lands here. Re-check before creating.
	var existing int64
	if err := s.DB.Model(&models.Bill{}).Where("guest_id = ?", guestID).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check bill for guest %s: %w", guestID, err)
	}
	if existing > 0 {
		return nil
	}

	bill := models.Bill{
		GuestID:       guestID,
		RoomCharges:   0,
		FoodCharges:   amount,
		TotalAmount:   amount,
		PaymentStatus: "Unpaid",
	}
	if err := s.DB.Create(&bill).Error; err != nil {
		return fmt.Errorf("failed to create bill for guest %s: %w", guestID, err)
	}
	return nil
}

// ReverseOrderCharge removes a deleted order's total from the guest's bill.
// A guest without a bill is skipped silently. FoodCharges may go negative
// when charges were reconciled out of order; the exact arithmetic is kept
// rather than flooring at zero.
func (s *BillService) ReverseOrderCharge(guestID string, amount float64) error {
	res := s.DB.Model(&models.Bill{}).Where("guest_id = ?", guestID).
		Updates(map[string]interface{}{
			"food_charges": gorm.Expr("food_charges - ?", amount),
			"total_amount": gorm.Expr("total_amount - ?", amount),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to reverse charge for guest %s: %w", guestID, res.Error)
	}
	if res.RowsAffected == 0 {
		log.Printf("no bill for guest %s, skipping charge reversal", guestID)
	}
	return nil
}
