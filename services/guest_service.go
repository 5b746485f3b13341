package services

import (
	"errors"
	"fmt"

	"hotel-fos-backend/models"

	"gorm.io/gorm"
)

var ErrGuestNotFound = errors.New("guest_not_found")

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to load guests: %w", err)
	}
	return guests, nil
}

func (s *GuestService) Create(guest *models.Guest) error {
	if err := s.DB.Create(guest).Error; err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// Update applies the supplied (non-zero) fields only.
func (s *GuestService) Update(id string, updates models.Guest) (*models.Guest, error) {
	updates.ID = ""

	var guest models.Guest
	if err := s.DB.First(&guest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to load guest %s: %w", id, err)
	}

	if err := s.DB.Model(&guest).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update guest %s: %w", id, err)
	}
	return &guest, nil
}

func (s *GuestService) Delete(id string) error {
	res := s.DB.Delete(&models.Guest{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete guest %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGuestNotFound
	}
	return nil
}
