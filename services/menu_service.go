package services

import (
	"errors"
	"fmt"

	"hotel-fos-backend/models"

	"gorm.io/gorm"
)

var ErrMenuItemNotFound = errors.New("menu_item_not_found")

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

func (s *MenuService) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	return items, nil
}

func (s *MenuService) Create(item *models.MenuItem) error {
	if err := s.DB.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (s *MenuService) Update(id string, updates models.MenuItem) (*models.MenuItem, error) {
	updates.ID = ""

	var item models.MenuItem
	if err := s.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to load menu item %s: %w", id, err)
	}

	if err := s.DB.Model(&item).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update menu item %s: %w", id, err)
	}
	return &item, nil
}

func (s *MenuService) Delete(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to load menu item %s: %w", id, err)
	}

	if err := s.DB.Delete(&models.MenuItem{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete menu item %s: %w", id, err)
	}
	return &item, nil
}
