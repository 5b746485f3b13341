package services

import (
	"fmt"
	"time"

	"hotel-fos-backend/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type DashboardStats struct {
	DailyOrders     int64   `json:"dailyOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	PreparingOrders int64   `json:"preparingOrders"`
	TotalEarnings   float64 `json:"totalEarnings"`
}

// todayWindow is the server's local calendar day as a half-open interval.
func todayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}

// Snapshot recomputes the counters from the order store on every call.
// totalEarnings sums every order still present, so past deletions are
// naturally excluded.
func (s *DashboardService) Snapshot() (DashboardStats, error) {
	var stats DashboardStats

	start, end := todayWindow(time.Now())
	if err := s.DB.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&stats.DailyOrders).Error; err != nil {
		return stats, fmt.Errorf("failed to count daily orders: %w", err)
	}

	if err := s.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return stats, fmt.Errorf("failed to count pending orders: %w", err)
	}

	if err := s.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPreparing).
		Count(&stats.PreparingOrders).Error; err != nil {
		return stats, fmt.Errorf("failed to count preparing orders: %w", err)
	}

	if err := s.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalEarnings).Error; err != nil {
		return stats, fmt.Errorf("failed to sum earnings: %w", err)
	}

	return stats, nil
}
