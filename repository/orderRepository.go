package repository

import (
	"context"

	"github.com/Kariqs/wagas-api/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// ListByStatus returns orders of one status joined with the owning
// user's username, in insertion order.
func (r *OrderRepository) ListByStatus(ctx context.Context, status string) ([]models.OrderSummary, error) {
	var summaries []models.OrderSummary
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("orders.id, users.username, orders.name, orders.address, orders.contact, orders.payment_method, orders.total, orders.status").
		Joins("JOIN users ON orders.user_id = users.id").
		Where("orders.status = ?", status).
		Order("orders.id").
		Scan(&summaries).Error
	return summaries, err
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus sets the status of one order. A missing order surfaces
// as gorm.ErrRecordNotFound rather than a silent zero-row update.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	result := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, orderID uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&models.Order{}, orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
