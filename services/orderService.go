package services

import (
	"context"
	"errors"

	"github.com/Kariqs/wagas-api/models"
	"github.com/Kariqs/wagas-api/sessions"
	"gorm.io/gorm"
)

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	ListByStatus(ctx context.Context, status string) ([]models.OrderSummary, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID uint, status string) error
	Delete(ctx context.Context, orderID uint) error
}

type CheckoutData struct {
	Name          string `json:"name" form:"name" binding:"required"`
	Address       string `json:"address" form:"address" binding:"required"`
	Contact       string `json:"contact" form:"contact" binding:"required"`
	PaymentMethod string `json:"payment_method" form:"payment_method" binding:"required"`
}

type OrdersByStatus struct {
	Pending  []models.OrderSummary `json:"pending"`
	Approved []models.OrderSummary `json:"approved"`
	Rejected []models.OrderSummary `json:"rejected"`
}

type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// Checkout turns the session's cart into a pending order. The total is
// computed server-side from the cart plus the delivery fee; the order
// is only reported placed once the row is committed.
func (s *OrderService) Checkout(ctx context.Context, session *sessions.Session, data CheckoutData) (*models.Order, error) {
	if data.Name == "" || data.Address == "" || data.Contact == "" || data.PaymentMethod == "" {
		return nil, ErrMissingFields
	}

	order := models.Order{
		UserID:        session.UserID,
		Name:          data.Name,
		Address:       data.Address,
		Contact:       data.Contact,
		PaymentMethod: data.PaymentMethod,
		Total:         session.Total(),
		Status:        models.OrderStatusPending,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByStatus groups all orders into the three admin views.
func (s *OrderService) ListByStatus(ctx context.Context) (*OrdersByStatus, error) {
	pending, err := s.orders.ListByStatus(ctx, models.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := s.orders.ListByStatus(ctx, models.OrderStatusApproved)
	if err != nil {
		return nil, err
	}
	rejected, err := s.orders.ListByStatus(ctx, models.OrderStatusRejected)
	if err != nil {
		return nil, err
	}
	return &OrdersByStatus{Pending: pending, Approved: approved, Rejected: rejected}, nil
}

func (s *OrderService) ListByCustomer(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// UpdateStatus moves an order to Approved or Rejected. Pending is the
// creation-only state, so it is not a valid transition target.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	parsed, err := models.ParseOrderStatus(status)
	if err != nil || parsed == models.OrderStatusPending {
		return ErrInvalidStatus
	}

	if err := s.orders.UpdateStatus(ctx, orderID, parsed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (s *OrderService) Delete(ctx context.Context, orderID uint) error {
	if err := s.orders.Delete(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}
