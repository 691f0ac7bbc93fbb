package services

import (
	"context"
	"testing"

	"github.com/Kariqs/wagas-api/models"
	"github.com/Kariqs/wagas-api/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderStore) ListByStatus(ctx context.Context, status string) ([]models.OrderSummary, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderSummary), args.Error(1)
}

func (m *MockOrderStore) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderStore) Delete(ctx context.Context, orderID uint) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func checkoutSession() *sessions.Session {
	user := models.User{Username: "alice", Role: models.RoleUser}
	user.ID = 7
	session := sessions.New(user)
	session.AddItem("Burger", 120)
	session.AddItem("Fries", 60)
	return session
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	shipping := CheckoutData{
		Name: "Alice", Address: "1 Main St", Contact: "0917", PaymentMethod: "COD",
	}

	t.Run("Success", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)
		store.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		order, err := orderService.Checkout(ctx, checkoutSession(), shipping)
		require.NoError(t, err)
		assert.Equal(t, uint(7), order.UserID)
		assert.Equal(t, 229.0, order.Total)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		store.AssertExpectations(t)
	})

	t.Run("EmptyCartChargesDeliveryFeeOnly", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)
		store.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		session := checkoutSession()
		session.ClearCart()

		order, err := orderService.Checkout(ctx, session, shipping)
		require.NoError(t, err)
		assert.Equal(t, sessions.DeliveryFee, order.Total)
	})

	t.Run("MissingFields", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)

		_, err := orderService.Checkout(ctx, checkoutSession(), CheckoutData{Name: "Alice"})
		assert.ErrorIs(t, err, ErrMissingFields)
		store.AssertNotCalled(t, "Create")
	})

	t.Run("PersistenceFailureIsNotConfirmed", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)
		store.On("Create", ctx, mock.AnythingOfType("*models.Order")).Return(gorm.ErrInvalidDB).Once()

		order, err := orderService.Checkout(ctx, checkoutSession(), shipping)
		assert.Error(t, err)
		assert.Nil(t, order)
	})
}

func TestListByStatus(t *testing.T) {
	ctx := context.Background()
	store := new(MockOrderStore)
	orderService := NewOrderService(store)

	pending := []models.OrderSummary{{ID: 1, Username: "alice", Status: models.OrderStatusPending}}
	approved := []models.OrderSummary{{ID: 2, Username: "bob", Status: models.OrderStatusApproved}}

	store.On("ListByStatus", ctx, models.OrderStatusPending).Return(pending, nil).Once()
	store.On("ListByStatus", ctx, models.OrderStatusApproved).Return(approved, nil).Once()
	store.On("ListByStatus", ctx, models.OrderStatusRejected).Return([]models.OrderSummary{}, nil).Once()

	grouped, err := orderService.ListByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, pending, grouped.Pending)
	assert.Equal(t, approved, grouped.Approved)
	assert.Empty(t, grouped.Rejected)
	store.AssertExpectations(t)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)
		store.On("UpdateStatus", ctx, uint(1), models.OrderStatusApproved).Return(nil).Once()

		assert.NoError(t, orderService.UpdateStatus(ctx, 1, "Approved"))
		store.AssertExpectations(t)
	})

	t.Run("ArbitraryStatusRejected", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)

		assert.ErrorIs(t, orderService.UpdateStatus(ctx, 1, "Shipped"), ErrInvalidStatus)
		store.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("PendingIsNotATransitionTarget", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)

		assert.ErrorIs(t, orderService.UpdateStatus(ctx, 1, "Pending"), ErrInvalidStatus)
		store.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("NotFound", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)
		store.On("UpdateStatus", ctx, uint(99), models.OrderStatusRejected).Return(gorm.ErrRecordNotFound).Once()

		assert.ErrorIs(t, orderService.UpdateStatus(ctx, 99, "Rejected"), ErrOrderNotFound)
	})
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)
		store.On("Delete", ctx, uint(1)).Return(nil).Once()

		assert.NoError(t, orderService.Delete(ctx, 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		store := new(MockOrderStore)
		orderService := NewOrderService(store)
		store.On("Delete", ctx, uint(99)).Return(gorm.ErrRecordNotFound).Once()

		assert.ErrorIs(t, orderService.Delete(ctx, 99), ErrOrderNotFound)
	})
}
