package models

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	OrderStatusPending  = "Pending"
	OrderStatusApproved = "Approved"
	OrderStatusRejected = "Rejected"
)

type Order struct {
	gorm.Model
	UserID        uint    `json:"userId"`
	Name          string  `json:"name" gorm:"size:100"`
	Address       string  `json:"address" gorm:"size:200"`
	Contact       string  `json:"contact" gorm:"size:50"`
	PaymentMethod string  `json:"paymentMethod" gorm:"size:50"`
	Total         float64 `json:"total"`
	Status        string  `json:"status" gorm:"size:50;default:Pending"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// OrderSummary is the admin listing row: an order joined with the
// username of the customer who placed it.
type OrderSummary struct {
	ID            uint    `json:"id"`
	Username      string  `json:"username"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Contact       string  `json:"contact"`
	PaymentMethod string  `json:"paymentMethod"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
}

// ParseOrderStatus validates a status string against the closed set.
func ParseOrderStatus(status string) (string, error) {
	switch status {
	case OrderStatusPending, OrderStatusApproved, OrderStatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("unknown order status %q", status)
	}
}
