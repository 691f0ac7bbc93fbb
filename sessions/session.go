package sessions

import (
	"strings"

	"github.com/Kariqs/wagas-api/models"
	"github.com/google/uuid"
)

// DeliveryFee is the flat fee added to every cart total at checkout.
const DeliveryFee = 49.0

type CartItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	// NextItemID is a per-session counter. Item ids are never reused,
	// so a removed id stays a dead handle instead of aliasing a newer item.
	NextItemID int `json:"nextItemId"`
}

// Session is the server-side state bound to one browsing session:
// the authenticated identity plus the cart it accumulates.
type Session struct {
	ID       string `json:"id"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Cart     Cart   `json:"cart"`
}

func New(user models.User) *Session {
	return &Session{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Cart:     Cart{NextItemID: 1},
	}
}

func (s *Session) IsAdmin() bool {
	return strings.EqualFold(s.Role, models.RoleAdmin)
}

// AddItem appends an item and returns its id.
func (s *Session) AddItem(name string, price float64) int {
	if s.Cart.NextItemID < 1 {
		s.Cart.NextItemID = 1
	}
	item := CartItem{ID: s.Cart.NextItemID, Name: name, Price: price}
	s.Cart.NextItemID++
	s.Cart.Items = append(s.Cart.Items, item)
	return item.ID
}

// RemoveItem drops every item with the given id. Removing an unknown
// id is a no-op.
func (s *Session) RemoveItem(itemID int) {
	kept := s.Cart.Items[:0]
	for _, item := range s.Cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	s.Cart.Items = kept
}

func (s *Session) ClearCart() {
	s.Cart.Items = nil
}

func (s *Session) Subtotal() float64 {
	var subtotal float64
	for _, item := range s.Cart.Items {
		subtotal += item.Price
	}
	return subtotal
}

// Total is the subtotal plus the delivery fee, also for an empty cart.
func (s *Session) Total() float64 {
	return s.Subtotal() + DeliveryFee
}
