package models

import "gorm.io/gorm"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:100;not null"`
	Password string `json:"-" gorm:"size:100;not null"`
	Role     string `json:"role" gorm:"size:20;default:user"`
}

type SignupData struct {
	Username string `json:"username" form:"username" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginData carries the posted credential. Identifier matches either
// the username or the email.
type LoginData struct {
	Identifier string `json:"identifier" form:"username" binding:"required"`
	Password   string `json:"password" form:"password" binding:"required"`
}
