package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Price       float64        `json:"price" binding:"required"`
	Category    string         `json:"category"`
	Tags        datatypes.JSON `json:"tags"`
}
