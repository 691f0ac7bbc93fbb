package initializers

import (
	"log"

	"github.com/Kariqs/wagas-api/models"
	"gorm.io/datatypes"
)

func SyncDatabase() {
	if err := DB.AutoMigrate(&models.User{}, &models.Order{}, &models.MenuItem{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	seedMenu()
	log.Println("Database synced successfully.")
}

// seedMenu populates the menu once, on an empty table.
func seedMenu() {
	var count int64
	DB.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	items := []models.MenuItem{
		{Name: "Burger", Description: "Beef patty with cheese and house sauce", Price: 120, Category: "Mains", Tags: datatypes.JSON([]byte(`["beef","bestseller"]`))},
		{Name: "Fries", Description: "Crispy shoestring fries", Price: 60, Category: "Sides", Tags: datatypes.JSON([]byte(`["vegetarian"]`))},
		{Name: "Fried Chicken", Description: "Two-piece fried chicken with gravy", Price: 150, Category: "Mains", Tags: datatypes.JSON([]byte(`["chicken","bestseller"]`))},
		{Name: "Spaghetti", Description: "Sweet-style spaghetti with hotdog slices", Price: 95, Category: "Mains", Tags: datatypes.JSON([]byte(`["pasta"]`))},
		{Name: "Halo-Halo", Description: "Shaved ice with leche flan and ube", Price: 85, Category: "Desserts", Tags: datatypes.JSON([]byte(`["cold","dessert"]`))},
		{Name: "Iced Tea", Description: "House-brewed iced tea", Price: 45, Category: "Drinks", Tags: datatypes.JSON([]byte(`["cold"]`))},
	}
	if err := DB.Create(&items).Error; err != nil {
		log.Printf("Menu seeding failed: %v", err)
	}
}
