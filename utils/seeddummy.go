package utils

import (
	"github.com/Srinidhi1009/travelease-project/config"
	"github.com/Srinidhi1009/travelease-project/models"
)

// SeedDemoUser creates the demo login used by the walkthrough build.
func SeedDemoUser() {
	var existing models.User
	if err := config.DB.Where("email = ?", "test@travelease.in").First(&existing).Error; err == nil {
		return
	}

	hashed, err := HashPassword("test")
	if err != nil {
		return
	}

	config.DB.Create(&models.User{
		FullName: "Srinidhi",
		Email:    "test@travelease.in",
		Password: hashed,
	})
}
