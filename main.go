package main

import (
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/Srinidhi1009/travelease-project/config"
	"github.com/Srinidhi1009/travelease-project/logging"
	"github.com/Srinidhi1009/travelease-project/models"
	"github.com/Srinidhi1009/travelease-project/routes"
	"github.com/Srinidhi1009/travelease-project/utils"
)

func main() {
	config.Load()
	logging.Initialize()
	defer logging.Sync()

	config.ConnectDatabase()
	db := config.DB

	if err := migrate(db); err != nil {
		logging.Sugar.Fatalf("migration failed: %v", err)
	}

	utils.SeedDemoUser()

	r := routes.SetupRouter()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	logging.Sugar.Infof("server running on %s", addr)
	if err := r.Run(addr); err != nil {
		logging.Sugar.Fatalf("server stopped: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.RefreshToken{}, &models.Booking{},
		&models.Payment{}, &models.SavedTrip{})
}
