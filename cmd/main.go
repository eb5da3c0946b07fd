package main

import (
	"log"

	"github.com/hoteldash/hotel-dashboard/config"
	"github.com/hoteldash/hotel-dashboard/internal/logger"
	"github.com/hoteldash/hotel-dashboard/internal/notify"
	"github.com/hoteldash/hotel-dashboard/internal/repositories"
	"github.com/hoteldash/hotel-dashboard/internal/seed"
	"github.com/hoteldash/hotel-dashboard/internal/services"
	"github.com/hoteldash/hotel-dashboard/internal/ui"
)

func main() {
	cfg := config.LoadConfig()

	if err := logger.Setup(cfg.LogFile); err != nil {
		log.Fatal("Failed to open log file:", err)
	}

	// All session state lives in this repository; nothing is persisted.
	roomRepo := repositories.NewRoomRepository()

	hub := notify.NewHub(notify.NewLogNotifier())
	roomService := services.NewRoomService(roomRepo, hub, cfg.PlaceholderGuest)

	if cfg.SeedDemoRooms {
		if err := seed.Up(roomService); err != nil {
			log.Fatal("Failed to seed demo rooms:", err)
		}
	}

	log.Printf("Starting dashboard")
	if err := ui.StartDashboard(cfg, roomService, hub); err != nil {
		log.Fatal("Dashboard error:", err)
	}
}
