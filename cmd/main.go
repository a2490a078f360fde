package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/Gokulrbs/example-attendx/config"
	"github.com/Gokulrbs/example-attendx/database"
	"github.com/Gokulrbs/example-attendx/routes"
)

// @title           AttendX API
// @version         1.0
// @description     Echo + PostgreSQL employee/attendance backend
// @BasePath        /
func main() {
	cfg := config.Load()

	// Without DATABASE_URL the process still serves the frontend; every
	// data endpoint reports 503 until a store is configured.
	var db *gorm.DB
	if cfg.HasDatabase() {
		var err error
		db, err = database.Connect(cfg)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
	} else {
		log.Println("DATABASE_URL not set; data endpoints disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	routes.Register(e, db, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
