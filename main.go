package main

import (
	"fmt"
	"log"

	"stallpos/configs"
	"stallpos/middlewares"
	"stallpos/routes"
	"stallpos/slip"
	"stallpos/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.OpenDatabase(cfg.DBSource)
	if err != nil {
		log.Fatalf("open database failed: %v", err)
	}

	// migrate (additive only)
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedOwner(db, cfg); err != nil {
		log.Fatalf("seed owner failed: %v", err)
	}

	// Live update feed
	hub := ws.NewLiveHub()
	go hub.Run()

	var printer slip.Printer
	if cfg.PrinterEnabled {
		printer = slip.LogPrinter{}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded menu images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, hub, printer)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
