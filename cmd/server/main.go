// cmd/server/main.go
package main

import (
	"log"

	"github.com/joho/godotenv"

	"attendance_backend/internal/config"
	"attendance_backend/internal/routes"
	"attendance_backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := storage.OpenDB(cfg.DSN)
	r := routes.NewRouter(db, cfg)

	log.Printf("Server running on %s", cfg.Addr)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
