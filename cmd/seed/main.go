package main

import (
	"log"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/config"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/db"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/seeds"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := mgnrega.NewStore(gdb)
	if err := store.AutoMigrate(); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	n, err := seeds.SeedDistricts(store, cfg.State, cfg.DistrictsCSV)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d districts for %s", n, cfg.State)
}
