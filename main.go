package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/config"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/db"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/middleware"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	metrics := observability.NewMetrics()

	mod, err := mgnrega.Init(gdb, cfg, metrics)
	if err != nil {
		log.Fatal("Failed to initialize mgnrega module: ", err)
	}

	// Startup ingest plus the daily trigger, inside the server process.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go mod.Scheduler.Run(ctx)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/api", mod.Handler.SetupRoutes())

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
