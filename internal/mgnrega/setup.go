package mgnrega

import (
	"fmt"
	"log"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/config"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/geocoding"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/source"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/observability"
	"github.com/OurVoiceOurRights/OVR-Backend/internal/seeds"
	"gorm.io/gorm"

	// Import sources to register them via init()
	_ "github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/datagov"
	_ "github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/demo"
)

// Module bundles everything main needs to mount routes and run the
// scheduler.
type Module struct {
	Store     *Store
	Pipeline  *Pipeline
	Handler   *Handler
	Scheduler *Scheduler
}

// Init migrates the schema, seeds the district registry when it looks
// sparse, and wires the configured data source, reconciler and geocoder.
func Init(gdb *gorm.DB, cfg *config.Config, metrics *observability.Metrics) (*Module, error) {
	store := NewStore(gdb)
	if err := store.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	// A fresh database has nothing for the reconciler to match against, so
	// seed the canonical list when the registry holds fewer than 10 names.
	names, err := store.ListDistrictNames(cfg.State)
	if err != nil {
		return nil, fmt.Errorf("list district names: %w", err)
	}
	if len(names) < 10 {
		if n, err := seeds.SeedDistricts(store, cfg.State, cfg.DistrictsCSV); err != nil {
			log.Printf("[mgnrega] district auto-seed failed: %v", err)
		} else {
			log.Printf("[mgnrega] seeded %d districts for %s", n, cfg.State)
		}
	}

	src, err := source.New(source.Config{
		ResourceID: cfg.ResourceID,
		APIKey:     cfg.APIKey,
		Timeout:    cfg.FetchTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init data source: %w", err)
	}
	log.Printf("[mgnrega] using %s data source", src.Name())

	pipeline := NewPipeline(store, src, metrics)

	handler := &Handler{
		store:        store,
		pipeline:     pipeline,
		reconciler:   NewReconciler(store, cfg.State),
		geocoder:     geocoding.NewClient(cfg.NominatimURL, cfg.FetchTimeout),
		metrics:      metrics,
		state:        cfg.State,
		districtsCSV: cfg.DistrictsCSV,
	}

	return &Module{
		Store:     store,
		Pipeline:  pipeline,
		Handler:   handler,
		Scheduler: NewScheduler(pipeline, cfg.State, nil),
	}, nil
}
