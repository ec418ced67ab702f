package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"liftquote/internal/catalog"
	"liftquote/internal/config"
	"liftquote/internal/db"
	"liftquote/internal/migrations"
	"liftquote/internal/quote"
	"liftquote/internal/seed"
)

type server struct {
	cat    *catalog.Store
	engine *quote.Engine
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	stats, err := seed.Run(database)
	if err != nil {
		log.Fatalf("failed to seed catalogs: %v", err)
	}
	if stats.Inserts > 0 {
		log.Printf("seeded %d catalog records", stats.Inserts)
	}

	// Catalogs load once; everything after this point is read-only.
	store, err := catalog.Load(database)
	if err != nil {
		log.Fatalf("failed to load catalogs: %v", err)
	}

	srv := &server{cat: store, engine: quote.NewEngine(store)}

	r := chi.NewRouter()
	r.Get("/api/defaults", srv.handleDefaults)
	r.Get("/api/catalog/control", srv.handleControlCatalog)
	r.Get("/api/catalog/traction", srv.handleTractionCatalog)
	r.Get("/api/catalog/misc", srv.handleMiscCatalog)
	r.Post("/api/scheme/resolve", srv.handleResolveScheme)
	r.Post("/api/quote", srv.handleQuote)
	r.Post("/api/quote/export/excel", srv.handleExportExcel)
	r.Post("/api/quote/export/pdf", srv.handleExportPDF)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
