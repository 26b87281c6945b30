package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/kasonde/distrohub-backend/internal/config"
	"github.com/kasonde/distrohub-backend/internal/modules/auth"
	"github.com/kasonde/distrohub-backend/internal/modules/catalog"
	"github.com/kasonde/distrohub-backend/internal/modules/firm"
	"github.com/kasonde/distrohub-backend/internal/modules/order"
	"github.com/kasonde/distrohub-backend/internal/modules/pricing"
	"github.com/kasonde/distrohub-backend/internal/modules/scoring"
	"github.com/kasonde/distrohub-backend/internal/modules/staff"
	"github.com/kasonde/distrohub-backend/internal/modules/stock"
	"github.com/kasonde/distrohub-backend/internal/obs"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()
	obs.InitLogger()

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Accounts & auth ─────────────────────────────────────
	staffRepo := staff.NewPostgresRepository(db)
	staffService := staff.NewService(staffRepo, cfg.BcryptCost)
	staff.NewHandler(staffService).RegisterRoutes(router)

	authService := auth.NewService(staffRepo, cfg.JWTSecret, cfg.TokenTTL)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog & firm directory ────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, cfg.Currency)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	scorer := scoring.NewEngine(scoring.DefaultConfig())
	firmRepo := firm.NewPostgresRepository(db)
	firmService := firm.NewService(firmRepo, scorer)
	firm.NewHandler(firmService).RegisterRoutes(router)

	// ── Order placement engine ──────────────────────────────
	ledger := stock.NewPostgresLedger(db)
	resolver := pricing.NewResolver()
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, firmRepo, catalogRepo,
		ledger, resolver, cfg.VATRate, cfg.Currency, obs.Logger)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	fmt.Printf("DistroHub API server starting on :%s\n", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPAddr, router))
}
