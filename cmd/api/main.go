package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ankurdhir/laddu/internal/auth"
	"github.com/ankurdhir/laddu/internal/cart"
	"github.com/ankurdhir/laddu/internal/catalog"
	"github.com/ankurdhir/laddu/internal/configurator"
	"github.com/ankurdhir/laddu/internal/db"
	"github.com/ankurdhir/laddu/internal/notify"
	"github.com/ankurdhir/laddu/internal/order"
	"github.com/ankurdhir/laddu/internal/ordersvc"
	"github.com/ankurdhir/laddu/internal/router"
	"github.com/ankurdhir/laddu/internal/storage"
)
func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"ADMIN_PASSWORD_HASH",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── CATALOG ─────────────────────────
	cat := catalog.Load()

	// ───────────────────────── ORDER SHEET STORAGE ─────────────────────────
	var svcRepo ordersvc.Repository
	if os.Getenv("DATABASE_URL") != "" {
		pool := db.ConnectPostgres()
		defer pool.Close()
		svcRepo = ordersvc.NewPostgresRepository(pool)
	} else {
		log.Println("DATABASE_URL not set, keeping orders in memory")
		svcRepo = ordersvc.NewMemoryRepository()
	}
	orderService := ordersvc.NewService(svcRepo)

	// ───────────────────────── CART STORAGE ─────────────────────────
	var cartStore cart.Store
	switch {
	case os.Getenv("CART_DB") != "":
		s, err := cart.NewSQLiteStore(os.Getenv("CART_DB"))
		if err != nil {
			log.Fatal("❌ cart db init failed:", err)
		}
		defer s.Close()
		cartStore = s
	case os.Getenv("CART_DIR") != "":
		cartStore = cart.NewFileStore(os.Getenv("CART_DIR"))
	default:
		log.Println("CART_DB/CART_DIR not set, cart will not survive restarts")
		cartStore = cart.NewMemoryStore()
	}

	// ───────────────────────── CORE ─────────────────────────
	engine := configurator.NewEngine(cat)
	basket := cart.NewCart(cartStore)
	hub := notify.NewHub(basket)

	serviceURL := os.Getenv("ORDER_SERVICE_URL")
	if serviceURL == "" {
		serviceURL = "http://localhost:8000/webhook"
	}
	orderClient := order.NewHTTPClient(serviceURL)
	aggregator := order.NewAggregator(orderClient, cat, engine, basket)

	// ───────────────────────── IMAGE STORAGE ─────────────────────────
	var images *storage.ImageStore
	if os.Getenv("R2_ENDPOINT") != "" {
		st, err := storage.NewImageStore(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		images = st
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	authService := auth.NewService()

	deps := router.Deps{
		Catalog:      catalog.NewHandler(cat),
		Configurator: configurator.NewHandler(engine, cat),
		Cart:         cart.NewHandler(basket, cat, engine),
		Order:        order.NewHandler(aggregator),
		OrderSvc:     ordersvc.NewHandler(orderService),
		Auth:         auth.NewHandler(authService),
		Hub:          hub,
		Images:       images,
		CatalogData:  cat,
	}
	r := router.NewRouter(deps)

	// ───────────────────────── METRICS ─────────────────────────
	go startMetricsServer()

	// ───────────────────────── START ─────────────────────────
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	log.Printf("🚀 API running at http://localhost%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func startMetricsServer() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		addr = ":9090"
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Printf("Metrics available at http://localhost%s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("Metrics server error: %v", err)
	}
}
