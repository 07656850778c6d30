package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// OTP SESSIONS
	// -------------------------------
	sessionTableSQL := `
		CREATE TABLE IF NOT EXISTS otp_sessions (
			id UUID PRIMARY KEY,
			phone VARCHAR(20) NOT NULL,
			code VARCHAR(6) NOT NULL,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			attempts INT NOT NULL DEFAULT 0,
			last_error TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			expires_at TIMESTAMP NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, sessionTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS (the "sheet")
	// -------------------------------
	ordersTableSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			order_id VARCHAR(40) PRIMARY KEY,
			session_id UUID NOT NULL,
			phone VARCHAR(20) NOT NULL,
			product_name VARCHAR(255) NOT NULL,
			quantity_kg NUMERIC(4,1) NOT NULL,
			total INT NOT NULL,
			order_date VARCHAR(40) NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES otp_sessions(id)
		)
	`
	if _, err := pool.Exec(ctx, ordersTableSQL); err != nil {
		return err
	}

	ordersIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_orders_phone ON orders (phone, created_at DESC)
	`
	if _, err := pool.Exec(ctx, ordersIndexSQL); err != nil {
		log.Println("Note: orders phone index may already exist")
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
