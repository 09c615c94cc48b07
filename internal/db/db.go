// Package db owns the Postgres pool and the schema bootstrap.
package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS menu_items (
		id BIGSERIAL PRIMARY KEY,
		item_name VARCHAR(100) NOT NULL,
		description VARCHAR(255) NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL,
		category VARCHAR(50) NOT NULL DEFAULT 'Main Course',
		veg_nonveg VARCHAR(20) NOT NULL DEFAULT 'Veg',
		is_available BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_name VARCHAR(100) NOT NULL DEFAULT 'Walk-in',
		customer_mobile VARCHAR(15) NOT NULL DEFAULT '',
		items JSONB NOT NULL,
		subtotal NUMERIC(10,2) NOT NULL DEFAULT 0,
		discount NUMERIC(10,2) NOT NULL DEFAULT 0,
		total_price NUMERIC(10,2) NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'Preparing',
		payment_method VARCHAR(50) NOT NULL DEFAULT 'Cash',
		payment_id VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

type seedItem struct {
	name, description, category string
	price                       string
}

var sampleMenu = []seedItem{
	{"Special Thali", "A complete meal with 2 sabzis, dal, rice, roti, salad, and sweet.", "Thali", "150.00"},
	{"Paneer Butter Masala", "Creamy paneer in a rich tomato and butter gravy.", "Main Course", "180.00"},
	{"Dal Tadka", "Yellow lentils tempered with ghee and spices.", "Dal & Curry", "120.00"},
	{"Jeera Rice", "Basmati rice flavored with cumin seeds.", "Rice & Biryani", "90.00"},
	{"Tandoori Roti", "Whole wheat bread cooked in a tandoor.", "Bread", "20.00"},
	{"Masala Chaas", "Spiced buttermilk, a refreshing digestive drink.", "Beverages", "40.00"},
	{"Chole Bhature", "Spicy chickpea curry served with fried bread.", "Main Course", "140.00"},
	{"Rajma Rice", "Kidney bean curry served with steamed rice.", "Main Course", "130.00"},
	{"Mango Lassi", "Sweet yogurt drink with mango pulp.", "Beverages", "60.00"},
	{"Gulab Jamun", "Sweet milk dumplings in sugar syrup.", "Desserts", "80.00"},
}

// SeedMenu inserts the sample dishes when the menu table is empty.
func SeedMenu(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, it := range sampleMenu {
		if _, err := pool.Exec(ctx, `
			INSERT INTO menu_items (item_name, description, price, category)
			VALUES ($1,$2,$3,$4)
		`, it.name, it.description, it.price, it.category); err != nil {
			return err
		}
	}
	return nil
}
