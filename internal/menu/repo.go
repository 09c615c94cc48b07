// Package menu provides the repository interface and PostgreSQL implementation
// for the dish catalog.
package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("menu item not found")
)

type Repository interface {
	List(ctx context.Context, onlyAvailable bool) ([]MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*MenuItem, error)
	Create(ctx context.Context, m *MenuItem) error
	Update(ctx context.Context, m *MenuItem) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) List(ctx context.Context, onlyAvailable bool) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, item_name, description, price::text, category, veg_nonveg, is_available, created_at
		FROM menu_items
		WHERE ($1 = false OR is_available = true)
		ORDER BY category, item_name
	`, onlyAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var m MenuItem
		var price string
		if err := rows.Scan(&m.ID, &m.ItemName, &m.Description, &price, &m.Category, &m.VegNonveg, &m.IsAvailable, &m.CreatedAt); err != nil {
			return nil, err
		}
		if m.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) Categories(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT category FROM menu_items
		WHERE is_available = true
		ORDER BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var m MenuItem
	var price string
	err := r.db.QueryRow(ctx, `
		SELECT id, item_name, description, price::text, category, veg_nonveg, is_available, created_at
		FROM menu_items WHERE id=$1
	`, id).Scan(&m.ID, &m.ItemName, &m.Description, &price, &m.Category, &m.VegNonveg, &m.IsAvailable, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if m.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PGRepo) Create(ctx context.Context, m *MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (item_name, description, price, category, veg_nonveg, is_available)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at
	`, m.ItemName, m.Description, m.Price.String(), m.Category, m.VegNonveg, m.IsAvailable).
		Scan(&m.ID, &m.CreatedAt)
}

func (r *PGRepo) Update(ctx context.Context, m *MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET item_name = $2,
		    description = $3,
		    price = $4,
		    category = $5,
		    veg_nonveg = $6,
		    is_available = $7
		WHERE id = $1
	`, m.ID, m.ItemName, m.Description, m.Price.String(), m.Category, m.VegNonveg, m.IsAvailable)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
