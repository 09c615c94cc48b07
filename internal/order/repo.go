package order

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Filter narrows an order listing. A zero Date means no day filter.
type Filter struct {
	Status string
	Date   time.Time
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, f Filter) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Stats(ctx context.Context, asOf time.Time) (*Stats, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const orderCols = `id, customer_name, customer_mobile, items,
	subtotal::text, discount::text, total_price::text,
	status, payment_method, COALESCE(payment_id,''), created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var itemsJSON []byte
	var sub, dis, tot string
	if err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerMobile, &itemsJSON,
		&sub, &dis, &tot,
		&o.Status, &o.PaymentMethod, &o.PaymentID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, err
	}
	var err error
	if o.Subtotal, err = decimal.NewFromString(sub); err != nil {
		return nil, err
	}
	if o.Discount, err = decimal.NewFromString(dis); err != nil {
		return nil, err
	}
	if o.TotalPrice, err = decimal.NewFromString(tot); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `
		INSERT INTO orders (customer_name, customer_mobile, items, subtotal, discount,
		                    total_price, status, payment_method, payment_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NULLIF($9,''))
		RETURNING id, created_at, updated_at
	`, o.CustomerName, o.CustomerMobile, itemsJSON, o.Subtotal.String(), o.Discount.String(),
		o.TotalPrice.String(), o.Status, o.PaymentMethod, o.PaymentID).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (r *PGRepo) List(ctx context.Context, f Filter) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := f.Limit
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	var day any
	if !f.Date.IsZero() {
		day = f.Date
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+orderCols+`
		FROM orders
		WHERE ($1 = '' OR status = $1)
		  AND ($2::date IS NULL OR created_at::date = $2::date)
		ORDER BY created_at DESC
		LIMIT $3
	`, f.Status, day, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id int64, status string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+orderCols+`
	`, id, status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) Stats(ctx context.Context, asOf time.Time) (*Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Stats
	var today, week string
	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'Preparing')::int,
			COUNT(*) FILTER (WHERE status = 'Ready')::int,
			COUNT(*) FILTER (WHERE created_at::date = $1::date)::int,
			COALESCE(SUM(total_price) FILTER (WHERE created_at::date = $1::date), 0)::text,
			COALESCE(SUM(total_price) FILTER (WHERE created_at::date >= $2::date), 0)::text,
			COUNT(*)::int
		FROM orders
	`, asOf, WeekStart(asOf)).
		Scan(&s.PreparingOrders, &s.ReadyOrders, &s.TodayOrdersCount, &today, &week, &s.TotalOrders)
	if err != nil {
		return nil, err
	}
	if s.TodayRevenue, err = decimal.NewFromString(today); err != nil {
		return nil, err
	}
	if s.WeekRevenue, err = decimal.NewFromString(week); err != nil {
		return nil, err
	}
	return &s, nil
}
