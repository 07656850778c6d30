package ordersvc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository persists sessions and orders in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SaveSession(ctx context.Context, s *OtpSession) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO otp_sessions (id, phone, code, verified, attempts, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Phone, s.Code, s.Verified, s.Attempts, s.CreatedAt, s.ExpiresAt,
	)
	return err
}

func (r *PostgresRepository) FindSession(ctx context.Context, id string) (*OtpSession, error) {
	var s OtpSession
	err := r.db.QueryRow(ctx, `
		SELECT id, phone, code, verified, attempts, created_at, expires_at
		FROM otp_sessions WHERE id = $1`, id,
	).Scan(&s.ID, &s.Phone, &s.Code, &s.Verified, &s.Attempts, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) UpdateSession(ctx context.Context, s *OtpSession) error {
	_, err := r.db.Exec(ctx, `
		UPDATE otp_sessions SET verified = $2, attempts = $3 WHERE id = $1`,
		s.ID, s.Verified, s.Attempts,
	)
	return err
}

func (r *PostgresRepository) SaveOrder(ctx context.Context, o *StoredOrder) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO orders (order_id, session_id, phone, product_name, quantity_kg, total, order_date, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.OrderID, o.SessionID, o.Phone, o.ProductName, o.QuantityKg, o.Total, o.Date, o.Payload, o.CreatedAt,
	)
	return err
}

func (r *PostgresRepository) HasOrder(ctx context.Context, orderID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = $1)`, orderID,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) OrdersByPhone(ctx context.Context, phone string) ([]StoredOrder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, session_id, phone, product_name, quantity_kg, total, order_date, payload, created_at
		FROM orders WHERE phone = $1 ORDER BY created_at DESC`, phone,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *PostgresRepository) AllOrders(ctx context.Context) ([]StoredOrder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, session_id, phone, product_name, quantity_kg, total, order_date, payload, created_at
		FROM orders ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *PostgresRepository) SetLastError(ctx context.Context, sessionID, message string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE otp_sessions SET last_error = $2 WHERE id = $1`, sessionID, message,
	)
	return err
}

func (r *PostgresRepository) LastError(ctx context.Context, sessionID string) (string, error) {
	var msg *string
	err := r.db.QueryRow(ctx,
		`SELECT last_error FROM otp_sessions WHERE id = $1`, sessionID,
	).Scan(&msg)
	if err != nil {
		return "", err
	}
	if msg == nil {
		return "", nil
	}
	return *msg, nil
}

func scanOrders(rows pgx.Rows) ([]StoredOrder, error) {
	var out []StoredOrder
	for rows.Next() {
		var o StoredOrder
		if err := rows.Scan(&o.OrderID, &o.SessionID, &o.Phone, &o.ProductName,
			&o.QuantityKg, &o.Total, &o.Date, &o.Payload, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
