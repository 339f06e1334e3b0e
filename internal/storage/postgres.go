package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"star-barista/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			stars INTEGER NOT NULL DEFAULT 0,
			joined_date TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			username TEXT NOT NULL,
			items TEXT NOT NULL,
			total REAL NOT NULL,
			date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			qr_code BYTEA
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// GetUser returns nil without error when the account does not exist.
func (r *PostgresRepository) GetUser(username string) (*domain.UserAccount, error) {
	var user domain.UserAccount
	err := r.DB.QueryRow(
		"SELECT username, stars, joined_date FROM users WHERE username = $1",
		username,
	).Scan(&user.Username, &user.Stars, &user.JoinedDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser signs the name up with 0 stars. Re-creating an existing
// account is a silent no-op.
func (r *PostgresRepository) CreateUser(username string) error {
	_, err := r.DB.Exec(
		"INSERT INTO users (username, stars, joined_date) VALUES ($1, 0, $2) ON CONFLICT (username) DO NOTHING",
		username, time.Now().Format("2006-01-02"),
	)
	return err
}

// UpdateStars adds delta to the balance in a single statement.
func (r *PostgresRepository) UpdateStars(username string, delta int) error {
	_, err := r.DB.Exec("UPDATE users SET stars = stars + $1 WHERE username = $2", delta, username)
	return err
}

func (r *PostgresRepository) AddOrder(username string, items []domain.CartLine, total float64) (int, error) {
	payload, err := json.Marshal(items)
	if err != nil {
		return 0, err
	}
	var id int
	err = r.DB.QueryRow(
		"INSERT INTO orders (username, items, total) VALUES ($1, $2, $3) RETURNING id",
		username, string(payload), total,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// GetLastOrder returns the items of the user's most recent order, or nil
// when they have never ordered.
func (r *PostgresRepository) GetLastOrder(username string) ([]domain.CartLine, error) {
	var payload string
	err := r.DB.QueryRow(
		"SELECT items FROM orders WHERE username = $1 ORDER BY id DESC LIMIT 1",
		username,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var items []domain.CartLine
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return items, nil
}

// RecordCheckout writes the order and the star award in one transaction so
// a partial checkout can never be observed.
func (r *PostgresRepository) RecordCheckout(username string, items []domain.CartLine, total float64, stars int) (int, error) {
	payload, err := json.Marshal(items)
	if err != nil {
		return 0, err
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var orderID int
	if err := tx.QueryRow(
		"INSERT INTO orders (username, items, total) VALUES ($1, $2, $3) RETURNING id",
		username, string(payload), total,
	).Scan(&orderID); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	if _, err := tx.Exec("UPDATE users SET stars = stars + $1 WHERE username = $2", stars, username); err != nil {
		return 0, fmt.Errorf("award stars: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}
