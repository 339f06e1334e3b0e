package storage

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"star-barista/internal/domain"
)

func setupRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return NewPostgresRepository(db), mock, func() { db.Close() }
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.EnsureSchema(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetUser(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	query := regexp.QuoteMeta("SELECT username, stars, joined_date FROM users WHERE username = $1")
	mock.ExpectQuery(query).
		WithArgs("Alex").
		WillReturnRows(sqlmock.NewRows([]string{"username", "stars", "joined_date"}).
			AddRow("Alex", 12, "2026-01-05"))

	user, err := repo.GetUser("Alex")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user == nil || user.Stars != 12 || user.JoinedDate != "2026-01-05" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestGetUserAbsentIsNotAnError(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT username, stars, joined_date FROM users").
		WithArgs("Nobody").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUser("Nobody")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil user, got %+v", user)
	}
}

func TestCreateUserAbsorbsDuplicates(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	// ON CONFLICT DO NOTHING reports zero rows affected on a duplicate.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (username, stars, joined_date) VALUES ($1, 0, $2) ON CONFLICT (username) DO NOTHING")).
		WithArgs("Alex", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.CreateUser("Alex"); err != nil {
		t.Fatalf("duplicate signup must be silent, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateStarsIsAdditive(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET stars = stars + $1 WHERE username = $2")).
		WithArgs(7, "Alex").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStars("Alex", 7); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestAddOrderSerializesItems(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	items := []domain.CartLine{{Item: "Cappuccino", Price: 4.5}}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders (username, items, total) VALUES ($1, $2, $3) RETURNING id")).
		WithArgs("Alex", `[{"item":"Cappuccino","price":4.5}]`, 4.5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	id, err := repo.AddOrder("Alex", items, 4.5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != 3 {
		t.Fatalf("expected order id 3, got %d", id)
	}
}

func TestGetLastOrder(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT items FROM orders WHERE username = $1 ORDER BY id DESC LIMIT 1")).
		WithArgs("Sam").
		WillReturnRows(sqlmock.NewRows([]string{"items"}).
			AddRow(`[{"item":"Flat White","price":4.75},{"item":"Cake Pop","price":2.25}]`))

	items, err := repo.GetLastOrder("Sam")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 2 || items[0].Item != "Flat White" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestGetLastOrderAbsent(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectQuery("SELECT items FROM orders").
		WithArgs("Nobody").
		WillReturnError(sql.ErrNoRows)

	items, err := repo.GetLastOrder("Nobody")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if items != nil {
		t.Fatalf("expected nil items, got %+v", items)
	}
}

func TestRecordCheckoutIsTransactional(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders (username, items, total) VALUES ($1, $2, $3) RETURNING id")).
		WithArgs("Alex", `[{"item":"Caffe Americano","price":3.5}]`, 3.5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET stars = stars + $1 WHERE username = $2")).
		WithArgs(7, "Alex").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	id, err := repo.RecordCheckout("Alex", []domain.CartLine{{Item: "Caffe Americano", Price: 3.5}}, 3.5, 7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id != 11 {
		t.Fatalf("expected order id 11, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordCheckoutRollsBackWhenStarAwardFails(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec("UPDATE users SET stars").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := repo.RecordCheckout("Alex", []domain.CartLine{{Item: "Cake Pop", Price: 2.25}}, 2.25, 4)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestQRCodeRoundTrip(t *testing.T) {
	repo, mock, cleanup := setupRepo(t)
	defer cleanup()

	qr := []byte{0x89, 0x50, 0x4e, 0x47}
	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET qr_code = $1 WHERE id = $2")).
		WithArgs(qr, 11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT qr_code FROM orders WHERE id = $1")).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"qr_code"}).AddRow(qr))

	if err := repo.SaveQRCode(11, qr); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got, err := repo.GetQRCode(11)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(got) != string(qr) {
		t.Fatalf("unexpected qr payload: %v", got)
	}
}
