package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testStoredUser(now time.Time) models.User {
	hash := "deadbeef"
	expiry := now.Add(30 * time.Minute)
	return models.User{
		ID:                         "0190c1a2-5f46-7c1e-b6a3-0de9a2f1c001",
		Username:                   "john",
		Email:                      "john@example.com",
		PasswordHash:               "$2a$10$hash",
		IsVerified:                 false,
		VerificationTokenHash:      &hash,
		VerificationTokenExpiresAt: &expiry,
		CreatedAt:                  now,
	}
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.
		NewRows(userColumns).
		AddRow(
			user.ID,
			user.Username,
			user.Email,
			user.PasswordHash,
			user.IsVerified,
			user.VerificationTokenHash,
			user.VerificationTokenExpiresAt,
			user.CreatedAt,
		)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := testStoredUser(now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.ID, user.Username, user.Email, user.PasswordHash, user.IsVerified, user.VerificationTokenHash, user.VerificationTokenExpiresAt).
		WillReturnRows(userRows(user))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.IsVerified {
		t.Error("expected freshly created user to be unverified")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := testStoredUser(time.Now())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := testStoredUser(time.Now())

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := testStoredUser(time.Now())

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(user.ID)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := testStoredUser(time.Now())

	mock.ExpectQuery("SELECT id").
		WithArgs(user.Email).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, found.Email)
	}
	if found.VerificationTokenHash == nil || *found.VerificationTokenHash != *user.VerificationTokenHash {
		t.Error("expected verification token hash to be returned")
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByEmail(ctx, "ghost@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("john@example.com").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(ctx, "john@example.com")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestConsumeVerificationToken_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	tokenHash := "deadbeef"

	verified := testStoredUser(now)
	verified.IsVerified = true
	verified.VerificationTokenHash = nil
	verified.VerificationTokenExpiresAt = nil

	// set-clause args come first, then the two WHERE conditions
	mock.ExpectQuery("UPDATE users").
		WithArgs(true, nil, nil, tokenHash, now).
		WillReturnRows(userRows(verified))

	got, err := repo.ConsumeVerificationToken(ctx, tokenHash, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsVerified {
		t.Error("expected user to be verified after consuming token")
	}
	if got.VerificationTokenHash != nil || got.VerificationTokenExpiresAt != nil {
		t.Error("expected token fields to be cleared")
	}
}

func TestConsumeVerificationToken_NoMatch(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery("UPDATE users").
		WithArgs(true, nil, nil, "wrong-hash", now).
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.ConsumeVerificationToken(ctx, "wrong-hash", now)
	if !errors.Is(err, ErrNoTokenMatch) {
		t.Fatalf("expected ErrNoTokenMatch, got %v", err)
	}
}

func TestConsumeVerificationToken_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE users").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ConsumeVerificationToken(ctx, "deadbeef", time.Now())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestGetAllUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	first := testStoredUser(now)
	second := testStoredUser(now.Add(time.Minute))
	second.ID = "0190c1a2-5f46-7c1e-b6a3-0de9a2f1c002"
	second.Email = "jane@example.com"

	rows := userRows(first).
		AddRow(second.ID, second.Username, second.Email, second.PasswordHash, second.IsVerified, second.VerificationTokenHash, second.VerificationTokenExpiresAt, second.CreatedAt)

	mock.ExpectQuery("SELECT id").
		WillReturnRows(rows)

	users, err := repo.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Email != second.Email {
		t.Errorf("expected email %s, got %s", second.Email, users[1].Email)
	}
}

func TestGetAllUsers_Empty(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WillReturnRows(sqlmock.NewRows(userColumns))

	users, err := repo.GetAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty slice, got %d users", len(users))
	}
}

func TestGetAllUsers_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetAllUsers(ctx)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	id := "0190c1a2-5f46-7c1e-b6a3-0de9a2f1c001"

	mock.ExpectExec("DELETE FROM users").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(ctx, "missing-id")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestDeleteUser_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WillReturnError(errors.New("db failure"))

	err := repo.DeleteUser(ctx, "some-id")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestDeleteAllUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteAllUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted, got %d", deleted)
	}
}

func TestDeleteAllUsers_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WillReturnError(errors.New("db failure"))

	_, err := repo.DeleteAllUsers(ctx)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
