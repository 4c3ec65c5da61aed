package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ametelin/veriauth/internal/logger"
	"github.com/ametelin/veriauth/models"
	"github.com/jackc/pgerrcode"
)

// userColumns is the canonical column order used by every query in this
// repository; scanUser relies on it.
var userColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"is_verified",
	"verification_token_hash",
	"verification_token_expires_at",
	"created_at",
}

// psq is the squirrel statement builder configured for PostgreSQL
// dollar-numbered placeholders.
var psq = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, the verification state transition and
// the administrative list/delete operations against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the newly created
// account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psq.Insert(user.TableName()).
		Columns("id", "username", "email", "password_hash", "is_verified", "verification_token_hash", "verification_token_expires_at").
		Values(user.ID, user.Username, user.Email, user.PasswordHash, user.IsVerified, user.VerificationTokenHash, user.VerificationTokenExpiresAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error executing insert")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByEmail retrieves the account whose email matches exactly.
//
// Error handling:
//   - No rows → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ConsumeVerificationToken performs the verification state transition as a
// single conditional UPDATE: the account must hold the given token hash AND
// its expiry must be strictly after now. The statement sets is_verified and
// clears both token fields at once, so two concurrent presentations of the
// same token can never both succeed.
//
// Error handling:
//   - No rows updated (wrong, consumed or expired token) → [ErrNoTokenMatch].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) ConsumeVerificationToken(ctx context.Context, tokenHash string, now time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psq.Update(models.User{}.TableName()).
		Set("is_verified", true).
		Set("verification_token_hash", nil).
		Set("verification_token_expires_at", nil).
		Where(sq.Eq{"verification_token_hash": tokenHash}).
		Where(sq.Gt{"verification_token_expires_at": now}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ConsumeVerificationToken").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	verified, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoTokenMatch
		}
		log.Err(err).Str("func", "*userRepository.ConsumeVerificationToken").Msg("error scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return verified, nil
}

// GetAllUsers returns every stored account ordered by creation time.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := psq.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// DeleteUser removes the account with the given ID.
//
// Error handling:
//   - Zero rows affected → [ErrNoUserWasFound].
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psq.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error executing delete")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// DeleteAllUsers removes every account and reports how many were removed.
func (r *userRepository) DeleteAllUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := psq.Delete(models.User{}.TableName()).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteAllUsers").Msg("error building delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteAllUsers").Msg("error executing delete")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsVerified,
		&user.VerificationTokenHash,
		&user.VerificationTokenExpiresAt,
		&user.CreatedAt,
	)
	return user, err
}

func columnList() string {
	list := userColumns[0]
	for _, c := range userColumns[1:] {
		list += ", " + c
	}
	return list
}
