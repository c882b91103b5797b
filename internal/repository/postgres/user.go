package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/avc/bank-cards/internal/domain"
)

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, username, passwordHash, email string, roles []domain.Role) (*domain.User, error) {
	user := &domain.User{}
	var roleNames []string

	err := r.db.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, email, roles)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, username, password_hash, email, roles, created_at`,
		username, passwordHash, email, rolesToStrings(roles),
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &roleNames, &user.CreatedAt)

	if err != nil {
		// Различаем, какое уникальное ограничение нарушено
		if pgUniqueViolation(err, "users_username_key") {
			return nil, domain.ErrUserExists
		}
		if pgUniqueViolation(err, "users_email_key") {
			return nil, domain.ErrEmailExists
		}
		if pgUniqueViolation(err, "") {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("repository: failed to create user %q: %w", username, err)
	}

	user.Roles = rolesFromStrings(roleNames)
	return user, nil
}

// GetUserByUsername получает пользователя по имени
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := r.scanUser(r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, email, roles, created_at
		 FROM users
		 WHERE username = $1`,
		username,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by username %q: %w", username, err)
	}

	return user, nil
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := r.scanUser(r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, email, roles, created_at
		 FROM users
		 WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %s: %w", id, err)
	}

	return user, nil
}

// ListUsers получает страницу пользователей и их общее количество
func (r *UserRepository) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count users: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, username, password_hash, email, roles, created_at
		 FROM users
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository: error iterating users: %w", err)
	}

	return users, total, nil
}

// DeleteUser удаляет пользователя
func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete user %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// scanUser читает одну строку пользователя
func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	var roleNames []string

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &roleNames, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	user.Roles = rolesFromStrings(roleNames)
	return user, nil
}

func rolesToStrings(roles []domain.Role) []string {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return names
}

func rolesFromStrings(names []string) []domain.Role {
	roles := make([]domain.Role, len(names))
	for i, name := range names {
		roles[i] = domain.Role(name)
	}
	return roles
}
