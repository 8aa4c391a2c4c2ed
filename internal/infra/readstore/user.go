package readstore

import (
	"context"
	"time"

	"festivo/internal/domain/user"
	"festivo/internal/infra"
	"festivo/internal/infra/db"
	"festivo/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const userColumns = `
	id, full_name, email, password_hash, role, last_login, is_active,
	created_at, updated_at`

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return s.scanOne(ctx, query, email)
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.scanOne(ctx, query, id)
}

func (s *UserReadStore) scanOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var (
		id                   uuid.UUID
		fullName, email      string
		passwordHash, role   string
		lastLogin            *time.Time
		isActive             bool
		createdAt, updatedAt time.Time
	)
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&id, &fullName, &email, &passwordHash, &role, &lastLogin, &isActive,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return user.ReconstructUser(
		id, fullName, user.ReconstructEmail(email), passwordHash, user.Role(role),
		lastLogin, isActive, createdAt, updatedAt,
	), nil
}
