package repository

import (
	"context"
	"time"

	"cinema-pos/internal/domain/user"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct {
	dbtx db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{dbtx: dbtx}
}

const insertUserSQL = `
INSERT INTO users (id, email, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *UserRepository) Create(ctx context.Context, id uuid.UUID, email, passwordHash string, role user.Role) error {
	_, err := r.dbtx.Exec(ctx, insertUserSQL, id, email, passwordHash, role.String(), time.Now().UTC())
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
