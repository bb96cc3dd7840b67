package readstore

import (
	"context"

	"cinema-pos/internal/infra"
	"cinema-pos/internal/infra/db"
	"cinema-pos/internal/usecase/queries"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

const findUserByEmailSQL = `
SELECT id, email, password_hash, role
FROM users
WHERE email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.dbtx.QueryRow(ctx, findUserByEmailSQL, email).Scan(&view.ID, &view.Email, &view.PasswordHash, &view.Role)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, nil
}
