package commands

import (
	"context"

	"cinema-pos/internal/domain/user"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/pkg/password"

	"github.com/google/uuid"
)

type CreateUserResult struct {
	UserID uuid.UUID
	Email  string
	Role   user.Role
}

// UserAdminCommands provisions staff accounts. Only admins reach this
// surface; cashiers and managers never create users.
type UserAdminCommands interface {
	CreateUser(ctx context.Context, email, plainPassword, role string) (*CreateUserResult, error)
}

type UserWriteRepo interface {
	Create(ctx context.Context, id uuid.UUID, email, passwordHash string, role user.Role) error
}

type userAdminCommandsImpl struct {
	users UserWriteRepo
}

func NewUserAdminCommands(users UserWriteRepo) UserAdminCommands {
	return &userAdminCommandsImpl{users: users}
}

func (u *userAdminCommandsImpl) CreateUser(ctx context.Context, email, plainPassword, role string) (*CreateUserResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	passwordVO, err := user.NewPassword(plainPassword)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(passwordVO.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	id := uuid.New()
	if err := u.users.Create(ctx, id, emailVO.Value(), hash, roleVO); err != nil {
		return nil, err
	}

	return &CreateUserResult{
		UserID: id,
		Email:  emailVO.Value(),
		Role:   roleVO,
	}, nil
}
