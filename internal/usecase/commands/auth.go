package commands

import (
	"context"

	"cinema-pos/internal/domain/user"
	"cinema-pos/internal/infra"
	"cinema-pos/internal/pkg/errs"
	"cinema-pos/internal/pkg/jwt"
	"cinema-pos/internal/pkg/password"
	"cinema-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResult struct {
	Token  string
	UserID uuid.UUID
	Role   user.Role
}

// AuthCommands maps credentials to a role and issues a token. Nothing
// more: session management and refresh flows are outside the core.
type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type UserViewRepo interface {
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, error)
}

type authCommandsImpl struct {
	users UserViewRepo
	jwt   *jwt.Service
}

func NewAuthCommands(users UserViewRepo, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		users: users,
		jwt:   jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	view, err := a.users.FindByEmail(ctx, emailVO.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(view.PasswordHash, plainPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	token, err := a.jwt.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	return &LoginResult{
		Token:  token,
		UserID: view.ID,
		Role:   role,
	}, nil
}
