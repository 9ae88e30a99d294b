package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"hotel-backoffice/internal/domain/user"
	reqdto "hotel-backoffice/internal/handler/dto/request"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/pkg/jwt"
	"hotel-backoffice/internal/pkg/password"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type AuthResult struct {
	User  *queries.UserView
	Token string
}

// UserReader is the pool-bound read side used outside transactions.
type UserReader interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	users      UserReader
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, users UserReader, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		users:      users,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*AuthResult, error) {
	email, pass, role, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity := user.NewUser(email, hash, role)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Insert(ctx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Wrap(err, "failed to register user")
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{User: userView(entity), Token: token}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	entity, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, entity.ID(), a.clock.Now())
	})
	if err != nil {
		// Login succeeded; a stale last_login is not worth failing over.
		slog.Warn("failed to update last login", "user_id", entity.ID(), "error", err.Error())
	}

	return &AuthResult{User: userView(entity), Token: token}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*user.User, error) {
	entity, err := a.users.FindByEmail(ctx, credentials.Email())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}

	if !entity.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(entity.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return entity, nil
}

func userView(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:       u.ID(),
		Email:    u.Email().String(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}
}
