package commands

import (
	"context"
	"log/slog"

	"festivo/internal/domain/user"
	reqdto "festivo/internal/handler/dto/request"
	"festivo/internal/infra"
	"festivo/internal/pkg/clock"
	"festivo/internal/pkg/errs"
	"festivo/internal/pkg/jwt"
	"festivo/internal/pkg/password"
	"festivo/internal/usecase/queries"
	"festivo/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailAlreadyUsed     = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// UserReader is the read-side lookup auth needs beyond CommandReads.
type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	users      UserReader
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, users UserReader, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, users: users, jwtService: jwtService, clock: clock}
}

// Register creates a customer account. Admin accounts are provisioned out of
// band, never through this endpoint.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error) {
	fe := errs.FieldErrors{}

	if req.FullName == "" {
		fe.Add("full_name", "full name is required")
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		fe.Add("email", "must be a valid email address")
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		fe.Add("password", "must be at least 8 characters long")
	}
	if fe.HasErrors() {
		return nil, fe
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u := user.NewUser(req.FullName, email, hash, user.RoleCustomer)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailAlreadyUsed)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.AuthorizedUserView{
		ID:       u.ID(),
		FullName: u.FullName(),
		Email:    u.Email().Value(),
		Role:     u.Role().String(),
		IsActive: u.IsActive(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email.Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := a.jwtService.GenerateAccessToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, u.ID(), a.clock.Now())
	})
	if err != nil {
		// Not critical; login already succeeded.
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:    u.ID(),
		Role:      u.Role(),
		TokenPair: &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// The user must still exist and be active.
	u, err := a.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUserNotFound)
	}
	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	newRefreshToken, err := a.jwtService.GenerateRefreshToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}
