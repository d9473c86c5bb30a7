package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kridha/fit-engine/internal/config"
	"github.com/kridha/fit-engine/internal/db"
	"github.com/kridha/fit-engine/internal/types"
)

// DBClient is the slice of the db layer the user service needs. Tests
// substitute a fake here.
type DBClient interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email, phone string) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
}

// UserService owns account registration and credential checks for the
// scoring API.
type UserService struct {
	db        DBClient
	passwords *config.PasswordConfig
}

func NewUserService(db DBClient, passwords *config.PasswordConfig) *UserService {
	return &UserService{db: db, passwords: passwords}
}

// sanitizeUser strips the credential fields off a db row before it
// leaves the service.
func sanitizeUser(row *db.User) *types.User {
	if row == nil {
		return nil
	}
	return &types.User{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		Phone:       row.Phone,
		PasswordSet: row.PasswordSet,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// Register creates an account. The row is created first and the
// credential attached after, matching the db layer's two calls.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.db.CreateUser(ctx, req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := s.db.UpdatePassword(ctx, userID, hash); err != nil {
		return nil, fmt.Errorf("set password: %w", err)
	}

	row, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load created user: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("created user %s not found", userID)
	}
	return sanitizeUser(row), nil
}

// Login checks the credentials and returns the account. Every failure
// mode maps to the same error so responses do not leak which emails
// are registered.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	row, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("look up account: %w", err)
	}
	if row == nil || !row.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwords.VerifyPassword(req.Password, row.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}
	return sanitizeUser(row), nil
}

// UpdatePassword replaces the credential after verifying the current
// one.
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	row, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("load account: %w", err)
	}
	if row == nil {
		return &ErrUserNotFound{UserID: userID}
	}
	if !s.passwords.VerifyPassword(currentPassword, row.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	hash, err := s.passwords.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}
	if err := s.db.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("store new password: %w", err)
	}
	return nil
}
