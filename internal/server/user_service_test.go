package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kridha/fit-engine/internal/config"
	"github.com/kridha/fit-engine/internal/db"
	"github.com/kridha/fit-engine/internal/types"
)

// fakeDB is an in-memory DBClient for user service tests.
type fakeDB struct {
	users map[uuid.UUID]*db.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDB) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{ID: id, Name: name, Email: email, Phone: phone, CreatedAt: now, UpdatedAt: now}
	return id, nil
}

func (f *fakeDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (f *fakeDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func newTestUserService() (*UserService, *fakeDB) {
	fake := newFakeDB()
	// Low cost keeps the tests fast
	pw := &config.PasswordConfig{BcryptCost: bcrypt.MinCost}
	return NewUserService(fake, pw), fake
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.True(t, user.PasswordSet)

	logged, err := svc.Login(ctx, &types.LoginRequest{Email: "priya@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Priya", Email: "priya@example.com", Password: "correct-horse"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Priya", Email: "priya@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "priya@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_LoginUnknownEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_UpdatePassword(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Priya", Email: "priya@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(ctx, user.ID, "correct-horse", "battery-staple"))

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "priya@example.com", Password: "battery-staple"})
	assert.NoError(t, err)
}

func TestUserService_UpdatePasswordWrongCurrent(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{Name: "Priya", Email: "priya@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	err = svc.UpdatePassword(ctx, user.ID, "wrong", "battery-staple")
	require.Error(t, err)
	assert.IsType(t, &ErrPasswordMismatch{}, err)
}

func TestUserService_UpdatePasswordUnknownUser(t *testing.T) {
	svc, _ := newTestUserService()

	err := svc.UpdatePassword(context.Background(), uuid.New(), "a", "battery-staple")
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}
