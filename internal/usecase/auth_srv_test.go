package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/data/repository"
	"theatre-booking/internal/dto/request"
	"theatre-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture() (*MockUserRepository, AuthService) {
	userRepo := new(MockUserRepository)
	repo := &repository.Repository{User: userRepo}

	config := &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret-key",
			ExpiryHours: 24,
		},
	}

	service := NewAuthService(repo, config, zap.NewNop())
	return userRepo, service
}

func TestRegister_Success(t *testing.T) {
	userRepo, service := newAuthFixture()

	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "alice@example.com" &&
			u.Role == entity.RoleCustomer &&
			u.PasswordHash != "secret-password" // never stored in the clear
	})).Return(nil)

	req := &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	}

	resp, err := service.Register(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo, service := newAuthFixture()

	existing := &entity.User{
		Base:  entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email: "alice@example.com",
	}
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	req := &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	}

	resp, err := service.Register(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)

	var validationErr *entity.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "email")
	userRepo.AssertNotCalled(t, "Create")
}

func TestRegister_ShortPassword(t *testing.T) {
	userRepo, service := newAuthFixture()

	req := &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "short",
	}

	_, err := service.Register(context.Background(), req)

	var validationErr *entity.ValidationError
	require.True(t, errors.As(err, &validationErr))
	userRepo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	userRepo, service := newAuthFixture()

	hashed, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hashed,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

	req := &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	}

	resp, err := service.Login(context.Background(), req)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := utils.ParseToken("test-secret-key", resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(entity.RoleCustomer), claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo, service := newAuthFixture()

	hashed, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email:        "alice@example.com",
		PasswordHash: hashed,
		IsActive:     true,
	}
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

	req := &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	}

	resp, err := service.Login(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, entity.ErrUnauthorized))
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo, service := newAuthFixture()

	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	req := &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-password",
	}

	_, err := service.Login(context.Background(), req)

	assert.True(t, errors.Is(err, entity.ErrUnauthorized))
}

func TestLogin_InactiveAccount(t *testing.T) {
	userRepo, service := newAuthFixture()

	hashed, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Email:        "alice@example.com",
		PasswordHash: hashed,
		IsActive:     false,
	}
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(user, nil)

	req := &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret-password",
	}

	_, err = service.Login(context.Background(), req)

	assert.True(t, errors.Is(err, entity.ErrUnauthorized))
}
