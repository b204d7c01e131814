package user

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "paymo/internal/errors"
	"paymo/internal/models"
	"paymo/internal/utils"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateWithAccount(ctx context.Context, user *models.User, account *models.Account) error {
	args := m.Called(ctx, user, account)
	return args.Error(0)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) Create(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *mockAccountRepo) FindByUserID(ctx context.Context, userID uint) (*models.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func TestRegister(t *testing.T) {
	t.Run("ordinary user gets opening balance and hashed password", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("CreateWithAccount", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		svc := NewService(users, new(mockAccountRepo), "secret", time.Hour)
		u, account, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Alice",
			Email:    "alice@test.com",
			Document: "12345678901",
			Password: "hunter22",
		})
		require.NoError(t, err)

		assert.Equal(t, models.AccountKindOrdinary, account.Kind)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
		assert.NotEqual(t, "hunter22", u.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter22")))
		users.AssertExpectations(t)
	})

	t.Run("merchant starts with zero balance", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("CreateWithAccount", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		svc := NewService(users, new(mockAccountRepo), "secret", time.Hour)
		_, account, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Shop",
			Email:    "shop@test.com",
			Document: "12345678000199",
			Password: "hunter22",
			Kind:     models.AccountKindMerchant,
		})
		require.NoError(t, err)

		assert.Equal(t, models.AccountKindMerchant, account.Kind)
		assert.True(t, account.Balance.IsZero())
	})

	t.Run("duplicate user surfaces as taken", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("CreateWithAccount", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrUserTaken)

		svc := NewService(users, new(mockAccountRepo), "secret", time.Hour)
		_, _, err := svc.Register(context.Background(), RegisterInput{
			Name:     "Alice",
			Email:    "alice@test.com",
			Document: "12345678901",
			Password: "hunter22",
		})
		require.ErrorIs(t, err, apperrors.ErrUserTaken)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := &models.User{ID: 4, Email: "alice@test.com", Password: string(hash)}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("FindByEmail", mock.Anything, "alice@test.com").Return(stored, nil)
		accounts := new(mockAccountRepo)
		accounts.On("FindByUserID", mock.Anything, uint(4)).Return(&models.Account{ID: 11, UserID: 4}, nil)

		svc := NewService(users, accounts, "secret", time.Hour)
		token, u, err := svc.Login(context.Background(), "alice@test.com", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, uint(4), u.ID)

		claims, err := utils.ParseToken(token, "secret")
		require.NoError(t, err)
		assert.Equal(t, uint(4), claims.UserID)
		assert.Equal(t, uint(11), claims.AccountID)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("FindByEmail", mock.Anything, "alice@test.com").Return(stored, nil)

		svc := NewService(users, new(mockAccountRepo), "secret", time.Hour)
		_, _, err := svc.Login(context.Background(), "alice@test.com", "wrong")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("FindByEmail", mock.Anything, "ghost@test.com").Return(nil, apperrors.ErrUserNotFound)

		svc := NewService(users, new(mockAccountRepo), "secret", time.Hour)
		_, _, err := svc.Login(context.Background(), "ghost@test.com", "hunter22")
		require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
