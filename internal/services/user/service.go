// Package user handles registration and login for the accounts the transfer
// engine operates on.
package user

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"paymo/internal/errors"
	"paymo/internal/models"
	"paymo/internal/repositories"
	"paymo/internal/utils"
)

// Opening balances by account kind, matching the seed data contract:
// ordinary users start with a small courtesy balance, merchants with zero.
var openingBalances = map[string]decimal.Decimal{
	models.AccountKindOrdinary: decimal.NewFromInt(100),
	models.AccountKindMerchant: decimal.Zero,
}

// RegisterInput carries the already-validated registration fields. Document
// must contain digits only.
type RegisterInput struct {
	Name     string
	Email    string
	Document string
	Password string
	Kind     string
}

// Service manages users and their credentials.
type Service interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, *models.Account, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

type service struct {
	users     repositories.UserRepository
	accounts  repositories.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewService creates a new user service instance.
func NewService(users repositories.UserRepository, accounts repositories.AccountRepository, jwtSecret string, tokenTTL time.Duration) Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &service{
		users:     users,
		accounts:  accounts,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a user and their account in one transaction.
func (s *service) Register(ctx context.Context, in RegisterInput) (*models.User, *models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	kind := in.Kind
	if kind == "" {
		kind = models.AccountKindOrdinary
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Document: in.Document,
		Password: string(hash),
	}
	account := &models.Account{
		Kind:    kind,
		Balance: openingBalances[kind],
	}

	if err := s.users.CreateWithAccount(ctx, user, account); err != nil {
		return nil, nil, err
	}
	return user, account, nil
}

// Login verifies credentials and issues a signed token.
func (s *service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return "", nil, errors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUserID(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user, account.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
