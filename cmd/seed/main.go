// Package main seeds the two demo users: an ordinary user with funds to send
// and a merchant that can only receive.
package main

import (
	"context"
	stderrors "errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"paymo/internal/config"
	apperrors "paymo/internal/errors"
	"paymo/internal/logger"
	"paymo/internal/models"
	"paymo/internal/repositories"
)

type seedUser struct {
	name     string
	email    string
	document string
	kind     string
	balance  int64
}

var seedUsers = []seedUser{
	{name: "Common User", email: "common@test.com", document: "12345678901", kind: models.AccountKindOrdinary, balance: 1000},
	{name: "Merchant User", email: "merchant@test.com", document: "12345678902", kind: models.AccountKindMerchant, balance: 0},
}

func main() {
	config.LoadEnv()

	if err := logger.Init(config.IsProduction()); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Log

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	users := repositories.NewUserRepository(db)
	ctx := context.Background()

	for _, s := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(config.GetEnv("SEED_PASSWORD", "password")), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("failed to hash seed password", zap.Error(err))
		}

		user := &models.User{
			Name:     s.name,
			Email:    s.email,
			Document: s.document,
			Password: string(hash),
		}
		account := &models.Account{
			Kind:    s.kind,
			Balance: decimal.NewFromInt(s.balance),
		}

		err = users.CreateWithAccount(ctx, user, account)
		if stderrors.Is(err, apperrors.ErrUserTaken) {
			log.Info("seed user already exists", zap.String("email", s.email))
			continue
		}
		if err != nil {
			log.Fatal("failed to seed user", zap.String("email", s.email), zap.Error(err))
		}
		log.Info("seeded user",
			zap.String("email", s.email),
			zap.String("kind", s.kind),
			zap.Uint("account_id", account.ID))
	}
}
