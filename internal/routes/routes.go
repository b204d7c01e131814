// Package routes defines the API routing configuration.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"paymo/internal/handlers"
	"paymo/internal/middleware"
	"paymo/internal/repositories"
	"paymo/internal/services/transfer"
	"paymo/internal/services/user"
)

// Deps carries the wired services and repositories the routes need.
type Deps struct {
	Transfer  transfer.Service
	Users     user.Service
	Accounts  repositories.AccountRepository
	Ledger    repositories.TransferRepository
	JWTSecret string
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Deps) {
	transferHandler := handlers.NewTransferHandler(deps.Transfer, deps.Ledger)
	accountHandler := handlers.NewAccountHandler(deps.Accounts, deps.Ledger)
	userHandler := handlers.NewUserHandler(deps.Users)

	app.Get("/health", handlers.Health)

	api := app.Group("/api")
	api.Post("/register", userHandler.Register)
	api.Post("/login", userHandler.Login)

	authed := api.Group("", middleware.Auth(deps.JWTSecret))
	authed.Post("/transfer", transferHandler.Create)
	authed.Get("/transfers/:id", transferHandler.Get)
	authed.Get("/accounts/:id/statement", accountHandler.Statement)
}
