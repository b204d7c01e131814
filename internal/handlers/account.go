package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paymo/internal/repositories"
	"paymo/internal/utils/response"
)

const maxStatementPageSize = 100

// AccountHandler exposes account read endpoints.
type AccountHandler struct {
	accounts repositories.AccountRepository
	ledger   repositories.TransferRepository
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts repositories.AccountRepository, ledger repositories.TransferRepository) *AccountHandler {
	return &AccountHandler{accounts: accounts, ledger: ledger}
}

// Statement handles GET /api/accounts/:id/statement.
func (h *AccountHandler) Statement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid account id")
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > maxStatementPageSize {
		limit = 20
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	account, err := h.accounts.FindByID(c.Context(), uint(id))
	if err != nil {
		return response.FromError(c, err)
	}

	transfers, err := h.ledger.ListByAccount(c.Context(), account.ID, limit, offset)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "statement", fiber.Map{
		"account":   account,
		"transfers": transfers,
	})
}
