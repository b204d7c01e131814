package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paymo/internal/repositories"
	"paymo/internal/services/transfer"
	"paymo/internal/utils/response"
	"paymo/internal/validation"
)

// TransferHandler exposes the transfer endpoints.
type TransferHandler struct {
	service transfer.Service
	ledger  repositories.TransferRepository
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(service transfer.Service, ledger repositories.TransferRepository) *TransferHandler {
	return &TransferHandler{service: service, ledger: ledger}
}

// Create handles POST /api/transfer.
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var req validation.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validation.ValidateTransfer(&req); err != nil {
		return response.FromError(c, err)
	}

	record, err := h.service.Transfer(c.Context(), req.Payer, req.Payee, req.Value)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Created(c, "transfer completed", record)
}

// Get handles GET /api/transfers/:id.
func (h *TransferHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "invalid transfer id")
	}

	record, err := h.ledger.FindByID(c.Context(), uint(id))
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "transfer found", record)
}
