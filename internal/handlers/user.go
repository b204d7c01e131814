package handlers

import (
	"github.com/gofiber/fiber/v2"

	"paymo/internal/services/user"
	"paymo/internal/utils/response"
	"paymo/internal/validation"
)

// UserHandler exposes registration and login endpoints.
type UserHandler struct {
	service user.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/register.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req validation.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validation.ValidateRegister(&req); err != nil {
		return response.FromError(c, err)
	}

	u, account, err := h.service.Register(c.Context(), user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Document: validation.OnlyDigits(req.Document),
		Password: req.Password,
		Kind:     req.Kind,
	})
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Created(c, "user created", fiber.Map{
		"user":    u,
		"account": account,
	})
}

// Login handles POST /api/login.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req validation.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validation.ValidateLogin(&req); err != nil {
		return response.FromError(c, err)
	}

	token, u, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return response.FromError(c, err)
	}

	return response.Success(c, "login successful", fiber.Map{
		"token": token,
		"user":  u,
	})
}
