// Package validation checks request shape before requests reach the
// services. Business rules (merchant payer, balance, authorization) are the
// transfer coordinator's job, not this package's.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"paymo/internal/errors"
)

var validate = validator.New()

// TransferRequest is the inbound transfer payload. Field names follow the
// public API contract: value, payer, payee.
type TransferRequest struct {
	Value decimal.Decimal `json:"value"`
	Payer uint            `json:"payer" validate:"required"`
	Payee uint            `json:"payee" validate:"required"`
}

// ValidateTransfer checks that both ids are present and the amount is
// strictly positive.
func ValidateTransfer(req *TransferRequest) error {
	if err := validate.Struct(req); err != nil {
		return &errors.DomainError{Code: "INVALID_REQUEST", Message: "payer and payee are required"}
	}
	if !req.Value.IsPositive() {
		return &errors.DomainError{Code: "INVALID_AMOUNT", Message: "value must be greater than zero"}
	}
	return nil
}

// RegisterRequest is the inbound registration payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Document string `json:"document" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Kind     string `json:"kind" validate:"omitempty,oneof=ordinary merchant"`
}

// ValidateRegister checks the registration fields. Documents must be a CPF
// (11 digits) or CNPJ (14 digits) after stripping formatting.
func ValidateRegister(req *RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return &errors.DomainError{
				Code:    "INVALID_REQUEST",
				Message: fmt.Sprintf("invalid field: %s", strings.ToLower(verrs[0].Field())),
			}
		}
		return &errors.DomainError{Code: "INVALID_REQUEST", Message: "invalid request"}
	}
	if l := len(OnlyDigits(req.Document)); l != 11 && l != 14 {
		return &errors.DomainError{Code: "INVALID_DOCUMENT", Message: "document must be a valid CPF or CNPJ"}
	}
	return nil
}

// LoginRequest is the inbound login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ValidateLogin checks the login fields.
func ValidateLogin(req *LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return &errors.DomainError{Code: "INVALID_REQUEST", Message: "email and password are required"}
	}
	return nil
}

// OnlyDigits strips every non-digit rune from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
