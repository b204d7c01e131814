package errors

var (
	ErrAccountNotFound = &DomainError{
		Code:    "ACCOUNT_NOT_FOUND",
		Message: "account not found",
	}
	ErrSelfTransfer = &DomainError{
		Code:    "SELF_TRANSFER",
		Message: "cannot transfer to the same account",
	}
	ErrMerchantPayer = &DomainError{
		Code:    "MERCHANT_PAYER",
		Message: "merchant accounts cannot send transfers",
	}
	ErrInsufficientFunds = &DomainError{
		Code:    "INSUFFICIENT_FUNDS",
		Message: "insufficient balance",
	}
	ErrNotAuthorized = &DomainError{
		Code:    "NOT_AUTHORIZED",
		Message: "transfer not authorized",
	}
	ErrTransferNotFound = &DomainError{
		Code:    "TRANSFER_NOT_FOUND",
		Message: "transfer not found",
	}
)
