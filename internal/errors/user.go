package errors

var (
	ErrUserTaken = &DomainError{
		Code:    "USER_TAKEN",
		Message: "email or document already registered",
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid email or password",
	}
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
)
