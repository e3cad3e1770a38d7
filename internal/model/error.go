package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailInUse         = "EMAIL_IN_USE"
	ErrCodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeWrongPassword      = "WRONG_PASSWORD"
	ErrCodeResetTokenInvalid  = "RESET_TOKEN_INVALID"
	ErrCodeResetTokenExpired  = "RESET_TOKEN_EXPIRED"
	ErrCodeCategoryNotFound   = "CATEGORY_NOT_FOUND"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeFavoriteNotFound   = "FAVORITE_NOT_FOUND"
	ErrCodeNoProducts         = "NO_PRODUCTS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure that handlers map to a status code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid email or password")
	ErrEmailInUse         = NewDomainError(ErrCodeEmailInUse, "Email already in use")
	ErrPasswordTooShort   = NewDomainError(ErrCodePasswordTooShort, "Password must be at least 6 characters long")
	ErrUserNotFound       = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrWrongPassword      = NewDomainError(ErrCodeWrongPassword, "Incorrect password")
	ErrResetTokenInvalid  = NewDomainError(ErrCodeResetTokenInvalid, "Invalid token")
	ErrResetTokenExpired  = NewDomainError(ErrCodeResetTokenExpired, "Token expired")
	ErrCategoryNotFound   = NewDomainError(ErrCodeCategoryNotFound, "Category not found")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrFavoriteNotFound   = NewDomainError(ErrCodeFavoriteNotFound, "Favorite not found")
	ErrNoProducts         = NewDomainError(ErrCodeNoProducts, "No products found")
)
