package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Coupon errors
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrInvalidCouponID = errors.New("invalid coupon id")

	// Admin errors
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
