package types

import (
	"errors"

	appErr "github.com/agroassist/engine/pkg/errors"
)

// FromAppError converts an error into the client-facing error shape. Only the
// AppError code and message cross the boundary; wrapped causes never do.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	var e *appErr.AppError
	if errors.As(err, &e) {
		return &APIError{Code: string(e.Code), Message: e.Message}
	}
	return &APIError{Code: string(appErr.CodeInternal), Message: "internal server error"}
}
