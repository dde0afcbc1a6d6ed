package types

import (
	"errors"
	"net/http"

	appErr "github.com/loftbook/engine/pkg/errors"
)

// FromAppError converts an error into the wire representation. Errors that
// map to 500 are reported with a generic message so internals never leak.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		if appErr.HTTPStatus(ae) == http.StatusInternalServerError {
			return &APIError{Code: string(appErr.CodeInternal), Message: "internal error"}
		}
		return &APIError{Code: string(ae.Code), Message: ae.Message}
	}
	return &APIError{Code: string(appErr.CodeInternal), Message: "internal error"}
}
