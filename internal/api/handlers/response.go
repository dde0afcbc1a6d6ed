package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/loftbook/engine/internal/api/middleware"
	"github.com/loftbook/engine/internal/api/types"
	appErr "github.com/loftbook/engine/pkg/errors"
	"github.com/loftbook/engine/pkg/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error's code to an HTTP status. 5xx details are logged
// and replaced with a generic message on the wire.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := appErr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, types.APIResponse{Success: false, Error: types.FromAppError(err)})
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: &types.APIError{Code: string(appErr.CodeInvalid), Message: msg}})
}

// currentUserID resolves the authenticated caller set by middleware.Auth.
func currentUserID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(middleware.GetUserID(r.Context()))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, types.APIResponse{
		Success: false,
		Error:   &types.APIError{Code: string(appErr.CodeUnauthorized), Message: "unauthorized"},
	})
}
