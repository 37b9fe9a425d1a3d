package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/agroassist/engine/internal/api/types"
	appErr "github.com/agroassist/engine/pkg/errors"
	"github.com/agroassist/engine/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a service error onto the HTTP status for its code. Internal
// detail is logged here and never serialized to the client.
func writeError(w http.ResponseWriter, err error) {
	code := appErr.CodeOf(err)
	if appErr.HTTPStatus(code) >= http.StatusInternalServerError {
		logger.L().Error("request failed", zap.Error(err))
	}
	writeJSON(w, appErr.HTTPStatus(code), types.APIResponse{Success: false, Error: types.FromAppError(err)})
}

func writeErrorStr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.APIResponse{Success: false, Error: &types.APIError{Code: string(appErr.CodeInvalid), Message: msg}})
}
