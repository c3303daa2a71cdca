package chi

import (
	"encoding/json"
	"net/http"

	fbref "github.com/raghavtripped/fbref-dashboard"
)

// errorResponse is the standard error shape for all API errors.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// codeStatus maps application error codes to HTTP status codes.
var codeStatus = map[string]int{
	fbref.EINVALID:     http.StatusBadRequest,
	fbref.ENOTFOUND:    http.StatusNotFound,
	fbref.ERATELIMITED: http.StatusTooManyRequests,
	fbref.EBLOCKED:     http.StatusBadGateway,
	fbref.EUNAVAILABLE: http.StatusServiceUnavailable,
	fbref.EINTERNAL:    http.StatusInternalServerError,
}

// writeJSON marshals v and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends a structured JSON error response, deriving the HTTP
// status from the application error code.
func writeError(w http.ResponseWriter, err error) {
	code := fbref.ErrorCode(err)
	status, ok := codeStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	resp := errorResponse{}
	resp.Error.Code = code
	resp.Error.Message = fbref.ErrorMessage(err)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
