package server

import (
	"encoding/json"
	"net/http"

	"github.com/showcasehq/showcase/pkg/errors"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps coded errors to HTTP statuses. Unknown codes are treated
// as internal errors and the detail is not leaked to the client.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	var status int
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeProjectNotFound, errors.ErrCodeReadmeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidSlug, errors.ErrCodeInvalidMetadata, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case errors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	default:
		status = http.StatusInternalServerError
	}

	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, body)
}
