package utils

import (
	"encoding/json"
	"net/http"
)

// Stable error codes the caller can branch on. Every expected failure maps
// to exactly one of these, never to a generic internal error.
const (
	CodeNotFound             = "NOT_FOUND"
	CodeValidation           = "VALIDATION_ERROR"
	CodeInsufficientCapacity = "INSUFFICIENT_CAPACITY"
	CodeInvalidTransition    = "INVALID_TRANSITION"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInternal             = "INTERNAL_ERROR"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, httpStatus int, status bool, message, code string, data, errors any) {
	response := Response{
		Status:  status,
		Message: message,
		Code:    code,
		Data:    data,
		Errors:  errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, "", data, nil)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, "", data, nil)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, message, CodeValidation, nil, errors)
}

// returns 401 Unauthorized
func ResponseUnauthenticated(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, false, message, CodeUnauthorized, nil, nil)
}

// returns 403 Forbidden; deliberately generic so booking existence does not
// leak to unrelated parties
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, false, message, CodeUnauthorized, nil, nil)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, false, message, CodeNotFound, nil, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message, code string) {
	ResponseJSON(w, http.StatusConflict, false, message, code, nil, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, false, message, CodeInternal, nil, nil)
}
