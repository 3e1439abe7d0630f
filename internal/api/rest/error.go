package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sundevilsync/sds-backend/internal/domain"
	"github.com/sundevilsync/sds-backend/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeUnauthorized     ErrorCode = "unauthorized"
	errCodeForbidden        ErrorCode = "forbidden"
	errCodeConflict         ErrorCode = "conflict"
	errCodePrecondition     ErrorCode = "precondition_failed"
	errCodeValidationFailed ErrorCode = "validation_failed"

	// Server errors (5xx)
	errCodeInternalError ErrorCode = "internal_error"
	errCodeLedgerError   ErrorCode = "ledger_error"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}
	if len(details) > 0 {
		response.Error.Details = details[0]
	}
	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondUnauthorized sends a 401 Unauthorized response
func respondUnauthorized(c *gin.Context, message string) {
	respondWithError(c, http.StatusUnauthorized, errCodeUnauthorized, message)
}

// respondDomainError maps a domain error to its HTTP status. Unrecognized
// errors become 500s and are logged.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		respondWithError(c, http.StatusNotFound, errCodeNotFound, err.Error())
	case domain.IsValidation(err), domain.IsPolicy(err):
		respondWithError(c, http.StatusUnprocessableEntity, errCodeValidationFailed, err.Error())
	case domain.IsForbidden(err):
		respondWithError(c, http.StatusForbidden, errCodeForbidden, err.Error())
	case domain.IsConflict(err):
		respondWithError(c, http.StatusConflict, errCodeConflict, err.Error())
	case domain.IsPrecondition(err):
		respondWithError(c, http.StatusUnprocessableEntity, errCodePrecondition, err.Error())
	case domain.IsLedger(err):
		respondWithError(c, http.StatusBadGateway, errCodeLedgerError, err.Error())
	default:
		logger.Error(err, zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, errCodeInternalError, "Internal server error")
	}
}
