package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"turisflow/internal/domain"
	"turisflow/internal/http/middleware"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if details != nil {
		payload["details"] = details
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Missing backing
// tables surface as 503 with a dedicated code so the frontend can route the
// operator to the database setup screen instead of showing an empty list.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsSetupRequired(err):
		var setup domain.SetupRequiredError
		var missing []string
		if errors.As(err, &setup) {
			missing = setup.MissingTables
		}
		respondError(c, http.StatusServiceUnavailable, "setup_required",
			"banco de dados não configurado", gin.H{"missing_tables": missing})
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "erro interno", nil)
	}
}
