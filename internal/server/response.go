package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/llm"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// classify maps a generation error to an HTTP status and error code.
func classify(err error) (int, string) {
	var (
		rateLimit   *llm.ErrRateLimit
		auth        *llm.ErrAuthentication
		unavailable *llm.ErrProviderUnavailable
		invalid     *llm.ErrInvalidResponse
		maxTokens   *llm.ErrMaxTokensExceeded
	)
	switch {
	case errors.Is(err, assessment.ErrIncomplete), errors.Is(err, assessment.ErrUnknownGrade):
		return http.StatusUnprocessableEntity, "invalid_request"
	case errors.As(err, &rateLimit):
		return http.StatusTooManyRequests, "llm_rate_limited"
	case errors.As(err, &auth):
		return http.StatusBadGateway, "llm_auth"
	case errors.As(err, &unavailable):
		return http.StatusBadGateway, "llm_unavailable"
	case errors.As(err, &invalid):
		return http.StatusBadGateway, "llm_invalid_response"
	case errors.As(err, &maxTokens):
		return http.StatusBadGateway, "llm_truncated"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
