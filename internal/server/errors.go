package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	admindomain "github.com/gulfbridge/portal/internal/admin/domain"
	authdomain "github.com/gulfbridge/portal/internal/auth/domain"
	careerdomain "github.com/gulfbridge/portal/internal/career/domain"
	"github.com/gulfbridge/portal/internal/cbm"
	contentdomain "github.com/gulfbridge/portal/internal/content/domain"
	messagedomain "github.com/gulfbridge/portal/internal/message/domain"
	quotedomain "github.com/gulfbridge/portal/internal/quote/domain"
	settingsdomain "github.com/gulfbridge/portal/internal/settings/domain"
	shipmentdomain "github.com/gulfbridge/portal/internal/shipment/domain"
	teamdomain "github.com/gulfbridge/portal/internal/team/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrRateLimited    = errors.New("rate_limited")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, authdomain.ErrSessionExpired),
		errors.Is(err, authdomain.ErrSessionRevoked):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case errors.Is(err, ErrConflict),
		errors.Is(err, admindomain.ErrEmailTaken),
		errors.Is(err, admindomain.ErrSelfDelete),
		errors.Is(err, teamdomain.ErrRecordInUse),
		errors.Is(err, careerdomain.ErrJobClosed):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, errorPayload{
			Type:    "rate_limited",
			Message: "too many requests",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrInternal):
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, cbm.ErrInvalidInput):
		return true
	case isAdminValidationError(err),
		isContentValidationError(err),
		isShipmentValidationError(err),
		isMessageValidationError(err),
		isQuoteValidationError(err),
		isCareerValidationError(err),
		isTeamValidationError(err),
		isSettingsValidationError(err):
		return true
	default:
		return false
	}
}

func isAdminValidationError(err error) bool {
	return errors.Is(err, admindomain.ErrInvalidEmail) ||
		errors.Is(err, admindomain.ErrInvalidPassword) ||
		errors.Is(err, admindomain.ErrInvalidRole) ||
		errors.Is(err, admindomain.ErrInvalidID)
}

func isContentValidationError(err error) bool {
	return errors.Is(err, contentdomain.ErrUnknownCollection) ||
		errors.Is(err, contentdomain.ErrInvalidID) ||
		errors.Is(err, contentdomain.ErrInvalidTitle)
}

func isShipmentValidationError(err error) bool {
	return errors.Is(err, shipmentdomain.ErrInvalidTrackingID) ||
		errors.Is(err, shipmentdomain.ErrInvalidStatus)
}

func isMessageValidationError(err error) bool {
	return errors.Is(err, messagedomain.ErrInvalidID) ||
		errors.Is(err, messagedomain.ErrInvalidName) ||
		errors.Is(err, messagedomain.ErrInvalidEmail) ||
		errors.Is(err, messagedomain.ErrInvalidMessage)
}

func isQuoteValidationError(err error) bool {
	return errors.Is(err, quotedomain.ErrInvalidID) ||
		errors.Is(err, quotedomain.ErrNoItems) ||
		errors.Is(err, quotedomain.ErrInvalidEmail) ||
		errors.Is(err, quotedomain.ErrInvalidPhone) ||
		errors.Is(err, quotedomain.ErrInvalidStatus)
}

func isCareerValidationError(err error) bool {
	return errors.Is(err, careerdomain.ErrInvalidID) ||
		errors.Is(err, careerdomain.ErrInvalidTitle) ||
		errors.Is(err, careerdomain.ErrInvalidStatus) ||
		errors.Is(err, careerdomain.ErrInvalidName) ||
		errors.Is(err, careerdomain.ErrInvalidEmail)
}

func isTeamValidationError(err error) bool {
	return errors.Is(err, teamdomain.ErrInvalidID) ||
		errors.Is(err, teamdomain.ErrInvalidName) ||
		errors.Is(err, teamdomain.ErrInvalidLevel) ||
		errors.Is(err, teamdomain.ErrUnknownParent)
}

func isSettingsValidationError(err error) bool {
	return errors.Is(err, settingsdomain.ErrInvalidID) ||
		errors.Is(err, settingsdomain.ErrInvalidKey) ||
		errors.Is(err, settingsdomain.ErrInvalidValue) ||
		errors.Is(err, settingsdomain.ErrInvalidPlatform) ||
		errors.Is(err, settingsdomain.ErrInvalidURL)
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, admindomain.ErrNotFound),
		errors.Is(err, contentdomain.ErrNotFound),
		errors.Is(err, shipmentdomain.ErrNotFound),
		errors.Is(err, messagedomain.ErrNotFound),
		errors.Is(err, quotedomain.ErrNotFound),
		errors.Is(err, careerdomain.ErrJobNotFound),
		errors.Is(err, careerdomain.ErrApplicationNotFound),
		errors.Is(err, teamdomain.ErrNotFound),
		errors.Is(err, settingsdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	if strings.HasSuffix(code, "_required") {
		return strings.TrimSuffix(code, "_required")
	}
	return ""
}
