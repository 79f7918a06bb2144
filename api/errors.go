package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Portalfi/Portalfi-Backend/models"
	"github.com/Portalfi/Portalfi-Backend/providers/gnosispay"
	activitylogs "github.com/Portalfi/Portalfi-Backend/services/activity_logs"
	"github.com/Portalfi/Portalfi-Backend/services/gnosis"
	"github.com/Portalfi/Portalfi-Backend/services/notification"
	user_service "github.com/Portalfi/Portalfi-Backend/services/user"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const internalErrorMessage = "Internal server error"

// apiError is an error with a fixed response status.
type apiError struct {
	status  int
	message string
	label   string
	details []models.ValidationError
}

func (e *apiError) Error() string {
	return e.message
}

func newAPIError(status int, message string) *apiError {
	return &apiError{status: status, message: message, label: http.StatusText(status)}
}

// handleError maps err to a status and writes the error envelope.
func (s *Server) handleError(ctx *gin.Context, err error) {
	s.writeError(ctx, s.classify(err))
}

func (s *Server) abortWithError(ctx *gin.Context, status int, message string) {
	s.writeError(ctx, newAPIError(status, message))
	ctx.Abort()
}

func (s *Server) classify(err error) *apiError {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	// Upstream failures keep the upstream status and message.
	if pErr, ok := gnosispay.AsProviderError(err); ok {
		status := pErr.Status
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusInternalServerError
		}
		return &apiError{status: status, message: pErr.Message, label: pErr.Message}
	}

	switch {
	case errors.Is(err, user_service.ErrUserAlreadyExists):
		return newAPIError(http.StatusConflict, "Email already exists")
	case errors.Is(err, user_service.ErrUserNotFound):
		return newAPIError(http.StatusNotFound, "User not found")
	case errors.Is(err, user_service.ErrInvalidCredentials):
		return newAPIError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, user_service.ErrForbidden):
		return newAPIError(http.StatusForbidden, "Forbidden - Can only update own profile")
	case errors.Is(err, user_service.ErrInvalidRole):
		return newAPIError(http.StatusBadRequest, err.Error())
	case errors.Is(err, notification.ErrUnknownTemplate),
		errors.Is(err, notification.ErrMissingTemplateParam),
		errors.Is(err, gnosis.ErrInvalidPrivateKey),
		errors.Is(err, gnosis.ErrAddressMismatch):
		return newAPIError(http.StatusBadRequest, err.Error())
	case errors.Is(err, notification.ErrSMSNotConfigured),
		errors.Is(err, notification.ErrSMSFromNotConfigured),
		errors.Is(err, notification.ErrEmailNotConfigured):
		return newAPIError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return newAPIError(499, "Client closed request")
	}

	return newAPIError(http.StatusInternalServerError, internalErrorMessage)
}

func (s *Server) writeError(ctx *gin.Context, apiErr *apiError) {
	body := models.ErrorResponse{
		Success:    false,
		StatusCode: apiErr.status,
		Timestamp:  time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Path:       ctx.Request.URL.RequestURI(),
		Method:     ctx.Request.Method,
		Message:    apiErr.message,
		Error:      apiErr.label,
		RequestID:  utils.GetRequestID(ctx),
		Details:    apiErr.details,
	}

	entry := s.logger.WithFields(logrus.Fields{
		"request_id": body.RequestID,
		"method":     body.Method,
		"path":       body.Path,
		"status":     body.StatusCode,
	})
	if len(ctx.Errors) > 0 {
		entry = entry.WithField("error", ctx.Errors.Last().Error())
	}
	line := fmt.Sprintf("%s %s - Status: %d - Message: %s", body.Method, body.Path, body.StatusCode, body.Message)
	if apiErr.status >= http.StatusInternalServerError {
		entry.Error(line)
	} else {
		entry.Warn(line)
	}

	s.persistError(ctx, body)
	ctx.JSON(apiErr.status, body)
}

func (s *Server) persistError(ctx *gin.Context, body models.ErrorResponse) {
	if s.activity == nil || !s.config.DBLoggingEnabled {
		return
	}

	params := activitylogs.ErrorLogParams{
		RequestID:  body.RequestID,
		StatusCode: body.StatusCode,
		Message:    body.Message,
		Endpoint:   body.Path,
		Method:     body.Method,
		IPAddress:  ctx.ClientIP(),
		UserAgent:  ctx.Request.UserAgent(),
		CreatedAt:  time.Now(),
	}
	s.activity.Dispatch("error", func(c context.Context) error {
		return s.activity.RecordError(c, params)
	})
}

// fail records err on the context for logging and responds with its envelope.
func (s *Server) fail(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	s.handleError(ctx, err)
}

func (s *Server) recoverPanic(ctx *gin.Context, recovered interface{}) {
	s.logger.WithField("panic", fmt.Sprint(recovered)).Error("Recovered from panic")
	s.abortWithError(ctx, http.StatusInternalServerError, internalErrorMessage)
}

func (s *Server) notFound(ctx *gin.Context) {
	s.writeError(ctx, newAPIError(http.StatusNotFound, fmt.Sprintf("Cannot %s %s", ctx.Request.Method, ctx.Request.URL.Path)))
}
