package middleware

import (
	"context"
	"net/http"
	"time"

	activitylogs "github.com/Portalfi/Portalfi-Backend/services/activity_logs"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/gin-gonic/gin"
)

// ContextActivityTargetKey lets a handler name the resource an activity
// refers to, such as the URL of a new webhook.
const ContextActivityTargetKey = "activity_target"

type ActivityLogMiddleware struct {
	logs    *activitylogs.ActivityLog
	enabled bool
}

func NewActivityLogMiddleware(logs *activitylogs.ActivityLog, enabled bool) *ActivityLogMiddleware {
	return &ActivityLogMiddleware{
		logs:    logs,
		enabled: enabled,
	}
}

func (a *ActivityLogMiddleware) active() bool {
	return a != nil && a.logs != nil && a.enabled
}

// RequestLogger stores one row per request once the response is written.
func (a *ActivityLogMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.active() {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		params := activitylogs.RequestLogParams{
			RequestID:  utils.GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   time.Since(start),
			UserID:     activeUserID(c),
			IPAddress:  c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			CreatedAt:  start,
		}

		a.logs.Dispatch("request", func(ctx context.Context) error {
			return a.logs.RecordRequest(ctx, params)
		})
	}
}

// ActivityLogger adds successful user-facing actions to the activity timeline.
func (a *ActivityLogMiddleware) ActivityLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !a.active() || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		activity, ok := activitylogs.ResolveActivity(c.Request.Method, c.Request.URL.Path, c.GetString(ContextActivityTargetKey))
		if !ok {
			return
		}

		params := activitylogs.CreateActivityLogParams{
			UserID:    activeUserID(c),
			Activity:  activity,
			Method:    c.Request.Method,
			Endpoint:  c.Request.URL.Path,
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			CreatedAt: time.Now(),
		}

		a.logs.Dispatch("activity", func(ctx context.Context) error {
			_, err := a.logs.Create(ctx, params)
			return err
		})
	}
}

func activeUserID(c *gin.Context) string {
	user, err := utils.GetActiveUser(c)
	if err != nil {
		return ""
	}
	return user.UserID
}
