package activitylogs

import (
	"context"
	"database/sql"
	"net"
	"strconv"
	"time"

	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sqlc-dev/pqtype"
)

// writeTimeout bounds every background log write.
const writeTimeout = 5 * time.Second

type logStore interface {
	CreateActivityLog(ctx context.Context, arg db.CreateActivityLogParams) (db.ActivityLog, error)
	GetActivityLogsByUser(ctx context.Context, arg db.GetActivityLogsByUserParams) ([]db.ActivityLog, error)
	CreateRequestLog(ctx context.Context, arg db.CreateRequestLogParams) error
	CreateErrorLog(ctx context.Context, arg db.CreateErrorLogParams) error
	DeleteActivityLogsBefore(ctx context.Context, createdAt time.Time) (int64, error)
	DeleteRequestLogsBefore(ctx context.Context, createdAt time.Time) (int64, error)
	DeleteErrorLogsBefore(ctx context.Context, createdAt time.Time) (int64, error)
}

type ActivityLog struct {
	store  logStore
	logger *logging.Logger
}

func NewActivityLog(store logStore, logger *logging.Logger) *ActivityLog {
	return &ActivityLog{
		store:  store,
		logger: logger,
	}
}

type CreateActivityLogParams struct {
	UserID    string
	Activity  Activity
	Method    string
	Endpoint  string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}

type RequestLogParams struct {
	RequestID  string
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration
	UserID     string
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}

type ErrorLogParams struct {
	RequestID  string
	StatusCode int
	Message    string
	Endpoint   string
	Method     string
	IPAddress  string
	UserAgent  string
	CreatedAt  time.Time
}

func (a *ActivityLog) Create(ctx context.Context, params CreateActivityLogParams) (db.ActivityLog, error) {
	return a.store.CreateActivityLog(ctx, db.CreateActivityLogParams{
		UserID:      toNullUUID(params.UserID),
		Type:        params.Activity.Type,
		Title:       params.Activity.Title,
		Description: params.Activity.Description,
		Icon:        params.Activity.Icon,
		Method:      params.Method,
		Endpoint:    params.Endpoint,
		IpAddress:   toInet(params.IPAddress),
		UserAgent:   toNullString(params.UserAgent),
		CreatedAt:   params.CreatedAt,
	})
}

func (a *ActivityLog) GetByUser(ctx context.Context, userID string, limit, offset int32) ([]db.ActivityLog, error) {
	return a.store.GetActivityLogsByUser(ctx, db.GetActivityLogsByUserParams{
		UserID: toNullUUID(userID),
		Limit:  limit,
		Offset: offset,
	})
}

func (a *ActivityLog) RecordRequest(ctx context.Context, params RequestLogParams) error {
	return a.store.CreateRequestLog(ctx, db.CreateRequestLogParams{
		RequestID:  params.RequestID,
		Method:     params.Method,
		Path:       params.Path,
		StatusCode: int32(params.StatusCode),
		DurationMs: params.Duration.Milliseconds(),
		UserID:     toNullUUID(params.UserID),
		IpAddress:  toInet(params.IPAddress),
		UserAgent:  toNullString(params.UserAgent),
		CreatedAt:  params.CreatedAt,
	})
}

func (a *ActivityLog) RecordError(ctx context.Context, params ErrorLogParams) error {
	return a.store.CreateErrorLog(ctx, db.CreateErrorLogParams{
		RequestID: params.RequestID,
		Level:     ErrorLevel(params.StatusCode),
		Message:   params.Message,
		Code:      strconv.Itoa(params.StatusCode),
		Endpoint:  params.Endpoint,
		Method:    params.Method,
		IpAddress: toInet(params.IPAddress),
		UserAgent: toNullString(params.UserAgent),
		CreatedAt: params.CreatedAt,
	})
}

// Dispatch runs fn on its own goroutine with a bounded context. Failures are
// logged at warn level and never reach the caller.
func (a *ActivityLog) Dispatch(kind string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			a.logger.WithFields(logrus.Fields{"kind": kind, "error": err.Error()}).Warn("Failed to persist log")
		}
	}()
}

// ErrorLevel maps a response status to the stored severity.
func ErrorLevel(status int) string {
	switch {
	case status >= 500:
		return "critical"
	case status >= 400:
		return "error"
	default:
		return "warning"
	}
}

// Helper functions
func toNullUUID(id string) uuid.NullUUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: parsed, Valid: true}
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toInet(ip string) pqtype.Inet {
	if ip == "" {
		return pqtype.Inet{Valid: false}
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return pqtype.Inet{Valid: false}
	}

	bits := 128
	if parsed.To4() != nil {
		parsed = parsed.To4()
		bits = 32
	}
	return pqtype.Inet{
		IPNet: net.IPNet{IP: parsed, Mask: net.CIDRMask(bits, bits)},
		Valid: true,
	}
}
