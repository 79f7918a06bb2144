package activitylogs

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	mu         sync.Mutex
	activities []db.CreateActivityLogParams
	requests   []db.CreateRequestLogParams
	errorLogs  []db.CreateErrorLogParams
	deletedAt  []time.Time
	err        error
}

func (r *recordingStore) CreateActivityLog(ctx context.Context, arg db.CreateActivityLogParams) (db.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, arg)
	return db.ActivityLog{Type: arg.Type}, r.err
}

func (r *recordingStore) GetActivityLogsByUser(ctx context.Context, arg db.GetActivityLogsByUserParams) ([]db.ActivityLog, error) {
	return []db.ActivityLog{}, r.err
}

func (r *recordingStore) CreateRequestLog(ctx context.Context, arg db.CreateRequestLogParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, arg)
	return r.err
}

func (r *recordingStore) CreateErrorLog(ctx context.Context, arg db.CreateErrorLogParams) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errorLogs = append(r.errorLogs, arg)
	return r.err
}

func (r *recordingStore) DeleteActivityLogsBefore(ctx context.Context, createdAt time.Time) (int64, error) {
	r.deletedAt = append(r.deletedAt, createdAt)
	return 1, r.err
}

func (r *recordingStore) DeleteRequestLogsBefore(ctx context.Context, createdAt time.Time) (int64, error) {
	r.deletedAt = append(r.deletedAt, createdAt)
	return 2, r.err
}

func (r *recordingStore) DeleteErrorLogsBefore(ctx context.Context, createdAt time.Time) (int64, error) {
	r.deletedAt = append(r.deletedAt, createdAt)
	return 3, r.err
}

func TestResolveActivity(t *testing.T) {
	testCases := []struct {
		method string
		path   string
		kind   string
		ok     bool
	}{
		{http.MethodPost, "/auth/login", "login", true},
		{http.MethodPost, "/api/v1/cards/virtual", "card_created", true},
		{http.MethodGet, "/api/v1/cards/virtual", "", false},
		{http.MethodPost, "/api/v1/cards/abc/freeze", "card_frozen", true},
		{http.MethodPost, "/api/v1/cards/abc/unfreeze", "card_unfrozen", true},
		{http.MethodPost, "/api/v1/cards/abc/report-lost", "card_reported_lost", true},
		{http.MethodPatch, "/api/v1/user", "profile_updated", true},
		{http.MethodGet, "/api/v1/user", "", false},
		{http.MethodPost, "/api/v1/kyc/answers", "kyc_submitted", true},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			a, ok := ResolveActivity(tc.method, tc.path, "")
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.kind, a.Type)
		})
	}
}

func TestResolveWebhookActivity(t *testing.T) {
	a, ok := ResolveActivity(http.MethodPost, "/api/v1/webhooks", "https://hooks.example.com")
	require.True(t, ok)
	require.Equal(t, "Webhook created for https://hooks.example.com", a.Description)

	a, _ = ResolveActivity(http.MethodPost, "/api/v1/webhooks", "")
	require.Equal(t, "Webhook created for endpoint", a.Description)
}

func TestCreateConvertsColumns(t *testing.T) {
	store := &recordingStore{}
	svc := NewActivityLog(store, logging.NewTestLogger())
	userID := uuid.NewString()

	_, err := svc.Create(context.Background(), CreateActivityLogParams{
		UserID:    userID,
		Activity:  Activity{Type: "login", Title: "Logged in"},
		Method:    http.MethodPost,
		Endpoint:  "/auth/login",
		IPAddress: "10.0.0.7",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	got := store.activities[0]
	require.True(t, got.UserID.Valid)
	require.Equal(t, userID, got.UserID.UUID.String())
	require.True(t, got.IpAddress.Valid)
	require.Equal(t, "10.0.0.7", got.IpAddress.IPNet.IP.String())
	require.False(t, got.UserAgent.Valid)
}

func TestRecordErrorLevels(t *testing.T) {
	store := &recordingStore{}
	svc := NewActivityLog(store, logging.NewTestLogger())

	require.NoError(t, svc.RecordError(context.Background(), ErrorLogParams{StatusCode: 502, IPAddress: "not-an-ip"}))
	require.NoError(t, svc.RecordError(context.Background(), ErrorLogParams{StatusCode: 404}))

	require.Equal(t, "critical", store.errorLogs[0].Level)
	require.Equal(t, "502", store.errorLogs[0].Code)
	require.False(t, store.errorLogs[0].IpAddress.Valid)
	require.Equal(t, "error", store.errorLogs[1].Level)
}

func TestDispatchSwallowsErrors(t *testing.T) {
	store := &recordingStore{err: errors.New("db down")}
	svc := NewActivityLog(store, logging.NewTestLogger())

	done := make(chan bool, 1)
	svc.Dispatch("request", func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		done <- hasDeadline
		return svc.RecordRequest(ctx, RequestLogParams{RequestID: "r1", StatusCode: 200})
	})

	select {
	case hasDeadline := <-done:
		require.True(t, hasDeadline)
	case <-time.After(time.Second):
		t.Fatal("dispatch did not run")
	}
}

func TestCleanupUsesRetentionWindow(t *testing.T) {
	store := &recordingStore{}
	svc := NewActivityLog(store, logging.NewTestLogger())

	before := time.Now()
	require.NoError(t, svc.Cleanup(RetentionFromDays(30))(context.Background()))
	require.Len(t, store.deletedAt, 3)

	expected := before.Add(-30 * 24 * time.Hour)
	require.WithinDuration(t, expected, store.deletedAt[0], time.Second)
	require.Equal(t, 90*24*time.Hour, RetentionFromDays(0))
}
