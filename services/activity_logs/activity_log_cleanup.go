package activitylogs

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const CleanupInterval = 24 * time.Hour

// Cleanup deletes activity, request and error logs older than the retention window.
func (a *ActivityLog) Cleanup(retention time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		threshold := time.Now().Add(-retention)

		activities, err := a.store.DeleteActivityLogsBefore(ctx, threshold)
		if err != nil {
			return fmt.Errorf("delete activity logs: %w", err)
		}
		requests, err := a.store.DeleteRequestLogsBefore(ctx, threshold)
		if err != nil {
			return fmt.Errorf("delete request logs: %w", err)
		}
		errs, err := a.store.DeleteErrorLogsBefore(ctx, threshold)
		if err != nil {
			return fmt.Errorf("delete error logs: %w", err)
		}

		a.logger.WithFields(logrus.Fields{
			"activity_logs": activities,
			"request_logs":  requests,
			"error_logs":    errs,
			"threshold":     threshold.Format(time.RFC3339),
		}).Info("Old logs removed")
		return nil
	}
}

func RetentionFromDays(days int) time.Duration {
	if days <= 0 {
		days = 90
	}
	return time.Duration(days) * 24 * time.Hour
}
