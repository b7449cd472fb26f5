package activity

import (
	"context"

	"github.com/mfigueira/counseldesk/pkg/logger"
	"github.com/mfigueira/counseldesk/pkg/store/models"
)

type activityAppender interface {
	Append(ctx context.Context, userID uint, activityType, description string) (*models.Activity, error)
}

type analyticsAppender interface {
	Append(ctx context.Context, eventType string, data models.Attributes) (*models.AnalyticsEvent, error)
}

// Recorder is the best-effort telemetry surface handed to feature
// collaborators. Write failures are logged and swallowed: a feature action
// must render even when its telemetry write fails.
type Recorder struct {
	activities activityAppender
	analytics  analyticsAppender
	logg       *logger.Logger
}

// NewRecorder builds a recorder over the two append-only collections.
func NewRecorder(activities activityAppender, analytics analyticsAppender, logg *logger.Logger) *Recorder {
	return &Recorder{activities: activities, analytics: analytics, logg: logg}
}

// RecordActivity appends one activity, fire-and-forget.
func (r *Recorder) RecordActivity(ctx context.Context, userID uint, activityType, description string) {
	if _, err := r.activities.Append(ctx, userID, activityType, description); err != nil {
		r.warn(ctx, "activity write dropped", err)
	}
}

// RecordAnalytics appends one analytics event, fire-and-forget.
func (r *Recorder) RecordAnalytics(ctx context.Context, eventType string, data models.Attributes) {
	if _, err := r.analytics.Append(ctx, eventType, data); err != nil {
		r.warn(ctx, "analytics write dropped", err)
	}
}

func (r *Recorder) warn(ctx context.Context, msg string, err error) {
	if r.logg == nil {
		return
	}
	r.logg.Warn(r.logg.WithField(ctx, "error", err.Error()), msg)
}
