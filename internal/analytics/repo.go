package analytics

import (
	"context"

	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/store/models"
	"gorm.io/gorm"
)

// Repository persists the append-only analytics event stream.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an analytics repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append inserts one event stamped at call time.
func (r *Repository) Append(ctx context.Context, eventType string, data models.Attributes) (*models.AnalyticsEvent, error) {
	if data == nil {
		data = models.Attributes{}
	}
	record := &models.AnalyticsEvent{
		Type: eventType,
		Data: data,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "append analytics event")
	}
	return record, nil
}

// ListByType returns all events carrying the given type, newest first.
func (r *Repository) ListByType(ctx context.Context, eventType string) ([]models.AnalyticsEvent, error) {
	var records []models.AnalyticsEvent
	err := r.db.WithContext(ctx).
		Where("event_type = ?", eventType).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list analytics events")
	}
	return records, nil
}
