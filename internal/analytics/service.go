package analytics

import (
	"context"
	"fmt"

	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/store/models"
	"gorm.io/gorm"
)

// Summary aggregates the kiosk's usage for the admin dashboard.
type Summary struct {
	TotalUsers    int64            `json:"totalUsers"`
	TotalEvents   int64            `json:"totalEvents"`
	EventsByType  map[string]int64 `json:"eventsByType"`
	SignupsPerDay []DayCount       `json:"signupsPerDay"`
}

// DayCount is one calendar-day bucket.
type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// Service provides aggregate usage reports over the analytics collection.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
	ListByType(ctx context.Context, eventType string) ([]models.AnalyticsEvent, error)
}

type service struct {
	db   *gorm.DB
	repo *Repository
}

// NewService builds a reporting service over the embedded store.
func NewService(db *gorm.DB) (Service, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &service{db: db, repo: NewRepository(db)}, nil
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	out := &Summary{EventsByType: map[string]int64{}}

	db := s.db.WithContext(ctx)
	if err := db.Model(&models.User{}).Count(&out.TotalUsers).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count users")
	}
	if err := db.Model(&models.AnalyticsEvent{}).Count(&out.TotalEvents).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count events")
	}

	var byType []struct {
		EventType string
		Total     int64
	}
	err := db.Model(&models.AnalyticsEvent{}).
		Select("event_type, count(*) as total").
		Group("event_type").
		Scan(&byType).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "group events by type")
	}
	for _, row := range byType {
		out.EventsByType[row.EventType] = row.Total
	}

	var perDay []struct {
		Day   string
		Total int64
	}
	err = db.Model(&models.User{}).
		Select("date(created_at) as day, count(*) as total").
		Group("date(created_at)").
		Order("day ASC").
		Scan(&perDay).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "group signups per day")
	}
	for _, row := range perDay {
		out.SignupsPerDay = append(out.SignupsPerDay, DayCount{Day: row.Day, Count: row.Total})
	}

	return out, nil
}

func (s *service) ListByType(ctx context.Context, eventType string) ([]models.AnalyticsEvent, error) {
	return s.repo.ListByType(ctx, eventType)
}
