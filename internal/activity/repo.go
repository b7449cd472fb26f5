package activity

import (
	"context"

	pkgerrors "github.com/mfigueira/counseldesk/pkg/errors"
	"github.com/mfigueira/counseldesk/pkg/store/models"
	"gorm.io/gorm"
)

// Repository persists the append-only activity trail.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an activity repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append inserts one activity stamped at call time. The userId reference is
// not checked against the users collection.
func (r *Repository) Append(ctx context.Context, userID uint, activityType, description string) (*models.Activity, error) {
	record := &models.Activity{
		UserID:      userID,
		Type:        activityType,
		Description: description,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "append activity")
	}
	return record, nil
}

// ListForUser returns the activities referencing the given user id, newest
// first.
func (r *Repository) ListForUser(ctx context.Context, userID uint) ([]models.Activity, error) {
	var records []models.Activity
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list activities")
	}
	return records, nil
}
