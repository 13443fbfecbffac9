package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/magno-tech/exercise-tracker/internal/models"
)

// ExerciseRepository handles lookups and writes for exercise entries.
type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, entry *models.Exercise) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// FindByDescription returns any stored entry with the given description.
// The lookup is deliberately not scoped to a user, matching the duplicate
// check the API has always done.
func (r *ExerciseRepository) FindByDescription(ctx context.Context, description string) (*models.Exercise, error) {
	var entry models.Exercise
	if err := r.db.WithContext(ctx).Where("description = ?", description).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteByDescription removes at most one entry with the given description,
// regardless of owner. Deleting a missing description is not an error.
func (r *ExerciseRepository) DeleteByDescription(ctx context.Context, description string) error {
	db := r.db.WithContext(ctx)
	var entry models.Exercise
	err := db.Where("description = ?", description).First(&entry).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("find exercise: %w", err)
	}
	if err := db.Delete(&entry).Error; err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

// FindForUser returns the user's entries with date in [from, to), newest
// first with description as the tiebreak, capped at limit.
func (r *ExerciseRepository) FindForUser(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.Exercise, error) {
	var entries []models.Exercise
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date DESC, description ASC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	return entries, nil
}
