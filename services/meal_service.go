// services/meal_service.go
package services

import (
	"context"
	"errors"
	"time"

	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMealNotFound covers both a genuinely absent meal and one owned by
// another user; callers cannot tell the two apart.
var ErrMealNotFound = errors.New("meal not found")

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

func (s *MealService) Create(
	ctx context.Context,
	userID, name, description string,
	isOnDiet bool,
	date time.Time,
) error {
	meal := &models.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: description,
		IsOnDiet:    isOnDiet,
		Date:        date.UnixMilli(),
	}
	return s.db.WithContext(ctx).Create(meal).Error
}

// List returns the user's meals newest first. Ties on date fall back to id
// so the order is stable across queries.
func (s *MealService) List(ctx context.Context, userID string) ([]models.Meal, error) {
	meals := []models.Meal{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id ASC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Update overwrites all four mutable fields in one conditional statement.
// RowsAffected doubles as the existence check, so there is no window for a
// concurrent delete to slip into.
func (s *MealService) Update(
	ctx context.Context,
	userID, mealID, name, description string,
	isOnDiet bool,
	date time.Time,
) error {
	res := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(map[string]any{
			"name":        name,
			"description": description,
			"is_on_diet":  isOnDiet,
			"date":        date.UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

func (s *MealService) Delete(ctx context.Context, userID, mealID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}
