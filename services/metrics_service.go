package services

import (
	"context"

	"backend/models"

	"gorm.io/gorm"
)

type MetricsService struct{ db *gorm.DB }

func NewMetricsService(db *gorm.DB) *MetricsService { return &MetricsService{db: db} }

type MealMetrics struct {
	TotalMeals         int   `json:"totalMeals"`
	TotalMealsOnDiet   int64 `json:"totalMealsOnDiet"`
	TotalMealsOffDiet  int64 `json:"totalMealsOffDiet"`
	BestOnDietSequence int   `json:"bestOnDietSequence"`
}

// Summary recomputes everything from the meals table on every call; nothing
// is cached.
func (s *MetricsService) Summary(ctx context.Context, userID string) (*MealMetrics, error) {
	var onDiet, offDiet int64

	if err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("user_id = ? AND is_on_diet = ?", userID, true).
		Count(&onDiet).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("user_id = ? AND is_on_diet = ?", userID, false).
		Count(&offDiet).Error; err != nil {
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	// Longest run of on-diet meals over the date-ordered rows. A contiguous
	// run is the same length whichever direction you walk it, so scanning
	// the descending order is fine.
	best, current := 0, 0
	for _, m := range meals {
		if m.IsOnDiet {
			current++
		} else {
			current = 0
		}
		if current > best {
			best = current
		}
	}

	return &MealMetrics{
		TotalMeals:         len(meals),
		TotalMealsOnDiet:   onDiet,
		TotalMealsOffDiet:  offDiet,
		BestOnDietSequence: best,
	}, nil
}
