package services

import (
	"context"

	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Create inserts a user bound to the given session token. The token is the
// user's only credential from then on.
func (s *UserService) Create(ctx context.Context, name, email, sessionID string) (*models.User, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		SessionID: &sessionID,
		Name:      name,
		Email:     email,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
