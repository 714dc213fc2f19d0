package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Each test gets its own named in-memory database so nothing leaks between
// tests while gorm's pool holds more than one connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) string {
	t.Helper()
	session := uuid.NewString()
	user := &models.User{
		ID:        uuid.NewString(),
		SessionID: &session,
		Name:      "Test User",
		Email:     uuid.NewString() + "@example.com",
	}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

func TestMealCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	userID := seedUser(t, db)
	ctx := context.Background()

	date := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	require.NoError(t, svc.Create(ctx, userID, "Lunch", "rice and beans", true, date))

	meals, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, meals, 1)

	got, err := svc.Get(ctx, userID, meals[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", got.Name)
	assert.Equal(t, "rice and beans", got.Description)
	assert.True(t, got.IsOnDiet)
	assert.Equal(t, date.UnixMilli(), got.Date)
	assert.Equal(t, userID, got.UserID)
}

func TestMealListOrdersByDateDescending(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	userID := seedUser(t, db)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Create(ctx, userID, "oldest", "", true, base))
	require.NoError(t, svc.Create(ctx, userID, "newest", "", false, base.Add(48*time.Hour)))
	require.NoError(t, svc.Create(ctx, userID, "middle", "", true, base.Add(24*time.Hour)))

	meals, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, meals, 3)
	assert.Equal(t, "newest", meals[0].Name)
	assert.Equal(t, "middle", meals[1].Name)
	assert.Equal(t, "oldest", meals[2].Name)
}

func TestMealListTieBreakIsStable(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	userID := seedUser(t, db)
	ctx := context.Background()

	date := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Create(ctx, userID, fmt.Sprintf("meal-%d", i), "", true, date))
	}

	first, err := svc.List(ctx, userID)
	require.NoError(t, err)
	second, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMealUpdateReplacesAllFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	userID := seedUser(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, userID, "before", "old", true, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	meals, err := svc.List(ctx, userID)
	require.NoError(t, err)

	newDate := time.Date(2024, 6, 15, 19, 0, 0, 0, time.UTC)
	require.NoError(t, svc.Update(ctx, userID, meals[0].ID, "after", "new", false, newDate))

	got, err := svc.Get(ctx, userID, meals[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, "new", got.Description)
	assert.False(t, got.IsOnDiet)
	assert.Equal(t, newDate.UnixMilli(), got.Date)
}

func TestMealUpdateMissingReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	userID := seedUser(t, db)

	err := svc.Update(context.Background(), userID, uuid.NewString(), "x", "y", true, time.Now())
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestMealDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	userID := seedUser(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, userID, "gone", "", true, time.Now()))
	meals, err := svc.List(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userID, meals[0].ID))

	_, err = svc.Get(ctx, userID, meals[0].ID)
	assert.ErrorIs(t, err, ErrMealNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, userID, meals[0].ID), ErrMealNotFound)
}

func TestMealOperationsAreOwnerScoped(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	owner := seedUser(t, db)
	intruder := seedUser(t, db)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, owner, "mine", "private", true, time.Now()))
	meals, err := svc.List(ctx, owner)
	require.NoError(t, err)
	mealID := meals[0].ID

	_, err = svc.Get(ctx, intruder, mealID)
	assert.ErrorIs(t, err, ErrMealNotFound)
	assert.ErrorIs(t, svc.Update(ctx, intruder, mealID, "stolen", "", false, time.Now()), ErrMealNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, intruder, mealID), ErrMealNotFound)

	others, err := svc.List(ctx, intruder)
	require.NoError(t, err)
	assert.Empty(t, others)

	// untouched for the owner
	got, err := svc.Get(ctx, owner, mealID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Name)
}
