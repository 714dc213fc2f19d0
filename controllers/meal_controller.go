package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

// Shared body for create and update; all four fields are required.
// IsOnDiet is a pointer so an explicit false still binds.
type MealInput struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	IsOnDiet    *bool     `json:"isOnDiet" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

func userIDFromCtx(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// mealIDParam rejects anything that is not UUID-shaped before the store is
// touched.
func mealIDParam(c *gin.Context) (string, bool) {
	raw := c.Param("meal_id")
	if _, err := uuid.Parse(raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Meal ID [%s] is not a valid UUID", raw)})
		return "", false
	}
	return raw, true
}

func (h *MealController) CreateMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body MealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.Create(c.Request.Context(), userID, body.Name, body.Description, *body.IsOnDiet, body.Date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusCreated)
}

func (h *MealController) ListMeals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	meals, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealController) GetMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	mealID, ok := mealIDParam(c)
	if !ok {
		return
	}

	meal, err := h.Svc.Get(c.Request.Context(), userID, mealID)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Meal ID [%s] not found", mealID)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealController) UpdateMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	mealID, ok := mealIDParam(c)
	if !ok {
		return
	}

	var body MealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.Svc.Update(c.Request.Context(), userID, mealID, body.Name, body.Description, *body.IsOnDiet, body.Date)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Meal ID [%s] not found", mealID)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	mealID, ok := mealIDParam(c)
	if !ok {
		return
	}

	err := h.Svc.Delete(c.Request.Context(), userID, mealID)
	if errors.Is(err, services.ErrMealNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Meal ID [%s] not found", mealID)})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
