package routes

import (
    "backend/controllers"
    "backend/middlewares"
    "backend/services"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
    r := gin.Default()

    userCtl := controllers.NewUserController(services.NewUserService(db))
    mealCtl := controllers.NewMealController(services.NewMealService(db))
    metricsCtl := controllers.NewMetricsController(services.NewMetricsService(db))

    // Public signup route
    r.POST("/users", userCtl.CreateUser)

    // Protected meal routes
    meals := r.Group("/meals")
    meals.Use(middlewares.SessionAuth(db))
    {
        meals.POST("", mealCtl.CreateMeal)
        meals.GET("", mealCtl.ListMeals)
        meals.GET("/metrics", metricsCtl.GetMetrics)
        meals.GET("/:meal_id", mealCtl.GetMeal)
        meals.PUT("/:meal_id", mealCtl.UpdateMeal)
        meals.DELETE("/:meal_id", mealCtl.DeleteMeal)
    }

    return r
}
