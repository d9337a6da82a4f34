package routes

import (
	"log"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/config"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/controllers"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/middlewares"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
		push = nil
	}

	vision, err := services.NewVisionService()
	if err != nil {
		log.Fatalf("vision service init failed: %v", err)
	}
	nutrition := services.NewNutritionService()

	mealSvc := services.NewMealService(hub, push)
	dashSvc := services.NewDashboardService(mealSvc)

	meals := controllers.NewMealController(mealSvc)
	history := controllers.NewHistoryController(mealSvc)
	dashboard := controllers.NewDashboardController(dashSvc)
	analyze := controllers.NewAnalyzeController(vision, nutrition)
	realtime := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Everything else requires a bearer token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)

		api.POST("/meals", meals.LogMeal)
		api.GET("/meals", meals.ListMeals)
		api.GET("/meals/:id", meals.GetMeal)
		api.PUT("/meals/:id", meals.UpdateMeal)
		api.DELETE("/meals/:id", meals.DeleteMeal)

		api.GET("/history", history.GetHistory)
		api.GET("/dashboard", dashboard.GetDashboard)
		api.GET("/streak", controllers.GetStreak)

		api.POST("/analyze", analyze.AnalyzePhoto)

		if push != nil {
			devices := controllers.NewDeviceController(push)
			api.POST("/devices", devices.RegisterDevice)
		}

		api.GET("/ws/progress", realtime.ProgressWS)
	}

	return r
}
