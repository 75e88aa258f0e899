package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/timeplan/backend/api/handler"
)

type Handlers struct {
	Auth      *apiHandler.AuthHandler
	Settings  *apiHandler.SettingsHandler
	Task      *apiHandler.TaskHandler
	Schedule  *apiHandler.ScheduleHandler
	Goal      *apiHandler.GoalHandler
	Analytics *apiHandler.AnalyticsHandler
	Tips      *apiHandler.TipsHandler
	Health    *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)

	// Protected routes
	r.GET("/api/v1/settings", authMiddleware(handlers.Settings.Get))
	r.PUT("/api/v1/settings", authMiddleware(handlers.Settings.Save))

	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.CreateTask))
	r.DELETE("/api/v1/tasks", authMiddleware(handlers.Task.ClearTasks))
	r.POST("/api/v1/tasks/template", authMiddleware(handlers.Task.ExpandTemplate))
	r.PUT("/api/v1/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))
	r.POST("/api/v1/tasks/{id}/toggle", authMiddleware(handlers.Task.ToggleTask))

	r.POST("/api/v1/schedule/generate", authMiddleware(handlers.Schedule.Generate))
	r.GET("/api/v1/schedule/{horizon}", authMiddleware(handlers.Schedule.Get))
	r.GET("/api/v1/schedule/{horizon}/export", authMiddleware(handlers.Schedule.Export))

	r.GET("/api/v1/goals", authMiddleware(handlers.Goal.GetGoals))
	r.POST("/api/v1/goals", authMiddleware(handlers.Goal.CreateGoal))
	r.PUT("/api/v1/goals/{id}/progress", authMiddleware(handlers.Goal.UpdateProgress))
	r.DELETE("/api/v1/goals/{id}", authMiddleware(handlers.Goal.DeleteGoal))
	r.GET("/api/v1/goals/{id}/recommendations", authMiddleware(handlers.Goal.Recommendations))

	r.GET("/api/v1/analytics", authMiddleware(handlers.Analytics.Get))
	r.GET("/api/v1/analytics/charts", authMiddleware(handlers.Analytics.Charts))

	r.GET("/api/v1/tips", authMiddleware(handlers.Tips.Get))

	return r
}
