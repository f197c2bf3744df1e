package routes

import (
	"github.com/carepoint/carepoint-api/internal/handlers"
	"github.com/carepoint/carepoint-api/internal/middleware"
	"github.com/carepoint/carepoint-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	// Public content
	healthInfo := api.Group("/health-info")
	healthInfo.Get("/articles/featured", handlers.GetFeaturedArticles)
	healthInfo.Get("/articles/latest", handlers.GetLatestArticles)
	healthInfo.Get("/articles/:slug", handlers.GetArticle)
	healthInfo.Get("/articles", handlers.GetArticles)
	healthInfo.Get("/privacy-policy", handlers.GetPrivacyPolicy)
	healthInfo.Get("/faqs", handlers.GetFAQs)
	healthInfo.Get("/public", handlers.GetPublicHealthInfo)
	api.Get("/wellness/health-tip", handlers.GetHealthTip)

	protected := api.Group("/", middleware.Protected())

	protected.Post("/auth/logout", handlers.Logout)
	protected.Get("/auth/me", handlers.GetMe)
	protected.Post("/auth/change-password", handlers.ChangePassword)

	protected.Get("/profile", handlers.GetProfile)
	protected.Patch("/profile", handlers.UpdateProfile)

	// Provider read-only projection of assigned patients
	provider := protected.Group("/provider", middleware.RequireRole(models.RoleProvider))
	provider.Get("/patients", handlers.GetMyPatients)
	provider.Get("/patients/:id", handlers.GetPatientDetail)

	wellness := protected.Group("/wellness")

	// Specific goal paths before the :id patterns
	wellness.Get("/goals/today", handlers.GetTodayGoals)
	wellness.Get("/goals/weekly", handlers.GetWeeklySummary)
	wellness.Get("/goals", handlers.GetGoals)
	wellness.Post("/goals", handlers.CreateGoal)
	wellness.Get("/goals/:id", handlers.GetGoal)
	wellness.Patch("/goals/:id", handlers.UpdateGoal)
	wellness.Delete("/goals/:id", handlers.DeleteGoal)
	wellness.Post("/goals/:id/log", handlers.LogGoalProgress)

	wellness.Get("/reminders/upcoming", handlers.GetUpcomingReminders)
	wellness.Get("/reminders", handlers.GetReminders)
	wellness.Post("/reminders", handlers.CreateReminder)
	wellness.Get("/reminders/:id", handlers.GetReminder)
	wellness.Patch("/reminders/:id", handlers.UpdateReminder)
	wellness.Delete("/reminders/:id", handlers.DeleteReminder)

	wellness.Get("/dashboard", handlers.GetDashboardSummary)
}
