package routes

import (
	"github.com/gofiber/fiber/v2"

	"mavericks/backend/analytics"
	"mavericks/backend/config"
	"mavericks/backend/controllers"
	"mavericks/backend/engagement"
	"mavericks/backend/middleware"
	"mavericks/backend/tracker"
)

func SetupRoutes(app *fiber.App, t *tracker.Tracker, engine *engagement.Engine, reporter *analytics.Reporter, cfg *config.Config) {
	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg)

	// Activity routes
	activityController := controllers.NewActivityController(t, engine, cfg)
	activity := app.Group("/api/activity", authMiddleware)
	activity.Post("/", activityController.LogActivity)
	activity.Get("/", activityController.GetUserActivities)
	activity.Post("/resume", activityController.LogResumeUpload)

	app.Get("/api/user/profile", authMiddleware, activityController.GetUserProfile)
	app.Get("/api/user/stats", authMiddleware, activityController.GetUserStats)

	// Assessment routes
	assessmentController := controllers.NewAssessmentController(t, cfg)
	assessment := app.Group("/api/assessment", authMiddleware)
	assessment.Post("/submit", assessmentController.SubmitAssessment)
	assessment.Post("/analyze", assessmentController.AnalyzeSkills)
	assessment.Get("/history", assessmentController.GetAssessmentHistory)
	assessment.Get("/progress", assessmentController.GetSkillProgress)

	// Recommendation routes
	recommendController := controllers.NewRecommendController(t, cfg)
	recommend := app.Group("/api/recommend", authMiddleware)
	recommend.Post("/learning-path", recommendController.GenerateLearningPath)
	recommend.Post("/module/complete", recommendController.CompleteModule)
	recommend.Get("/progress", recommendController.GetPathProgress)
	recommend.Get("/recommendations", recommendController.GetRecommendations)

	// Mentor routes
	mentorController := controllers.NewMentorController(t, cfg)
	mentorGroup := app.Group("/api/mentor", authMiddleware)
	mentorGroup.Post("/session", mentorController.LogSession)
	mentorGroup.Post("/question", mentorController.AskQuestion)
	mentorGroup.Get("/daily-tip", mentorController.DailyTip)

	// Hackathon routes
	hackathonController := controllers.NewHackathonController(t, cfg)
	hackathon := app.Group("/api/hackathon", authMiddleware)
	hackathon.Post("/apply", hackathonController.Apply)
	hackathon.Post("/submit", hackathonController.SubmitProject)

	// Admin routes
	adminController := controllers.NewAdminController(t, reporter, cfg)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/dashboard", adminController.GetDashboard)
	admin.Get("/users", adminController.GetUsers)
	admin.Get("/analytics", adminController.GetAnalytics)
	admin.Get("/activities", adminController.GetAllActivities)
	admin.Get("/leaderboard", adminController.GetLeaderboard)
}
