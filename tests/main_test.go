package tests

import (
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"mavericks/backend/analytics"
	"mavericks/backend/config"
	"mavericks/backend/engagement"
	"mavericks/backend/routes"
	"mavericks/backend/store"
	"mavericks/backend/tracker"
	"mavericks/backend/utils"
)

var (
	app        *fiber.App
	cfg        *config.Config
	adminToken string
)

func TestMain(m *testing.M) {
	setup()
	os.Exit(m.Run())
}

func setup() {
	cfg = &config.Config{
		ServerPort:    "8080",
		JWTSecret:     "testsecret",
		AdminUser:     "admin",
		StorageDriver: "memory",
	}

	trk := tracker.New(store.NewMemoryStore())
	engine := engagement.NewEngine()
	reporter := analytics.NewReporter(trk, engine)

	app = fiber.New()
	routes.SetupRoutes(app, trk, engine, reporter, cfg)

	adminToken, _ = utils.GenerateJWTToken("admin", cfg)
}

// newUserToken выдает токен для нового пользователя, чтобы тесты не
// зависели друг от друга
func newUserToken() string {
	token, _ := utils.GenerateJWTToken("user-"+uuid.NewString(), cfg)
	return token
}

func TestAll(t *testing.T) {
	t.Run("Activity", TestActivityEndpoints)
	t.Run("Assessment", TestAssessmentEndpoints)
	t.Run("Recommend", TestRecommendEndpoints)
	t.Run("Admin", TestAdminEndpoints)
}

func TestActivityEndpoints(t *testing.T) {
	t.Run("LogActivity", TestLogActivity)
	t.Run("LogActivityValidation", TestLogActivityValidation)
	t.Run("GetUserActivities", TestGetUserActivities)
	t.Run("GetUserProfile", TestGetUserProfile)
	t.Run("GetUserStats", TestGetUserStats)
	t.Run("LogResumeUpload", TestLogResumeUpload)
}

func TestAssessmentEndpoints(t *testing.T) {
	t.Run("SubmitAssessment", TestSubmitAssessment)
	t.Run("AnalyzeSkills", TestAnalyzeSkills)
	t.Run("AssessmentHistory", TestAssessmentHistory)
	t.Run("SkillProgress", TestSkillProgress)
}

func TestRecommendEndpoints(t *testing.T) {
	t.Run("GenerateLearningPath", TestGenerateLearningPath)
	t.Run("PathProgress", TestPathProgress)
	t.Run("CompleteModuleValidation", TestCompleteModuleValidation)
	t.Run("DailyTip", TestDailyTip)
	t.Run("Hackathon", TestHackathon)
}

func TestAdminEndpoints(t *testing.T) {
	t.Run("Dashboard", TestAdminDashboard)
	t.Run("AccessControl", TestAdminAccessControl)
	t.Run("Users", TestAdminUsers)
	t.Run("Analytics", TestAdminAnalytics)
	t.Run("Leaderboard", TestAdminLeaderboard)
}
