package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mavericks/backend/analyzer"
	"mavericks/backend/config"
	"mavericks/backend/mentor"
	"mavericks/backend/middleware"
	"mavericks/backend/models"
	"mavericks/backend/pathprogress"
	"mavericks/backend/tracker"
	"mavericks/backend/utils"
)

// Столько завершенных модулей закрывает навык
const modulesPerSkill = 3

type RecommendController struct {
	Tracker *tracker.Tracker
	Cfg     *config.Config
}

func NewRecommendController(t *tracker.Tracker, cfg *config.Config) *RecommendController {
	return &RecommendController{Tracker: t, Cfg: cfg}
}

type learningPathRequest struct {
	Scores map[string]float64 `json:"scores"`
	Goals  []string           `json:"goals"`
}

// GenerateLearningPath godoc
// @Summary Generate a learning path
// @Description Builds a path from the user's weak and medium skills and logs it
// @Tags recommend
// @Accept json
// @Produce json
// @Success 200 {object} models.LearningPath
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /recommend/learning-path [post]
func (rc *RecommendController) GenerateLearningPath(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req learningPathRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	classification := analyzer.AnalyzeSkillStrengths(req.Scores)
	path := mentor.GenerateLearningPath(userID, classification.WeakSkills, classification.MediumSkills, time.Now())
	path.Goals = req.Goals

	event, err := rc.Tracker.LogActivity(userID, models.ActivityLearningPathGenerated, models.PathGeneratedPayload{
		PathID:  path.PathID,
		Skills:  path.Skills,
		Goals:   path.Goals,
		Modules: path.Modules,
	})
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"learning_path": path,
		"activity_id":   event.ID,
	})
}

// CompleteModule godoc
// @Summary Complete a learning module
// @Description Logs a module completion and checks for skill completion
// @Tags recommend
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /recommend/module/complete [post]
func (rc *RecommendController) CompleteModule(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var payload models.ModuleCompletedPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if payload.ModuleID == "" {
		return utils.BadRequest(c, "module_id is required")
	}

	event, err := rc.Tracker.LogActivity(userID, models.ActivityModuleCompleted, payload)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	// После трех модулей по навыку фиксируем его завершение
	if payload.Skill != "" {
		completed := 0
		for _, activity := range rc.Tracker.GetUserActivities(userID, 0) {
			if activity.Type != models.ActivityModuleCompleted {
				continue
			}
			if p, ok := activity.Payload.(models.ModuleCompletedPayload); ok && p.Skill == payload.Skill {
				completed++
			}
		}
		if completed == modulesPerSkill {
			rc.Tracker.LogActivity(userID, models.ActivitySkillCompleted, models.GenericPayload{
				"skill":             payload.Skill,
				"modules_completed": completed,
			})
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message":     "Module completed",
		"activity_id": event.ID,
	})
}

// GetPathProgress возвращает прогресс по последнему учебному плану
func (rc *RecommendController) GetPathProgress(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	events := rc.Tracker.GetUserActivities(userID, 0)
	// Progress ожидает порядок добавления, а GetUserActivities отдает
	// новые события первыми
	reverse(events)

	progress, ok := pathprogress.Progress(events)
	if !ok {
		return utils.NotFound(c, "No learning path generated yet")
	}
	return utils.Success(c, fiber.StatusOK, progress)
}

// GetRecommendations собирает рекомендации из текущих навыков
func (rc *RecommendController) GetRecommendations(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	profile, err := rc.Tracker.GetUserProfile(userID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	history := rc.Tracker.AssessmentHistory(userID)
	var latest map[string]float64
	if len(history) > 0 {
		latest = history[len(history)-1].Scores
	}
	classification := analyzer.AnalyzeSkillStrengths(latest)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user_id":        userID,
		"current_skills": profile.SkillsSeen,
		"analysis":       classification,
		"narrative":      mentor.SkillNarrative(classification),
		"daily_tip":      mentor.DailyTip(profile.SkillsSeen),
	})
}

func reverse(events []models.ActivityEvent) {
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
}
