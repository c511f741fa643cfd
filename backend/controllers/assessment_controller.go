package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mavericks/backend/analyzer"
	"mavericks/backend/config"
	"mavericks/backend/mentor"
	"mavericks/backend/middleware"
	"mavericks/backend/tracker"
	"mavericks/backend/utils"
)

type AssessmentController struct {
	Tracker *tracker.Tracker
	Cfg     *config.Config
}

func NewAssessmentController(t *tracker.Tracker, cfg *config.Config) *AssessmentController {
	return &AssessmentController{Tracker: t, Cfg: cfg}
}

type submitAssessmentRequest struct {
	Skills []string           `json:"skills"`
	Scores map[string]float64 `json:"scores"`
}

// SubmitAssessment godoc
// @Summary Submit assessment results
// @Description Logs the assessment, classifies the scores and returns the analysis
// @Tags assessment
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment/submit [post]
func (sc *AssessmentController) SubmitAssessment(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req submitAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	event, err := sc.Tracker.LogAssessmentResult(userID, req.Skills, req.Scores)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	classification := analyzer.AnalyzeSkillStrengths(req.Scores)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"activity":  event,
		"analysis":  classification,
		"narrative": mentor.SkillNarrative(classification),
	})
}

// AnalyzeSkills классифицирует переданные оценки без записи в журнал
func (sc *AssessmentController) AnalyzeSkills(c *fiber.Ctx) error {
	var req submitAssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	return utils.Success(c, fiber.StatusOK, analyzer.AnalyzeSkillStrengths(req.Scores))
}

// GetAssessmentHistory возвращает историю тестирований пользователя
func (sc *AssessmentController) GetAssessmentHistory(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	history := sc.Tracker.AssessmentHistory(userID)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user_id":           userID,
		"total_assessments": len(history),
		"history":           history,
	})
}

// GetSkillProgress godoc
// @Summary Get skill progress
// @Description Compares the user's first and latest assessment
// @Tags assessment
// @Produce json
// @Success 200 {object} models.ProgressDelta
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /assessment/progress [get]
func (sc *AssessmentController) GetSkillProgress(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	history := sc.Tracker.AssessmentHistory(userID)
	if len(history) < 2 {
		return utils.UnprocessableEntity(c, "Insufficient data for progress tracking")
	}

	initial := history[0].Scores
	current := history[len(history)-1].Scores
	delta, err := analyzer.TrackSkillProgress(userID, initial, current)
	if err != nil {
		if errors.Is(err, analyzer.ErrInsufficientData) {
			return utils.UnprocessableEntity(c, "Insufficient data for progress tracking")
		}
		return utils.InternalServerError(c, "Failed to track progress")
	}
	return utils.Success(c, fiber.StatusOK, delta)
}
