package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mavericks/backend/config"
	"mavericks/backend/mentor"
	"mavericks/backend/middleware"
	"mavericks/backend/models"
	"mavericks/backend/tracker"
	"mavericks/backend/utils"
)

type MentorController struct {
	Tracker *tracker.Tracker
	Cfg     *config.Config
}

func NewMentorController(t *tracker.Tracker, cfg *config.Config) *MentorController {
	return &MentorController{Tracker: t, Cfg: cfg}
}

// LogSession фиксирует сессию с ментором
func (mc *MentorController) LogSession(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var payload models.MentorSessionPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	event, err := mc.Tracker.LogMentorSession(userID, payload)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, event)
}

// AskQuestion фиксирует вопрос к ментору
func (mc *MentorController) AskQuestion(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req struct {
		Question string `json:"question"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	event, err := mc.Tracker.LogActivity(userID, models.ActivityMentorQuestion, models.GenericPayload{
		"question": req.Question,
	})
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, event)
}

// DailyTip godoc
// @Summary Get a daily learning tip
// @Description Returns a deterministic tip based on the user's known skills
// @Tags mentor
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /mentor/daily-tip [get]
func (mc *MentorController) DailyTip(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var skills []string
	if profile, err := mc.Tracker.GetUserProfile(userID); err == nil {
		skills = profile.SkillsSeen
	}
	tip := mentor.DailyTip(skills)

	mc.Tracker.LogActivity(userID, models.ActivityDailyTipRequested, nil)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user_id": userID,
		"tip":     tip,
	})
}
