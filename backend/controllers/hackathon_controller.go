package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mavericks/backend/config"
	"mavericks/backend/middleware"
	"mavericks/backend/models"
	"mavericks/backend/tracker"
	"mavericks/backend/utils"
)

type HackathonController struct {
	Tracker *tracker.Tracker
	Cfg     *config.Config
}

func NewHackathonController(t *tracker.Tracker, cfg *config.Config) *HackathonController {
	return &HackathonController{Tracker: t, Cfg: cfg}
}

// Apply фиксирует заявку на хакатон
func (hc *HackathonController) Apply(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var payload models.HackathonPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if payload.HackathonID == "" {
		return utils.BadRequest(c, "hackathon_id is required")
	}

	event, err := hc.Tracker.LogActivity(userID, models.ActivityHackathonApplied, payload)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, event)
}

// SubmitProject фиксирует сдачу проекта
func (hc *HackathonController) SubmitProject(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var payload models.HackathonPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if payload.HackathonID == "" || payload.ProjectName == "" {
		return utils.BadRequest(c, "hackathon_id and project_name are required")
	}

	event, err := hc.Tracker.LogActivity(userID, models.ActivityHackathonSubmitted, payload)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, event)
}
