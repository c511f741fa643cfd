package controllers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"mavericks/backend/config"
	"mavericks/backend/engagement"
	"mavericks/backend/middleware"
	"mavericks/backend/models"
	"mavericks/backend/tracker"
	"mavericks/backend/utils"
)

type ActivityController struct {
	Tracker *tracker.Tracker
	Engine  *engagement.Engine
	Cfg     *config.Config
}

func NewActivityController(t *tracker.Tracker, e *engagement.Engine, cfg *config.Config) *ActivityController {
	return &ActivityController{Tracker: t, Engine: e, Cfg: cfg}
}

type logActivityRequest struct {
	ActivityType string                 `json:"activity_type"`
	Details      map[string]interface{} `json:"details"`
}

// LogActivity godoc
// @Summary Log a user activity
// @Description Appends one activity event for the authenticated user
// @Tags activity
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /activity [post]
func (ac *ActivityController) LogActivity(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req logActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if req.ActivityType == "" {
		return utils.BadRequest(c, "activity_type is required")
	}

	activityType := models.ActivityType(req.ActivityType)
	event, err := ac.Tracker.LogActivity(userID, activityType, decodeDetails(activityType, req.Details))
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, event)
}

// GetUserActivities возвращает последние события пользователя
func (ac *ActivityController) GetUserActivities(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	limit := c.QueryInt("limit", 50)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user_id":    userID,
		"activities": ac.Tracker.GetUserActivities(userID, limit),
	})
}

// GetUserProfile godoc
// @Summary Get user profile
// @Description Returns the aggregated profile of the authenticated user
// @Tags activity
// @Produce json
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (ac *ActivityController) GetUserProfile(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	profile, err := ac.Tracker.GetUserProfile(userID)
	if err != nil {
		if errors.Is(err, tracker.ErrProfileNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Failed to load profile")
	}
	return utils.Success(c, fiber.StatusOK, profile)
}

// GetUserStats возвращает метрики вовлеченности пользователя
func (ac *ActivityController) GetUserStats(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	events := ac.Tracker.GetUserActivities(userID, 0)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user_id":            userID,
		"engagement_score":   ac.Engine.Score(events),
		"learning_streak":    ac.Engine.Streak(events),
		"time_spent_minutes": ac.Engine.TimeSpentMinutes(events),
		"completion_rate":    ac.Engine.CompletionRate(events),
		"is_active_24h":      ac.Engine.IsActive24h(events),
		"is_active_7d":       ac.Engine.IsActive7d(events),
	})
}

// LogResumeUpload принимает навыки, извлеченные парсером резюме
func (ac *ActivityController) LogResumeUpload(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var payload models.ResumeUploadPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	event, err := ac.Tracker.LogActivity(userID, models.ActivityResumeUpload, payload)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}
	return utils.Created(c, event)
}

// decodeDetails maps a loose details object onto the typed payload for the
// activity type. Unknown types, and details that do not fit, fall back to
// the generic payload so logging never fails.
func decodeDetails(activityType models.ActivityType, details map[string]interface{}) models.Payload {
	if len(details) == 0 {
		return nil
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return models.GenericPayload(details)
	}

	var typed models.Payload
	switch activityType {
	case models.ActivityResumeUpload:
		var p models.ResumeUploadPayload
		if json.Unmarshal(raw, &p) == nil {
			typed = p
		}
	case models.ActivityAssessmentCompleted:
		var p models.AssessmentPayload
		if json.Unmarshal(raw, &p) == nil {
			typed = p
		}
	case models.ActivityMentorSession:
		var p models.MentorSessionPayload
		if json.Unmarshal(raw, &p) == nil {
			typed = p
		}
	case models.ActivityModuleCompleted, models.ActivityLearningModuleCompleted:
		var p models.ModuleCompletedPayload
		if json.Unmarshal(raw, &p) == nil {
			typed = p
		}
	case models.ActivityLearningSession:
		var p models.LearningSessionPayload
		if json.Unmarshal(raw, &p) == nil {
			typed = p
		}
	case models.ActivityHackathonApplied, models.ActivityHackathonSubmitted:
		var p models.HackathonPayload
		if json.Unmarshal(raw, &p) == nil {
			typed = p
		}
	}
	if typed == nil {
		return models.GenericPayload(details)
	}
	return typed
}
