package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mavericks/backend/analytics"
	"mavericks/backend/config"
	"mavericks/backend/tracker"
	"mavericks/backend/utils"
)

type AdminController struct {
	Tracker  *tracker.Tracker
	Reporter *analytics.Reporter
	Cfg      *config.Config
}

func NewAdminController(t *tracker.Tracker, r *analytics.Reporter, cfg *config.Config) *AdminController {
	return &AdminController{Tracker: t, Reporter: r, Cfg: cfg}
}

// GetDashboard godoc
// @Summary Admin dashboard
// @Description Returns the full real-time dashboard report
// @Tags admin
// @Produce json
// @Success 200 {object} models.DashboardData
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/dashboard [get]
func (ac *AdminController) GetDashboard(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, ac.Reporter.DashboardData())
}

// GetUsers возвращает пользователей с их активностью
func (ac *AdminController) GetUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	return utils.Success(c, fiber.StatusOK, ac.Reporter.Users(limit, offset))
}

// GetAnalytics godoc
// @Summary Detailed analytics
// @Description Returns trends, retention and feature usage for a date range
// @Tags admin
// @Produce json
// @Param date_range query string false "1d, 7d, 30d or all"
// @Success 200 {object} models.DetailedAnalytics
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/analytics [get]
func (ac *AdminController) GetAnalytics(c *fiber.Ctx) error {
	dateRange := c.Query("date_range", "30d")
	return utils.Success(c, fiber.StatusOK, ac.Reporter.DetailedAnalytics(dateRange))
}

// GetAllActivities возвращает события всех пользователей
func (ac *AdminController) GetAllActivities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"activities": ac.Tracker.GetAllActivities(limit),
	})
}

// GetLeaderboard возвращает пользователей по убыванию вовлеченности
func (ac *AdminController) GetLeaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"leaderboard": ac.Reporter.Leaderboard(limit),
	})
}
