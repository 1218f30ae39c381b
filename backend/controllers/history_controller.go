package controllers

import (
	"log"

	"smartedu/backend/catalog"
	"smartedu/backend/config"
	"smartedu/backend/middleware"
	"smartedu/backend/stores"
	"smartedu/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type HistoryController struct {
	Storage stores.Storage
	Cfg     *config.Config
	Logger  *log.Logger
}

func NewHistoryController(storage stores.Storage, cfg *config.Config, logger *log.Logger) *HistoryController {
	return &HistoryController{Storage: storage, Cfg: cfg, Logger: logger}
}

func (hc *HistoryController) open(c *fiber.Ctx) *stores.History {
	return stores.OpenHistory(hc.Storage, hc.Logger, middleware.SessionID(c), hc.Cfg.HistoryLimit)
}

// [+] GetHistory godoc
// @Summary View history of the session, most recent first
// @Tags history
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /history [get]
func (hc *HistoryController) GetHistory(c *fiber.Ctx) error {
	history := hc.open(c)

	return c.JSON(fiber.Map{
		"history": history.Items(),
		"count":   history.Count(),
	})
}

// [+] RecordView godoc
// @Summary Record a course view
// @Description A repeated view moves the entry to the front with a fresh timestamp
// @Tags history
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /history [post]
func (hc *HistoryController) RecordView(c *fiber.Ctx) error {
	var input struct {
		CourseID string `json:"course_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, ok := catalog.ByID(input.CourseID)
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	history := hc.open(c)
	history.Add(course)

	return c.JSON(fiber.Map{
		"message": "View recorded",
		"count":   history.Count(),
	})
}

// [+] RemoveFromHistory godoc
// @Summary Remove a course from view history
// @Tags history
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /history/{id} [delete]
func (hc *HistoryController) RemoveFromHistory(c *fiber.Ctx) error {
	history := hc.open(c)

	if !history.Remove(c.Params("id")) {
		return utils.NotFound(c, "Course not in history")
	}

	return c.JSON(fiber.Map{
		"message": "Course removed from history",
		"count":   history.Count(),
	})
}

// [+] ClearHistory godoc
// @Summary Clear the view history of the session
// @Tags history
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /history [delete]
func (hc *HistoryController) ClearHistory(c *fiber.Ctx) error {
	history := hc.open(c)
	history.Clear()

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "History cleared",
	})
}
