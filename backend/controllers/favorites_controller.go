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

type FavoritesController struct {
	Storage stores.Storage
	Cfg     *config.Config
	Logger  *log.Logger
}

func NewFavoritesController(storage stores.Storage, cfg *config.Config, logger *log.Logger) *FavoritesController {
	return &FavoritesController{Storage: storage, Cfg: cfg, Logger: logger}
}

func (fc *FavoritesController) open(c *fiber.Ctx) *stores.Favorites {
	return stores.OpenFavorites(fc.Storage, fc.Logger, middleware.SessionID(c))
}

// [+] GetFavorites godoc
// @Summary List favorite courses of the session
// @Tags favorites
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /favorites [get]
func (fc *FavoritesController) GetFavorites(c *fiber.Ctx) error {
	favorites := fc.open(c)

	return c.JSON(fiber.Map{
		"favorites": favorites.Items(),
		"count":     favorites.Count(),
	})
}

// [+] AddFavorite godoc
// @Summary Add a course to favorites
// @Description Adding an already favorited course is a no-op
// @Tags favorites
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /favorites [post]
func (fc *FavoritesController) AddFavorite(c *fiber.Ctx) error {
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

	favorites := fc.open(c)
	added := favorites.Add(course)

	return c.JSON(fiber.Map{
		"added": added,
		"count": favorites.Count(),
	})
}

// [+] ToggleFavorite godoc
// @Summary Toggle a course in favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /favorites/toggle [post]
func (fc *FavoritesController) ToggleFavorite(c *fiber.Ctx) error {
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

	favorites := fc.open(c)
	favorite := favorites.Toggle(course)

	return c.JSON(fiber.Map{
		"favorite": favorite,
		"count":    favorites.Count(),
	})
}

// [+] RemoveFavorite godoc
// @Summary Remove a course from favorites
// @Tags favorites
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /favorites/{id} [delete]
func (fc *FavoritesController) RemoveFavorite(c *fiber.Ctx) error {
	favorites := fc.open(c)

	if !favorites.Remove(c.Params("id")) {
		return utils.NotFound(c, "Course not in favorites")
	}

	return c.JSON(fiber.Map{
		"message": "Course removed from favorites",
		"count":   favorites.Count(),
	})
}

// [+] RemoveSelectedFavorites godoc
// @Summary Remove several courses from favorites at once
// @Tags favorites
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /favorites/bulk-remove [post]
func (fc *FavoritesController) RemoveSelectedFavorites(c *fiber.Ctx) error {
	var input struct {
		CourseIDs []string `json:"course_ids"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	favorites := fc.open(c)
	removed := favorites.RemoveMany(input.CourseIDs)

	return c.JSON(fiber.Map{
		"removed": removed,
		"count":   favorites.Count(),
	})
}

// [+] ClearFavorites godoc
// @Summary Remove all favorites of the session
// @Tags favorites
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /favorites [delete]
func (fc *FavoritesController) ClearFavorites(c *fiber.Ctx) error {
	favorites := fc.open(c)
	favorites.Clear()

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Favorites cleared",
	})
}
