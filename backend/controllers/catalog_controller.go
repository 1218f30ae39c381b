package controllers

import (
	"smartedu/backend/catalog"
	"smartedu/backend/config"
	"smartedu/backend/services"
	"smartedu/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CatalogController struct {
	Cfg *config.Config
}

func NewCatalogController(cfg *config.Config) *CatalogController {
	return &CatalogController{Cfg: cfg}
}

// [+] GetCourses godoc
// @Summary List catalog courses
// @Description Courses filtered by search text, category and price range, sorted and paginated
// @Tags courses
// @Produce json
// @Param search query string false "Free-text search over title, instructor and category"
// @Param category query string false "Exact category or 'Tất cả'"
// @Param price query int false "Index into the price range list"
// @Param sort query string false "popularity, rating, newest, price-asc, price-desc"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.PaginatedResponse
// @Router /courses [get]
func (cc *CatalogController) GetCourses(c *fiber.Ctx) error {
	search := c.Query("search")
	category := c.Query("category", catalog.AllCategories)
	priceRange := c.QueryInt("price", 0)
	sortBy := c.Query("sort")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 12)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}

	filtered := services.FilterCourses(catalog.Courses(), search, category, priceRange)
	sorted := services.SortCourses(filtered, sortBy)

	start := (page - 1) * pageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	end := start + pageSize
	if end > len(sorted) {
		end = len(sorted)
	}

	return utils.Paginate(c, sorted[start:end], int64(len(sorted)), page, pageSize)
}

// [+] GetFeaturedCourses godoc
// @Summary Top courses by rating and enrollment
// @Tags courses
// @Produce json
// @Param limit query int false "Maximum number of courses"
// @Success 200 {object} map[string]interface{}
// @Router /courses/featured [get]
func (cc *CatalogController) GetFeaturedCourses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 8)

	return c.JSON(fiber.Map{
		"courses": services.FeaturedCourses(catalog.Courses(), limit),
	})
}

// [+] GetCatalogMeta godoc
// @Summary Catalog metadata
// @Description Category list, price ranges and aggregate statistics
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /courses/meta [get]
func (cc *CatalogController) GetCatalogMeta(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories":   catalog.Categories,
		"price_ranges": catalog.PriceRanges,
		"stats":        services.Statistics(catalog.Courses()),
	})
}

// [+] GetCourseDetails godoc
// @Summary Single course by id
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /courses/{id} [get]
func (cc *CatalogController) GetCourseDetails(c *fiber.Ctx) error {
	course, ok := catalog.ByID(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	return c.JSON(fiber.Map{
		"course": course,
	})
}
