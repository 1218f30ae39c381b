package controllers

import (
	"log"

	"smartedu/backend/catalog"
	"smartedu/backend/config"
	"smartedu/backend/middleware"
	"smartedu/backend/services"
	"smartedu/backend/stores"

	"github.com/gofiber/fiber/v2"
)

type SuggestionsController struct {
	Storage stores.Storage
	Cfg     *config.Config
	Logger  *log.Logger
}

func NewSuggestionsController(storage stores.Storage, cfg *config.Config, logger *log.Logger) *SuggestionsController {
	return &SuggestionsController{Storage: storage, Cfg: cfg, Logger: logger}
}

// [+] GetSuggestions godoc
// @Summary Personalized course suggestions
// @Description Up to four courses ranked by favorites and view history of the session
// @Tags suggestions
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /suggestions [get]
func (sc *SuggestionsController) GetSuggestions(c *fiber.Ctx) error {
	sessionID := middleware.SessionID(c)
	favorites := stores.OpenFavorites(sc.Storage, sc.Logger, sessionID)
	history := stores.OpenHistory(sc.Storage, sc.Logger, sessionID, sc.Cfg.HistoryLimit)

	suggestions := services.Recommend(catalog.Courses(), favorites.Items(), history.Items())

	return c.JSON(fiber.Map{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}
