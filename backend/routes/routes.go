package routes

import (
	"log"

	"smartedu/backend/config"
	"smartedu/backend/controllers"
	"smartedu/backend/middleware"
	"smartedu/backend/stores"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, storage stores.Storage, cfg *config.Config, logger *log.Logger) {
	// Session routes
	sessionController := controllers.NewSessionController(cfg)
	app.Post("/api/session", sessionController.CreateSession)

	// Catalog routes (public)
	catalogController := controllers.NewCatalogController(cfg)
	app.Get("/api/courses", catalogController.GetCourses)
	app.Get("/api/courses/featured", catalogController.GetFeaturedCourses)
	app.Get("/api/courses/meta", catalogController.GetCatalogMeta)
	app.Get("/api/courses/:id", catalogController.GetCourseDetails)

	// Middleware
	sessionMiddleware := middleware.SessionMiddleware(cfg)

	// Favorites routes
	favoritesController := controllers.NewFavoritesController(storage, cfg, logger)
	favorites := app.Group("/api/favorites", sessionMiddleware)
	favorites.Get("/", favoritesController.GetFavorites)
	favorites.Post("/", favoritesController.AddFavorite)
	favorites.Post("/toggle", favoritesController.ToggleFavorite)
	favorites.Post("/bulk-remove", favoritesController.RemoveSelectedFavorites)
	favorites.Delete("/:id", favoritesController.RemoveFavorite)
	favorites.Delete("/", favoritesController.ClearFavorites)

	// View history routes
	historyController := controllers.NewHistoryController(storage, cfg, logger)
	history := app.Group("/api/history", sessionMiddleware)
	history.Get("/", historyController.GetHistory)
	history.Post("/", historyController.RecordView)
	history.Delete("/:id", historyController.RemoveFromHistory)
	history.Delete("/", historyController.ClearHistory)

	// Suggestions routes
	suggestionsController := controllers.NewSuggestionsController(storage, cfg, logger)
	app.Get("/api/suggestions", sessionMiddleware, suggestionsController.GetSuggestions)

	// Chat routes
	chatController := controllers.NewChatController(storage, cfg, logger, nil)
	chat := app.Group("/api/chat", sessionMiddleware)
	chat.Get("/", chatController.GetMessages)
	chat.Post("/", chatController.SendMessage)
	chat.Delete("/", chatController.ClearChat)
}
