package controllers

import (
	"smartedu/backend/config"
	"smartedu/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SessionController struct {
	Cfg *config.Config
}

func NewSessionController(cfg *config.Config) *SessionController {
	return &SessionController{Cfg: cfg}
}

// [+] CreateSession godoc
// @Summary Create an anonymous session
// @Description Issues a session token that scopes favorites, view history and chat
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} utils.ErrorResponse
// @Router /session [post]
func (sc *SessionController) CreateSession(c *fiber.Ctx) error {
	sessionID := uuid.NewString()

	token, err := utils.GenerateSessionToken(sessionID, sc.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"session": fiber.Map{
			"id": sessionID,
		},
	})
}
