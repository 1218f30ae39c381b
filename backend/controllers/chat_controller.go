package controllers

import (
	"log"
	"math/rand"
	"strings"
	"time"

	"smartedu/backend/catalog"
	"smartedu/backend/config"
	"smartedu/backend/middleware"
	"smartedu/backend/models"
	"smartedu/backend/services"
	"smartedu/backend/stores"
	"smartedu/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatController struct {
	Storage stores.Storage
	Cfg     *config.Config
	Logger  *log.Logger
	Engine  *services.ChatEngine
}

// NewChatController создаёт контроллер чата. Источник случайности общий
// для движка ответов и имитации задержки набора; тесты передают
// детерминированный.
func NewChatController(storage stores.Storage, cfg *config.Config, logger *log.Logger, rng *rand.Rand) *ChatController {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ChatController{
		Storage: storage,
		Cfg:     cfg,
		Logger:  logger,
		Engine:  services.NewChatEngine(rng),
	}
}

func (cc *ChatController) open(c *fiber.Ctx) *stores.Transcript {
	return stores.OpenTranscript(cc.Storage, cc.Logger, middleware.SessionID(c))
}

// [+] GetMessages godoc
// @Summary Chat transcript of the session
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /chat [get]
func (cc *ChatController) GetMessages(c *fiber.Ctx) error {
	transcript := cc.open(c)

	return c.JSON(fiber.Map{
		"messages": transcript.Messages(),
	})
}

// [+] SendMessage godoc
// @Summary Send a message to the assistant
// @Description Appends the user message, composes a reply with course suggestions after a simulated typing delay
// @Tags chat
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /chat [post]
func (cc *ChatController) SendMessage(c *fiber.Ctx) error {
	var input struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return utils.BadRequest(c, "Message is empty")
	}

	transcript := cc.open(c)

	userMessage := models.ChatMessage{
		ID:        "user-" + uuid.NewString(),
		Type:      models.ChatRoleUser,
		Content:   content,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	transcript.Append(userMessage)

	// Имитация "ассистент печатает"; задержка всегда завершается,
	// отмены и повторов нет.
	cc.typingDelay()

	response, suggestions := cc.Engine.Respond(content, catalog.Courses())

	aiMessage := models.ChatMessage{
		ID:          "ai-" + uuid.NewString(),
		Type:        models.ChatRoleAI,
		Content:     response,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Suggestions: suggestions,
	}
	transcript.Append(aiMessage)

	return c.JSON(fiber.Map{
		"user_message": userMessage,
		"ai_message":   aiMessage,
	})
}

// [+] ClearChat godoc
// @Summary Reset the chat to the greeting message
// @Tags chat
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /chat [delete]
func (cc *ChatController) ClearChat(c *fiber.Ctx) error {
	transcript := cc.open(c)
	transcript.Clear()

	return c.JSON(fiber.Map{
		"messages": transcript.Messages(),
	})
}

func (cc *ChatController) typingDelay() {
	min := cc.Cfg.ChatDelayMinMs
	max := cc.Cfg.ChatDelayMaxMs
	if max <= 0 || max < min {
		return
	}
	delay := min
	if max > min {
		delay += cc.Engine.Intn(max - min)
	}
	time.Sleep(time.Duration(delay) * time.Millisecond)
}
