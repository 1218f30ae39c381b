package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"smartedu/backend/config"
	"smartedu/backend/routes"
	"smartedu/backend/stores"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp() *fiber.App {
	cfg := &config.Config{
		JWTSecret:      "testsecret",
		HistoryLimit:   50,
		ChatDelayMinMs: 0,
		ChatDelayMaxMs: 0, // без имитации набора в тестах
	}
	logger := log.New(io.Discard, "", 0)
	storage := stores.NewMemoryStorage()

	app := fiber.New()
	routes.SetupRoutes(app, storage, cfg, logger)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	if len(raw) > 0 {
		assert.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func newSession(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, body := doRequest(t, app, "POST", "/api/session", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func TestCreateSession(t *testing.T) {
	app := newTestApp()

	token := newSession(t, app)
	assert.NotEmpty(t, token)
}

func TestStateRoutesRequireSession(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/api/favorites", "/api/history", "/api/suggestions", "/api/chat"} {
		resp, body := doRequest(t, app, "GET", path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, false, body["success"], path)
	}
}

func TestGetCoursesPaginated(t *testing.T) {
	app := newTestApp()

	resp, body := doRequest(t, app, "GET", "/api/courses", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].([]interface{})
	assert.Len(t, data, 12)
	assert.Equal(t, float64(24), body["total"])
	assert.Equal(t, float64(1), body["page"])
}

func TestGetCoursesFiltered(t *testing.T) {
	app := newTestApp()

	query := url.Values{}
	query.Set("search", "react")
	query.Set("category", "Lập trình")

	resp, body := doRequest(t, app, "GET", "/api/courses?"+query.Encode(), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["total"])
}

func TestGetCoursesPriceRange(t *testing.T) {
	app := newTestApp()

	resp, body := doRequest(t, app, "GET", "/api/courses?price=1&pageSize=100", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, item := range body["data"].([]interface{}) {
		course := item.(map[string]interface{})
		assert.LessOrEqual(t, course["price"].(float64), float64(300000))
	}
}

func TestGetCourseDetails(t *testing.T) {
	app := newTestApp()

	resp, body := doRequest(t, app, "GET", "/api/courses/2", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	course := body["course"].(map[string]interface{})
	assert.Equal(t, "React.js - Xây dựng ứng dụng web hiện đại", course["title"])

	resp, body = doRequest(t, app, "GET", "/api/courses/999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Course not found", body["message"])
}

func TestGetCatalogMeta(t *testing.T) {
	app := newTestApp()

	resp, body := doRequest(t, app, "GET", "/api/courses/meta", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["categories"].([]interface{}), 8)
	assert.Len(t, body["price_ranges"].([]interface{}), 4)

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(24), stats["total_courses"])
}

func TestGetFeaturedCourses(t *testing.T) {
	app := newTestApp()

	resp, body := doRequest(t, app, "GET", "/api/courses/featured", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["courses"].([]interface{}), 8)
}

func TestFavoritesFlow(t *testing.T) {
	app := newTestApp()
	token := newSession(t, app)

	resp, body := doRequest(t, app, "POST", "/api/favorites", token, fiber.Map{"course_id": "2"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["added"])

	// Повторное добавление — no-op.
	_, body = doRequest(t, app, "POST", "/api/favorites", token, fiber.Map{"course_id": "2"})
	assert.Equal(t, false, body["added"])
	assert.Equal(t, float64(1), body["count"])

	resp, _ = doRequest(t, app, "POST", "/api/favorites", token, fiber.Map{"course_id": "999"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	_, body = doRequest(t, app, "POST", "/api/favorites/toggle", token, fiber.Map{"course_id": "2"})
	assert.Equal(t, false, body["favorite"])
	assert.Equal(t, float64(0), body["count"])

	doRequest(t, app, "POST", "/api/favorites", token, fiber.Map{"course_id": "1"})
	doRequest(t, app, "POST", "/api/favorites", token, fiber.Map{"course_id": "3"})
	_, body = doRequest(t, app, "POST", "/api/favorites/bulk-remove", token, fiber.Map{"course_ids": []string{"1", "3"}})
	assert.Equal(t, float64(2), body["removed"])

	doRequest(t, app, "POST", "/api/favorites", token, fiber.Map{"course_id": "1"})
	resp, body = doRequest(t, app, "DELETE", "/api/favorites", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	_, body = doRequest(t, app, "GET", "/api/favorites", token, nil)
	assert.Equal(t, float64(0), body["count"])
}

func TestHistoryFlow(t *testing.T) {
	app := newTestApp()
	token := newSession(t, app)

	doRequest(t, app, "POST", "/api/history", token, fiber.Map{"course_id": "1"})
	doRequest(t, app, "POST", "/api/history", token, fiber.Map{"course_id": "2"})
	// Повторный просмотр не создаёт дубликата.
	_, body := doRequest(t, app, "POST", "/api/history", token, fiber.Map{"course_id": "1"})
	assert.Equal(t, float64(2), body["count"])

	_, body = doRequest(t, app, "GET", "/api/history", token, nil)
	history := body["history"].([]interface{})
	assert.Len(t, history, 2)
	first := history[0].(map[string]interface{})
	assert.Equal(t, "1", first["id"])
	assert.NotEmpty(t, first["viewedAt"])

	resp, _ := doRequest(t, app, "DELETE", "/api/history/2", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, "DELETE", "/api/history", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, body = doRequest(t, app, "GET", "/api/history", token, nil)
	assert.Equal(t, float64(0), body["count"])
}

func TestSuggestionsExcludeFavorites(t *testing.T) {
	app := newTestApp()
	token := newSession(t, app)

	doRequest(t, app, "POST", "/api/favorites", token, fiber.Map{"course_id": "1"})

	resp, body := doRequest(t, app, "GET", "/api/suggestions", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	suggestions := body["suggestions"].([]interface{})
	assert.Len(t, suggestions, 4)
	for _, item := range suggestions {
		suggestion := item.(map[string]interface{})
		assert.NotEqual(t, "1", suggestion["id"])
	}
}

func TestChatFlow(t *testing.T) {
	app := newTestApp()
	token := newSession(t, app)

	_, body := doRequest(t, app, "GET", "/api/chat", token, nil)
	messages := body["messages"].([]interface{})
	assert.Len(t, messages, 1)

	resp, body := doRequest(t, app, "POST", "/api/chat", token, fiber.Map{"content": "tôi muốn học react"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	aiMessage := body["ai_message"].(map[string]interface{})
	assert.Contains(t, aiMessage["content"], "React và Frontend Development")
	assert.NotEmpty(t, aiMessage["suggestions"])

	_, body = doRequest(t, app, "GET", "/api/chat", token, nil)
	assert.Len(t, body["messages"].([]interface{}), 3)

	resp, body = doRequest(t, app, "POST", "/api/chat", token, fiber.Map{"content": "   "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Message is empty", body["message"])

	_, body = doRequest(t, app, "DELETE", "/api/chat", token, nil)
	assert.Len(t, body["messages"].([]interface{}), 1)
}
