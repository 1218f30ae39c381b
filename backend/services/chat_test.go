package services

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"smartedu/backend/catalog"

	"github.com/stretchr/testify/assert"
)

func newTestEngine() *ChatEngine {
	return NewChatEngine(rand.New(rand.NewSource(1)))
}

func TestRespondReactBranch(t *testing.T) {
	engine := newTestEngine()

	response, suggestions := engine.Respond("tôi muốn học react", catalog.Courses())

	assert.Contains(t, response, "React và Frontend Development")
	assert.NotEmpty(t, suggestions)
	for _, suggestion := range suggestions {
		assert.Equal(t, "Lập trình", suggestion.Category)
		lowerTitle := strings.ToLower(suggestion.Title)
		assert.True(t,
			strings.Contains(lowerTitle, "react") || strings.Contains(lowerTitle, "frontend"),
			"unexpected suggestion %q", suggestion.Title)
	}
}

func TestRespondBackendBranch(t *testing.T) {
	engine := newTestEngine()

	response, suggestions := engine.Respond("mình muốn làm backend server", catalog.Courses())

	assert.Contains(t, response, "Backend development")
	for _, suggestion := range suggestions {
		assert.Equal(t, "Lập trình", suggestion.Category)
	}
}

func TestRespondGenericTopicBranch(t *testing.T) {
	engine := newTestEngine()

	response, suggestions := engine.Respond("tư vấn khóa học lập trình", catalog.Courses())

	assert.Contains(t, response, "Lập trình là lĩnh vực rộng lớn")
	assert.NotEmpty(t, suggestions)
	for _, suggestion := range suggestions {
		assert.Equal(t, "Lập trình", suggestion.Category)
	}
}

func TestRespondIELTSBranch(t *testing.T) {
	engine := newTestEngine()

	response, suggestions := engine.Respond("luyện ielts band 7.0", catalog.Courses())

	assert.Contains(t, response, "IELTS")
	for _, suggestion := range suggestions {
		assert.Equal(t, "Ngoại ngữ", suggestion.Category)
		assert.Contains(t, strings.ToLower(suggestion.Title), "ielts")
	}
}

func TestRespondFallbackPool(t *testing.T) {
	engine := newTestEngine()

	response, _ := engine.Respond("xin chào", catalog.Courses())

	assert.Contains(t, fallbackResponses, response)
}

func TestRespondSuggestionCountBounds(t *testing.T) {
	engine := newTestEngine()

	for i := 0; i < 20; i++ {
		_, suggestions := engine.Respond("tư vấn khóa học lập trình", catalog.Courses())
		assert.GreaterOrEqual(t, len(suggestions), 2)
		assert.LessOrEqual(t, len(suggestions), 4)
	}
}

func TestRespondSuggestionsSortedByScore(t *testing.T) {
	engine := newTestEngine()

	_, suggestions := engine.Respond("khóa học marketing", catalog.Courses())

	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].MatchScore, suggestions[i].MatchScore)
	}
}

func TestRespondProfileBonuses(t *testing.T) {
	engine := newTestEngine()

	_, suggestions := engine.Respond("tư vấn khóa học lập trình", catalog.Courses())

	// Профиль по умолчанию предпочитает "Lập trình": база 70 + 15.
	for _, suggestion := range suggestions {
		assert.GreaterOrEqual(t, suggestion.MatchScore, 85)
	}
}

func TestRespondConcurrentUse(t *testing.T) {
	engine := newTestEngine()
	courses := catalog.Courses()

	// Один движок обслуживает все запросы одновременно.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				response, _ := engine.Respond("xin chào", courses)
				assert.NotEmpty(t, response)
			}
		}()
	}
	wg.Wait()
}

func TestRespondEmptyCatalog(t *testing.T) {
	engine := newTestEngine()

	response, suggestions := engine.Respond("tôi muốn học react", nil)

	assert.NotEmpty(t, response)
	assert.Empty(t, suggestions)
}
