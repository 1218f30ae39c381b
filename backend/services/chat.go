package services

import (
	"math/rand"
	"sort"
	"strings"
	"sync"

	"smartedu/backend/models"
)

// Profile — профиль предпочтений, по которому ассистент корректирует
// оценки соответствия. Пока используется единый мок-профиль.
type Profile struct {
	SkillLevel          string
	PreferredCategories []string
	Budget              string // Low, Medium, High
}

// DefaultProfile повторяет профиль "типичного" пользователя платформы.
var DefaultProfile = Profile{
	SkillLevel:          "Intermediate",
	PreferredCategories: []string{"Lập trình", "Thiết kế"},
	Budget:              "Medium",
}

type topicRule struct {
	keywords []string // первичные ключевые слова темы
	category string   // категория каталога для подбора курсов
	response string   // ответ, когда уточнение не сработало
	subs     []subRule
}

type subRule struct {
	keywords []string // уточняющие ключевые слова
	titles   []string // подстроки названий для сужения подборки
	response string
}

// Упорядоченная таблица тем. Тема срабатывает, если во входе встречается
// её первичное или любое уточняющее ключевое слово; уточнения проверяются
// по порядку, первое совпавшее выбирает ответ и сужает подборку.
var topicRules = []topicRule{
	{
		keywords: []string{"lập trình", "programming", "code"},
		category: "Lập trình",
		response: "Lập trình là lĩnh vực rộng lớn và thú vị! Dựa trên sở thích của bạn, đây là những khóa học tôi khuyên nên tham gia:",
		subs: []subRule{
			{
				keywords: []string{"react", "frontend"},
				titles:   []string{"react", "frontend"},
				response: "Tôi thấy bạn quan tâm đến React và Frontend Development! Dựa trên profile của bạn, tôi gợi ý những khóa học sau để nâng cao kỹ năng:",
			},
			{
				keywords: []string{"backend", "server"},
				titles:   []string{"node", "backend", "python"},
				response: "Backend development là bước tiếp theo tuyệt vời để trở thành Full-stack Developer. Đây là những khóa học phù hợp:",
			},
			{
				keywords: []string{"python", "data"},
				titles:   []string{"python"},
				response: "Python và Data Science đang rất hot hiện nay! Tôi đã tìm thấy những khóa học chất lượng cao:",
			},
		},
	},
	{
		keywords: []string{"tiếng anh", "english", "ielts"},
		category: "Ngoại ngữ",
		response: "Tiếng Anh mở ra nhiều cơ hội mới! Tôi đã chọn lọc những khóa học phù hợp với mục tiêu của bạn:",
		subs: []subRule{
			{
				keywords: []string{"giao tiếp", "communication"},
				titles:   []string{"giao tiếp"},
				response: "Tiếng Anh giao tiếp rất quan trọng trong môi trường làm việc quốc tế. Tôi gợi ý những khóa học thực tế:",
			},
			{
				keywords: []string{"ielts", "band"},
				titles:   []string{"ielts"},
				response: "IELTS là chứng chỉ quan trọng cho du học và công việc. Đây là những khóa học luyện thi hiệu quả:",
			},
		},
	},
	{
		keywords: []string{"marketing", "quảng cáo", "facebook ads"},
		category: "Marketing",
		response: "Digital Marketing đang phát triển mạnh! Tôi đã tìm thấy những khóa học toàn diện:",
		subs: []subRule{
			{
				keywords: []string{"facebook", "social"},
				titles:   []string{"facebook"},
				response: "Facebook Ads là công cụ marketing mạnh mẽ! Tôi gợi ý những khóa học thực hành:",
			},
			{
				keywords: []string{"seo", "google"},
				titles:   []string{"seo", "google"},
				response: "SEO và Google Ads giúp tăng khả năng hiển thị online. Đây là những khóa học chuyên sâu:",
			},
		},
	},
	{
		keywords: []string{"thiết kế", "design", "ui/ux"},
		category: "Thiết kế",
		response: "Thiết kế sáng tạo mở ra nhiều cơ hội nghề nghiệp! Tôi đã chọn lọc những khóa học chất lượng:",
		subs: []subRule{
			{
				keywords: []string{"figma", "ui"},
				titles:   []string{"figma"},
				response: "UI/UX Design là kỹ năng quan trọng trong thời đại số! Tôi gợi ý những khóa học thực tế:",
			},
			{
				keywords: []string{"photoshop", "adobe"},
				titles:   []string{"photoshop"},
				response: "Adobe Creative Suite là bộ công cụ thiết kế mạnh mẽ. Đây là những khóa học chuyên sâu:",
			},
		},
	},
	{
		keywords: []string{"kinh doanh", "business", "startup"},
		category: "Kinh doanh",
		response: "Kinh doanh và quản lý mở ra nhiều cơ hội! Tôi đã tìm thấy những khóa học phù hợp:",
		subs: []subRule{
			{
				keywords: []string{"khởi nghiệp", "startup"},
				titles:   []string{"khởi nghiệp"},
				response: "Khởi nghiệp cần nhiều kỹ năng và kiến thức! Tôi gợi ý những khóa học thiết thực:",
			},
			{
				keywords: []string{"tài chính", "finance"},
				titles:   []string{"tài chính"},
				response: "Quản lý tài chính là kỹ năng quan trọng cho mọi người. Đây là những khóa học hữu ích:",
			},
		},
	},
	{
		keywords: []string{"âm nhạc", "music", "piano", "guitar"},
		category: "Âm nhạc",
		response: "Âm nhạc nuôi dưỡng tâm hồn và sáng tạo! Tôi gợi ý những khóa học từ cơ bản đến nâng cao:",
	},
	{
		keywords: []string{"sức khỏe", "health", "yoga", "meditation"},
		category: "Sức khỏe",
		response: "Sức khỏe là tài sản quý giá nhất! Tôi đã chọn lọc những khóa học tốt cho sức khỏe:",
	},
}

// Запасные ответы, когда ни одна тема не совпала.
var fallbackResponses = []string{
	"Tôi hiểu bạn đang tìm kiếm khóa học phù hợp. Dựa trên profile và sở thích của bạn, tôi gợi ý những khóa học sau:",
	"Tuyệt vời! Tôi đã phân tích yêu cầu của bạn và tìm thấy những khóa học phù hợp:",
	"Dựa trên mục tiêu học tập của bạn, đây là những khóa học tôi khuyên nên tham gia:",
	"Tôi đã tìm kiếm và chọn lọc những khóa học chất lượng cao phù hợp với bạn:",
	"Cảm ơn bạn đã chia sẻ! Tôi gợi ý những khóa học sau để đạt được mục tiêu của bạn:",
}

// ChatEngine подбирает ответ и рекомендации по тексту сообщения.
// Источник случайности инъецируется, чтобы тесты были детерминированными.
// Один движок обслуживает все запросы, поэтому генератор защищён мьютексом.
type ChatEngine struct {
	mu      sync.Mutex
	rand    *rand.Rand
	profile Profile
}

func NewChatEngine(rng *rand.Rand) *ChatEngine {
	return &ChatEngine{rand: rng, profile: DefaultProfile}
}

// Intn возвращает случайное число из общего источника движка.
func (e *ChatEngine) Intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rand.Intn(n)
}

// Respond возвращает текст ответа и подборку курсов для сообщения
// пользователя. Функция тотальна: на любой вход найдётся ответ,
// подборка может быть пустой.
func (e *ChatEngine) Respond(message string, courses []models.Course) (string, []models.SuggestedCourse) {
	lower := strings.ToLower(message)

	rule, sub := matchTopic(lower)

	var response string
	switch {
	case sub != nil:
		response = sub.response
	case rule != nil:
		response = rule.response
	default:
		response = fallbackResponses[e.Intn(len(fallbackResponses))]
	}

	filtered := courses
	if rule != nil {
		filtered = filterByRule(courses, rule, sub)
	}

	suggestions := e.suggest(filtered)
	return response, suggestions
}

func matchTopic(lower string) (*topicRule, *subRule) {
	for i := range topicRules {
		rule := &topicRules[i]
		matched := containsAny(lower, rule.keywords)
		var sub *subRule
		for j := range rule.subs {
			if containsAny(lower, rule.subs[j].keywords) {
				sub = &rule.subs[j]
				matched = true
				break
			}
		}
		if matched {
			return rule, sub
		}
	}
	return nil, nil
}

func filterByRule(courses []models.Course, rule *topicRule, sub *subRule) []models.Course {
	filtered := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if course.Category != rule.category {
			continue
		}
		if sub != nil && !containsAny(strings.ToLower(course.Title), sub.titles) {
			continue
		}
		filtered = append(filtered, course)
	}
	return filtered
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// suggest превращает подборку в рекомендации с локальной оценкой:
// база 70 плюс бонусы за совпадение с профилем, сортировка по оценке,
// усечение до случайной длины 2–4.
func (e *ChatEngine) suggest(courses []models.Course) []models.SuggestedCourse {
	suggestions := make([]models.SuggestedCourse, 0, len(courses))
	for _, course := range courses {
		score := 70
		reason := "Khóa học " + course.Category + " phù hợp với yêu cầu của bạn"

		for _, preferred := range e.profile.PreferredCategories {
			if course.Category == preferred {
				score += 15
				break
			}
		}
		if course.Level == e.profile.SkillLevel {
			score += 10
		}
		switch e.profile.Budget {
		case "Low":
			if course.Price < 300000 {
				score += 5
			}
		case "Medium":
			if course.Price >= 300000 && course.Price <= 500000 {
				score += 5
			}
		case "High":
			if course.Price > 500000 {
				score += 5
			}
		}

		lowerTitle := strings.ToLower(course.Title)
		switch {
		case strings.Contains(lowerTitle, "react"):
			reason = "Phù hợp với mục tiêu trở thành Frontend Developer"
		case strings.Contains(lowerTitle, "ui/ux"):
			reason = "Bổ sung kỹ năng thiết kế cho Frontend Developer"
		case strings.Contains(lowerTitle, "giao tiếp"):
			reason = "Cải thiện kỹ năng giao tiếp quốc tế"
		case strings.Contains(lowerTitle, "ielts"):
			reason = "Chứng chỉ quốc tế cho cơ hội du học và làm việc"
		}

		level := course.Level
		if level == "" {
			level = "Beginner"
		}
		suggestions = append(suggestions, models.SuggestedCourse{
			ID:         course.ID,
			Title:      course.Title,
			Instructor: course.Instructor,
			Price:      course.Price,
			Image:      course.Image,
			Reason:     reason,
			MatchScore: score,
			Category:   course.Category,
			Level:      level,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})

	limit := e.Intn(3) + 2 // 2–4 рекомендации
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
