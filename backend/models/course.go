package models

// Course описывает одну запись каталога. Каталог неизменяемый,
// записи загружаются один раз при старте сервиса.
type Course struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Instructor    string  `json:"instructor"`
	Price         int     `json:"price"`
	OriginalPrice int     `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating"`
	Students      int     `json:"students"`
	Duration      string  `json:"duration"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Level         string  `json:"level,omitempty"` // Beginner, Intermediate, Advanced
	Language      string  `json:"language,omitempty"`
	LastUpdated   string  `json:"lastUpdated,omitempty"`
	Certificate   bool    `json:"certificate,omitempty"`
}

// ViewedCourse — снимок курса в истории просмотров с отметкой времени.
type ViewedCourse struct {
	Course
	ViewedAt string `json:"viewedAt"`
}

// SuggestedCourse — рекомендация с пояснением и оценкой соответствия.
// MatchScore используется только для сортировки и отображения.
type SuggestedCourse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
	Price      int    `json:"price"`
	Image      string `json:"image"`
	Reason     string `json:"reason"`
	MatchScore int    `json:"matchScore"`
	Category   string `json:"category"`
	Level      string `json:"level"`
}

// PriceRange — ценовой диапазон для фильтрации каталога.
type PriceRange struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

// CatalogStats — сводная статистика каталога для главной страницы.
type CatalogStats struct {
	TotalCourses      int     `json:"total_courses"`
	TotalStudents     int     `json:"total_students"`
	UniqueInstructors int     `json:"unique_instructors"`
	AverageRating     float64 `json:"average_rating"`
}
