package catalog

import (
	"fmt"

	"smartedu/backend/models"
)

// Категория-сентинел "все категории" в фильтрах каталога.
const AllCategories = "Tất cả"

// Categories — закрытый список категорий каталога.
var Categories = []string{
	"Lập trình",
	"Ngoại ngữ",
	"Marketing",
	"Thiết kế",
	"Kinh doanh",
	"Âm nhạc",
	"Sức khỏe",
	"Khác",
}

// PriceRanges — фиксированные ценовые диапазоны фильтра.
// Нулевой индекс — "без фильтра по цене".
var PriceRanges = []models.PriceRange{
	{Min: 0, Max: 10000000, Label: "Tất cả mức giá"},
	{Min: 0, Max: 300000, Label: "Dưới 300K"},
	{Min: 300000, Max: 500000, Label: "300K - 500K"},
	{Min: 500000, Max: 10000000, Label: "Trên 500K"},
}

var byID map[string]models.Course

func init() {
	byID = make(map[string]models.Course, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}
}

// Courses возвращает полный каталог в исходном порядке.
// Вызывающий не должен изменять возвращаемый срез.
func Courses() []models.Course {
	return courses
}

// ByID ищет курс по идентификатору.
func ByID(id string) (models.Course, bool) {
	course, ok := byID[id]
	return course, ok
}

// Validate проверяет инварианты каталога: уникальность идентификаторов
// и что originalPrice не меньше price. Вызывается при старте сервиса.
func Validate() error {
	seen := make(map[string]bool, len(courses))
	for _, course := range courses {
		if seen[course.ID] {
			return fmt.Errorf("duplicate course id %q", course.ID)
		}
		seen[course.ID] = true

		if course.OriginalPrice != 0 && course.OriginalPrice < course.Price {
			return fmt.Errorf("course %q: original price %d below price %d",
				course.ID, course.OriginalPrice, course.Price)
		}
	}
	return nil
}
