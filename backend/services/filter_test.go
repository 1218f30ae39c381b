package services

import (
	"testing"

	"smartedu/backend/catalog"
	"smartedu/backend/models"

	"github.com/stretchr/testify/assert"
)

func testCourses() []models.Course {
	return []models.Course{
		{ID: "1", Title: "React.js Toàn Tập", Instructor: "Trần Thị B", Price: 399000, Rating: 4.9, Students: 12000, Category: "Lập trình", LastUpdated: "2024-01-18"},
		{ID: "2", Title: "Luyện Thi IELTS", Instructor: "David Smith", Price: 599000, Rating: 4.8, Students: 14000, Category: "Ngoại ngữ", LastUpdated: "2024-01-12"},
		{ID: "3", Title: "Figma Masterclass", Instructor: "Nguyễn Văn P", Price: 280000, Rating: 4.7, Students: 5600, Category: "Thiết kế", LastUpdated: "2024-01-07"},
		{ID: "4", Title: "SEO Lên Top Google", Instructor: "Đặng Văn G", Price: 450000, Rating: 4.7, Students: 6200, Category: "Marketing", LastUpdated: "2024-01-16"},
	}
}

func TestFilterCoursesEmptyQueryMatchesEverything(t *testing.T) {
	courses := testCourses()

	filtered := FilterCourses(courses, "", catalog.AllCategories, 0)

	assert.Equal(t, len(courses), len(filtered))
}

func TestFilterCoursesSearchIsCaseInsensitive(t *testing.T) {
	courses := testCourses()

	byTitle := FilterCourses(courses, "REACT", catalog.AllCategories, 0)
	byInstructor := FilterCourses(courses, "david", catalog.AllCategories, 0)
	byCategory := FilterCourses(courses, "thiết kế", catalog.AllCategories, 0)

	assert.Len(t, byTitle, 1)
	assert.Equal(t, "1", byTitle[0].ID)
	assert.Len(t, byInstructor, 1)
	assert.Equal(t, "2", byInstructor[0].ID)
	assert.Len(t, byCategory, 1)
	assert.Equal(t, "3", byCategory[0].ID)
}

func TestFilterCoursesByCategory(t *testing.T) {
	courses := testCourses()

	filtered := FilterCourses(courses, "", "Lập trình", 0)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
}

func TestFilterCoursesPriceRangeBounds(t *testing.T) {
	// Каждый результат фильтра по диапазону обязан лежать внутри границ.
	for idx := 1; idx < len(catalog.PriceRanges); idx++ {
		bounds := catalog.PriceRanges[idx]
		filtered := FilterCourses(catalog.Courses(), "", catalog.AllCategories, idx)

		for _, course := range filtered {
			assert.GreaterOrEqual(t, course.Price, bounds.Min)
			assert.LessOrEqual(t, course.Price, bounds.Max)
		}
	}
}

func TestFilterCoursesPriceRangeOutOfBoundsIgnored(t *testing.T) {
	courses := testCourses()

	filtered := FilterCourses(courses, "", catalog.AllCategories, 99)

	assert.Equal(t, len(courses), len(filtered))
}

func TestFilterCoursesAllPredicatesCombined(t *testing.T) {
	courses := testCourses()

	// "300K - 500K" отсекает IELTS, категория отсекает всё кроме React.
	filtered := FilterCourses(courses, "trần", "Lập trình", 2)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)
}

func TestFilterCoursesNeverFails(t *testing.T) {
	assert.Empty(t, FilterCourses(nil, "react", "Lập trình", 1))
	assert.Empty(t, FilterCourses(testCourses(), "không tồn tại", catalog.AllCategories, 0))
}

func TestSortCourses(t *testing.T) {
	courses := testCourses()

	byPopularity := SortCourses(courses, "popularity")
	assert.Equal(t, "2", byPopularity[0].ID)

	byRating := SortCourses(courses, "rating")
	assert.Equal(t, "1", byRating[0].ID)

	byNewest := SortCourses(courses, "newest")
	assert.Equal(t, "1", byNewest[0].ID)

	byPriceAsc := SortCourses(courses, "price-asc")
	assert.Equal(t, "3", byPriceAsc[0].ID)

	byPriceDesc := SortCourses(courses, "price-desc")
	assert.Equal(t, "2", byPriceDesc[0].ID)

	// Неизвестный режим сохраняет порядок каталога.
	unchanged := SortCourses(courses, "unknown")
	assert.Equal(t, courses, unchanged)
}

func TestSortCoursesDoesNotMutateInput(t *testing.T) {
	courses := testCourses()
	original := make([]models.Course, len(courses))
	copy(original, courses)

	SortCourses(courses, "price-asc")

	assert.Equal(t, original, courses)
}

func TestFeaturedCoursesOrder(t *testing.T) {
	courses := testCourses()

	featured := FeaturedCourses(courses, 3)

	assert.Len(t, featured, 3)
	assert.Equal(t, "1", featured[0].ID) // рейтинг 4.9
	assert.Equal(t, "2", featured[1].ID) // рейтинг 4.8
	// При равном рейтинге решает число учеников.
	assert.Equal(t, "4", featured[2].ID)
}

func TestStatistics(t *testing.T) {
	stats := Statistics(testCourses())

	assert.Equal(t, 4, stats.TotalCourses)
	assert.Equal(t, 37800, stats.TotalStudents)
	assert.Equal(t, 4, stats.UniqueInstructors)
	assert.InDelta(t, 4.775, stats.AverageRating, 0.001)
}

func TestStatisticsEmptyCatalog(t *testing.T) {
	stats := Statistics(nil)

	assert.Equal(t, 0, stats.TotalCourses)
	assert.Equal(t, 0.0, stats.AverageRating)
}
