package services

import (
	"sort"
	"strings"

	"smartedu/backend/catalog"
	"smartedu/backend/models"
)

// FilterCourses возвращает курсы, удовлетворяющие одновременно трём
// независимым условиям: текстовому запросу, категории и ценовому диапазону.
// Поиск — подстрока без учёта регистра по названию, имени преподавателя и
// категории. Пустой запрос и категория-сентинел пропускают все курсы;
// индекс диапазона вне списка означает отсутствие фильтра по цене.
// Порядок результата совпадает с порядком каталога.
func FilterCourses(courses []models.Course, query, category string, priceRange int) []models.Course {
	query = strings.ToLower(strings.TrimSpace(query))

	var byPrice *models.PriceRange
	if priceRange > 0 && priceRange < len(catalog.PriceRanges) {
		byPrice = &catalog.PriceRanges[priceRange]
	}

	filtered := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if query != "" &&
			!strings.Contains(strings.ToLower(course.Title), query) &&
			!strings.Contains(strings.ToLower(course.Instructor), query) &&
			!strings.Contains(strings.ToLower(course.Category), query) {
			continue
		}
		if category != "" && category != catalog.AllCategories && course.Category != category {
			continue
		}
		if byPrice != nil && (course.Price < byPrice.Min || course.Price > byPrice.Max) {
			continue
		}
		filtered = append(filtered, course)
	}
	return filtered
}

// SortCourses сортирует копию списка по выбранному режиму.
// Неизвестный режим оставляет порядок каталога.
func SortCourses(courses []models.Course, sortBy string) []models.Course {
	sorted := make([]models.Course, len(courses))
	copy(sorted, courses)

	switch sortBy {
	case "popularity":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Students > sorted[j].Students
		})
	case "rating":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case "newest":
		// Даты в формате ISO сравниваются как строки.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].LastUpdated > sorted[j].LastUpdated
		})
	case "price-asc":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case "price-desc":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	}
	return sorted
}

// FeaturedCourses возвращает лучшие курсы каталога: по рейтингу,
// при равенстве — по числу учеников.
func FeaturedCourses(courses []models.Course, limit int) []models.Course {
	sorted := make([]models.Course, len(courses))
	copy(sorted, courses)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].Students > sorted[j].Students
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Statistics считает сводную статистику каталога для главной страницы.
func Statistics(courses []models.Course) models.CatalogStats {
	stats := models.CatalogStats{TotalCourses: len(courses)}

	instructors := make(map[string]bool)
	ratingSum := 0.0
	for _, course := range courses {
		stats.TotalStudents += course.Students
		instructors[course.Instructor] = true
		ratingSum += course.Rating
	}
	stats.UniqueInstructors = len(instructors)

	if len(courses) > 0 {
		stats.AverageRating = ratingSum / float64(len(courses))
	}
	return stats
}
