package services

import (
	"math"
	"sort"

	"smartedu/backend/models"
)

// Количество рекомендаций и параметры скоринга. Конкретные веса —
// настроечные константы, важен только их относительный порядок.
const (
	suggestionTarget = 4

	baseScore              = 50.0
	categoryBothBonus      = 30.0
	categoryFavoriteBonus  = 25.0
	categoryHistoryBonus   = 22.0
	instructorBothBonus    = 18.0
	instructorSingleBonus  = 15.0
	priceProximityBonus    = 10.0
	levelMatchBonus        = 8.0
	coldStartRatingBonus   = 25.0
	coldStartStudentsBonus = 18.0
	coldStartDiscountBonus = 12.0
)

// Лестница отображаемых оценок: внутренний порядок сохраняется,
// наружу уходят только нормализованные числа.
var displayScores = []int{95, 90, 85, 80}

type scoredCourse struct {
	course    models.Course
	score     float64
	reason    string
	qualified bool
}

// Recommend строит до четырёх рекомендаций по избранному и истории
// просмотров. Курсы, которые пользователь уже добавил в избранное или
// просматривал, исключаются. Функция тотальна: пустой каталог или
// отсутствие кандидатов дают пустой (или укороченный) результат.
func Recommend(courses []models.Course, favorites []models.Course, history []models.ViewedCourse) []models.SuggestedCourse {
	seen := make(map[string]bool, len(favorites)+len(history))
	favCategories := make(map[string]bool)
	histCategories := make(map[string]bool)
	favInstructors := make(map[string]bool)
	histInstructors := make(map[string]bool)

	levelCounts := make(map[string]int)
	priceSum := 0
	for _, course := range favorites {
		seen[course.ID] = true
		favCategories[course.Category] = true
		favInstructors[course.Instructor] = true
		if course.Level != "" {
			levelCounts[course.Level]++
		}
		priceSum += course.Price
	}
	for _, viewed := range history {
		seen[viewed.ID] = true
		histCategories[viewed.Category] = true
		histInstructors[viewed.Instructor] = true
	}

	avgFavPrice := 0.0
	if len(favorites) > 0 {
		avgFavPrice = float64(priceSum) / float64(len(favorites))
	}
	topLevel := ""
	topLevelCount := 0
	for level, count := range levelCounts {
		if count > topLevelCount {
			topLevel, topLevelCount = level, count
		}
	}

	hasSignals := len(favorites) > 0 || len(history) > 0

	candidates := make([]scoredCourse, 0, len(courses))
	for i, course := range courses {
		if seen[course.ID] {
			continue
		}

		cand := scoredCourse{
			course: course,
			score:  baseScore,
			reason: "Được nhiều học viên trên SmartEdu lựa chọn",
		}

		if hasSignals {
			// Бонусы в порядке приоритета; пояснение остаётся только
			// от самого приоритетного сработавшего сигнала.
			inFav := favCategories[course.Category]
			inHist := histCategories[course.Category]
			switch {
			case inFav && inHist:
				cand.score += categoryBothBonus
				cand.reason = "Chủ đề bạn yêu thích và thường xuyên xem"
				cand.qualified = true
			case inFav:
				cand.score += categoryFavoriteBonus
				cand.reason = "Cùng chủ đề với các khóa học bạn yêu thích"
				cand.qualified = true
			case inHist:
				cand.score += categoryHistoryBonus
				cand.reason = "Dựa trên các khóa học bạn đã xem gần đây"
				cand.qualified = true
			default:
				favInstr := favInstructors[course.Instructor]
				histInstr := histInstructors[course.Instructor]
				switch {
				case favInstr && histInstr:
					cand.score += instructorBothBonus
					cand.reason = "Giảng viên quen thuộc với bạn"
					cand.qualified = true
				case favInstr:
					cand.score += instructorSingleBonus
					cand.reason = "Cùng giảng viên với khóa học bạn yêu thích"
					cand.qualified = true
				case histInstr:
					cand.score += instructorSingleBonus
					cand.reason = "Giảng viên bạn đã từng tìm hiểu"
					cand.qualified = true
				case avgFavPrice > 0 && math.Abs(float64(course.Price)-avgFavPrice) <= avgFavPrice*0.2:
					cand.score += priceProximityBonus
					cand.reason = "Mức giá phù hợp với ngân sách của bạn"
					cand.qualified = true
				case topLevel != "" && course.Level == topLevel:
					cand.score += levelMatchBonus
					cand.reason = "Phù hợp với trình độ hiện tại của bạn"
					cand.qualified = true
				}
			}
		} else {
			// Холодный старт: без сигналов предпочитаем рейтинг и охват.
			switch {
			case course.Rating >= 4.7:
				cand.score += coldStartRatingBonus
				cand.reason = "Khóa học được đánh giá cao nhất"
				cand.qualified = true
			case course.Students >= 10000:
				cand.score += coldStartStudentsBonus
				cand.reason = "Hàng nghìn học viên đã tham gia"
				cand.qualified = true
			case course.OriginalPrice > 0:
				cand.score += coldStartDiscountBonus
				cand.reason = "Đang có ưu đãi hấp dẫn"
				cand.qualified = true
			}
		}

		// Небольшой сдвиг по индексу каталога гарантирует детерминизм
		// при равных оценках.
		cand.score -= float64(i) * 0.01
		candidates = append(candidates, cand)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	picked := make([]scoredCourse, 0, suggestionTarget)
	for _, cand := range candidates {
		if !cand.qualified {
			continue
		}
		picked = append(picked, cand)
		if len(picked) == suggestionTarget {
			break
		}
	}

	// Добор: самые популярные (rating × students) из оставшихся кандидатов.
	if len(picked) < suggestionTarget {
		rest := make([]scoredCourse, 0, len(candidates))
		for _, cand := range candidates {
			if !containsCourse(picked, cand.course.ID) {
				rest = append(rest, cand)
			}
		}
		sort.SliceStable(rest, func(i, j int) bool {
			return rest[i].course.Rating*float64(rest[i].course.Students) >
				rest[j].course.Rating*float64(rest[j].course.Students)
		})
		for _, cand := range rest {
			cand.reason = "Khóa học phổ biến trên SmartEdu"
			picked = append(picked, cand)
			if len(picked) == suggestionTarget {
				break
			}
		}
	}

	suggestions := make([]models.SuggestedCourse, 0, len(picked))
	for i, cand := range picked {
		level := cand.course.Level
		if level == "" {
			level = "Beginner"
		}
		suggestions = append(suggestions, models.SuggestedCourse{
			ID:         cand.course.ID,
			Title:      cand.course.Title,
			Instructor: cand.course.Instructor,
			Price:      cand.course.Price,
			Image:      cand.course.Image,
			Reason:     cand.reason,
			MatchScore: displayScores[i],
			Category:   cand.course.Category,
			Level:      level,
		})
	}
	return suggestions
}

func containsCourse(picked []scoredCourse, id string) bool {
	for _, cand := range picked {
		if cand.course.ID == id {
			return true
		}
	}
	return false
}
