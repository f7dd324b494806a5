package enrollment

import (
	"strconv"
	"strings"

	"techverse/models"
)

// TotalSpent sums the effective price (price minus discount) of completed
// enrollments only.
func TotalSpent(enrollments []models.Enrollment) int {
	total := 0
	for _, e := range enrollments {
		if e.PaymentStatus == models.PaymentCompleted {
			total += e.CoursePrice - e.DiscountAmount
		}
	}
	return total
}

// TotalSavings sums discounts over all enrollments regardless of status
func TotalSavings(enrollments []models.Enrollment) int {
	total := 0
	for _, e := range enrollments {
		total += e.DiscountAmount
	}
	return total
}

// Filter narrows an already-fetched enrollment list by payment status
// equality and by case-insensitive substring match over course name,
// user id and course id. Empty arguments match everything.
func Filter(enrollments []models.Enrollment, status, search string) []models.Enrollment {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]models.Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if status != "" && e.PaymentStatus != status {
			continue
		}
		if search != "" && !matches(e, search) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

func matches(e models.Enrollment, search string) bool {
	return strings.Contains(strings.ToLower(e.CourseName), search) ||
		strings.Contains(strconv.FormatUint(uint64(e.UserID), 10), search) ||
		strings.Contains(strings.ToLower(e.CourseID), search)
}
