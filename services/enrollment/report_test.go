package enrollment_test

import (
	"testing"

	"techverse/models"
	"techverse/services/enrollment"

	"github.com/stretchr/testify/assert"
)

func TestTotalsOverMixedStatuses(t *testing.T) {
	records := []models.Enrollment{
		{CoursePrice: 1000, DiscountAmount: 100, PaymentStatus: models.PaymentCompleted},
		{CoursePrice: 500, DiscountAmount: 50, PaymentStatus: models.PaymentPending},
	}

	// Only the completed record counts toward spend; savings count everything
	assert.Equal(t, 900, enrollment.TotalSpent(records))
	assert.Equal(t, 150, enrollment.TotalSavings(records))
}

func TestTotalsEmpty(t *testing.T) {
	assert.Zero(t, enrollment.TotalSpent(nil))
	assert.Zero(t, enrollment.TotalSavings(nil))
}

func TestTotalSpentIgnoresFailedAndCancelled(t *testing.T) {
	records := []models.Enrollment{
		{CoursePrice: 1000, DiscountAmount: 0, PaymentStatus: models.PaymentFailed},
		{CoursePrice: 2000, DiscountAmount: 200, PaymentStatus: models.PaymentCancelled},
		{CoursePrice: 3000, DiscountAmount: 300, PaymentStatus: models.PaymentCompleted},
	}

	assert.Equal(t, 2700, enrollment.TotalSpent(records))
	assert.Equal(t, 500, enrollment.TotalSavings(records))
}

func TestFilterByStatus(t *testing.T) {
	records := []models.Enrollment{
		{CourseID: "a", PaymentStatus: models.PaymentCompleted},
		{CourseID: "b", PaymentStatus: models.PaymentPending},
		{CourseID: "c", PaymentStatus: models.PaymentCompleted},
	}

	filtered := enrollment.Filter(records, models.PaymentCompleted, "")
	assert.Len(t, filtered, 2)

	filtered = enrollment.Filter(records, "", "")
	assert.Len(t, filtered, 3)
}

func TestFilterBySearch(t *testing.T) {
	records := []models.Enrollment{
		{UserID: 42, CourseID: "web-development", CourseName: "Full Stack Web Development", PaymentStatus: models.PaymentPending},
		{UserID: 7, CourseID: "data-science", CourseName: "Data Science & Machine Learning", PaymentStatus: models.PaymentPending},
	}

	// Case-insensitive over course name
	filtered := enrollment.Filter(records, "", "machine LEARNING")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "data-science", filtered[0].CourseID)

	// Substring over user id
	filtered = enrollment.Filter(records, "", "42")
	assert.Len(t, filtered, 1)
	assert.Equal(t, uint(42), filtered[0].UserID)

	// Substring over course id
	filtered = enrollment.Filter(records, "", "web-dev")
	assert.Len(t, filtered, 1)

	filtered = enrollment.Filter(records, "", "no-match")
	assert.Empty(t, filtered)
}

func TestFilterCombinesStatusAndSearch(t *testing.T) {
	records := []models.Enrollment{
		{CourseID: "web-development", CourseName: "Full Stack Web Development", PaymentStatus: models.PaymentCompleted},
		{CourseID: "web-development", CourseName: "Full Stack Web Development", PaymentStatus: models.PaymentPending},
	}

	filtered := enrollment.Filter(records, models.PaymentPending, "full stack")
	assert.Len(t, filtered, 1)
	assert.Equal(t, models.PaymentPending, filtered[0].PaymentStatus)
}
