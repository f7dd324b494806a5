// Package enrollment manages course enrollments and their payment
// lifecycle. The duplicate-enrollment check is advisory (read-then-insert);
// the composite unique index on (user_id, course_id) backstops the race at
// the store.
package enrollment

import (
	"errors"
	"time"

	"techverse/models"
	"techverse/services/apperr"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Data carries an enrollment request
type Data struct {
	CourseID       string `json:"course_id"`
	CourseName     string `json:"course_name"`
	CoursePrice    int    `json:"course_price"`
	PaymentLink    string `json:"payment_link"`
	DiscountCode   string `json:"discount_code"`
	DiscountAmount int    `json:"discount_amount"`
	Notes          string `json:"notes"`
}

// Stats is the derived statistics payload for the admin dashboard
type Stats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
	Cancelled int64 `json:"cancelled"`
	ThisMonth int64 `json:"thisMonth"`
}

// Enroll creates a pending enrollment for userID. Fails if the user is not
// authenticated, the discount is out of bounds, or an enrollment for
// (user, course) already exists.
func Enroll(db *gorm.DB, userID uint, data Data) (*models.Enrollment, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthRequired
	}
	if data.CourseID == "" {
		return nil, apperr.NewValidation("course_id", "Course ID is required")
	}
	if data.DiscountAmount < 0 || data.DiscountAmount > data.CoursePrice {
		return nil, apperr.NewValidation("discount_amount", "Discount must be between 0 and the course price")
	}

	// Check if user is already enrolled. Advisory only: a concurrent enroll
	// can slip past this read, the unique index catches it.
	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, data.CourseID).First(&existing).Error; err == nil {
		return nil, apperr.ErrAlreadyEnrolled
	}

	record := models.Enrollment{
		UserID:          userID,
		CourseID:        data.CourseID,
		CourseName:      data.CourseName,
		CoursePrice:     data.CoursePrice,
		EnrolledAt:      time.Now(),
		PaymentStatus:   models.PaymentPending,
		PaymentLink:     data.PaymentLink,
		DiscountApplied: data.DiscountCode != "",
		DiscountCode:    data.DiscountCode,
		DiscountAmount:  data.DiscountAmount,
		Notes:           data.Notes,
	}

	if err := db.Create(&record).Error; err != nil {
		return nil, apperr.WrapStore("failed to enroll", err)
	}

	return &record, nil
}

// ListForUser returns the user's enrollments, newest first. An
// unauthenticated caller gets an empty list, not an error.
func ListForUser(db *gorm.DB, userID uint) ([]models.Enrollment, error) {
	if userID == 0 {
		return []models.Enrollment{}, nil
	}

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).Order("enrolled_at DESC").Find(&enrollments).Error; err != nil {
		return nil, apperr.WrapStore("failed to fetch enrollments", err)
	}
	return enrollments, nil
}

// IsEnrolled reports whether the user has an enrollment for courseID.
// Lookup misses and store errors both collapse to false.
func IsEnrolled(db *gorm.DB, userID uint, courseID string) bool {
	if userID == 0 {
		return false
	}
	var record models.Enrollment
	err := db.Select("id").Where("user_id = ? AND course_id = ?", userID, courseID).First(&record).Error
	return err == nil
}

// ListAll returns every enrollment, newest first (admin view)
func ListAll(db *gorm.DB) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := db.Order("enrolled_at DESC").Find(&enrollments).Error; err != nil {
		return nil, apperr.WrapStore("failed to fetch all enrollments", err)
	}
	return enrollments, nil
}

// GetStats counts enrollments per payment status plus this calendar month
func GetStats(db *gorm.DB) (*Stats, error) {
	stats := &Stats{}

	if err := db.Model(&models.Enrollment{}).Count(&stats.Total).Error; err != nil {
		return nil, apperr.WrapStore("failed to fetch enrollment stats", err)
	}
	db.Model(&models.Enrollment{}).Where("payment_status = ?", models.PaymentPending).Count(&stats.Pending)
	db.Model(&models.Enrollment{}).Where("payment_status = ?", models.PaymentCompleted).Count(&stats.Completed)
	db.Model(&models.Enrollment{}).Where("payment_status = ?", models.PaymentFailed).Count(&stats.Failed)
	db.Model(&models.Enrollment{}).Where("payment_status = ?", models.PaymentCancelled).Count(&stats.Cancelled)

	monthStart := now.BeginningOfMonth()
	db.Model(&models.Enrollment{}).Where("enrolled_at >= ?", monthStart).Count(&stats.ThisMonth)

	return stats, nil
}

// SelfMarkCompleted lets the owning user mark their own pending enrollment
// as completed after paying through the payment link. Only the
// pending -> completed transition is allowed on this path.
func SelfMarkCompleted(db *gorm.DB, userID uint, enrollmentID uint) (*models.Enrollment, error) {
	if userID == 0 {
		return nil, apperr.ErrAuthRequired
	}

	var record models.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&record).Error; err != nil {
		return nil, apperr.WrapStore("enrollment not found", err)
	}
	if record.UserID != userID {
		return nil, apperr.ErrNotOwner
	}
	if record.PaymentStatus != models.PaymentPending {
		return nil, apperr.ErrNotPending
	}

	return setStatus(db, enrollmentID, models.PaymentCompleted, "")
}

// AdminSetStatus sets any payment status on any enrollment. No transition
// is rejected here; completed records can be reverted to pending. Business
// rules about what should move where are left to the operators.
func AdminSetStatus(db *gorm.DB, enrollmentID uint, status string, paymentReference string) (*models.Enrollment, error) {
	if !models.IsValidPaymentStatus(status) {
		return nil, apperr.NewValidation("status", "Invalid payment status")
	}
	return setStatus(db, enrollmentID, status, paymentReference)
}

// setStatus is the shared persist path for both status-mutation entry points
func setStatus(db *gorm.DB, enrollmentID uint, status string, paymentReference string) (*models.Enrollment, error) {
	update := map[string]interface{}{
		"payment_status": status,
		"updated_at":     time.Now(),
	}
	if paymentReference != "" {
		update["payment_reference"] = paymentReference
	}

	result := db.Model(&models.Enrollment{}).Where("id = ?", enrollmentID).Updates(update)
	if result.Error != nil {
		return nil, apperr.WrapStore("failed to update payment status", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperr.WrapStore("failed to update payment status", gorm.ErrRecordNotFound)
	}

	var record models.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&record).Error; err != nil {
		return nil, apperr.WrapStore("failed to read back enrollment", err)
	}
	return &record, nil
}

// IsNotFound reports whether err wraps a missing-record store error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
