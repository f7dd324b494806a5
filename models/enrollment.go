package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment lifecycle states. Any state may be written over any other;
// business rules about transitions are left to operators.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentCancelled = "cancelled"
)

// IsValidPaymentStatus reports whether s is one of the payment lifecycle states
func IsValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentCancelled:
		return true
	}
	return false
}

// Enrollment tracks a user's enrollment in a course with its payment lifecycle
type Enrollment struct {
	gorm.Model
	UserID           uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID         string    `json:"course_id" gorm:"index;not null;uniqueIndex:idx_enrollment_user_course"`
	CourseName       string    `json:"course_name"`
	CoursePrice      int       `json:"course_price"` // price snapshot at enrollment time
	EnrolledAt       time.Time `json:"enrolled_at" gorm:"index"`
	PaymentStatus    string    `json:"payment_status" gorm:"default:'pending'"`
	PaymentLink      string    `json:"payment_link"`
	PaymentReference string    `json:"payment_reference"`
	DiscountApplied  bool      `json:"discount_applied" gorm:"default:false"`
	DiscountCode     string    `json:"discount_code"`
	DiscountAmount   int       `json:"discount_amount" gorm:"default:0"`
	Notes            string    `json:"notes"`
	ReminderSent     bool      `json:"-" gorm:"default:false"`
}
