package enrollment_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"techverse/models"
	"techverse/services/apperr"
	"techverse/services/enrollment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:enrollment_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(name), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Enrollment{}))
	return db
}

func webDev() enrollment.Data {
	return enrollment.Data{
		CourseID:    "web-development",
		CourseName:  "Full Stack Web Development",
		CoursePrice: 4999,
		PaymentLink: "https://pay.techverse.academy/web-development",
	}
}

func TestEnrollCreatesPendingRecord(t *testing.T) {
	db := newTestDB(t)

	record, err := enrollment.Enroll(db, 7, webDev())
	require.NoError(t, err)

	assert.Equal(t, uint(7), record.UserID)
	assert.Equal(t, "web-development", record.CourseID)
	assert.Equal(t, models.PaymentPending, record.PaymentStatus)
	assert.False(t, record.DiscountApplied)
	assert.Zero(t, record.DiscountAmount)
	assert.False(t, record.EnrolledAt.IsZero())
}

func TestEnrollDuplicateRejected(t *testing.T) {
	db := newTestDB(t)

	_, err := enrollment.Enroll(db, 7, webDev())
	require.NoError(t, err)

	_, err = enrollment.Enroll(db, 7, webDev())
	require.ErrorIs(t, err, apperr.ErrAlreadyEnrolled)

	// Same course for another user is fine
	_, err = enrollment.Enroll(db, 8, webDev())
	require.NoError(t, err)

	list, err := enrollment.ListForUser(db, 7)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEnrollRequiresAuth(t *testing.T) {
	db := newTestDB(t)

	_, err := enrollment.Enroll(db, 0, webDev())
	require.ErrorIs(t, err, apperr.ErrAuthRequired)
}

func TestEnrollDiscountBounds(t *testing.T) {
	db := newTestDB(t)

	data := webDev()
	data.DiscountCode = "LAUNCH50"
	data.DiscountAmount = 5000 // exceeds the course price
	_, err := enrollment.Enroll(db, 7, data)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	data.DiscountAmount = -1
	_, err = enrollment.Enroll(db, 7, data)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	data.DiscountAmount = 500
	record, err := enrollment.Enroll(db, 7, data)
	require.NoError(t, err)
	assert.True(t, record.DiscountApplied)
	assert.Equal(t, "LAUNCH50", record.DiscountCode)
	assert.Equal(t, 500, record.DiscountAmount)
}

func TestListForUserNewestFirstAndUnauthenticated(t *testing.T) {
	db := newTestDB(t)

	older := models.Enrollment{UserID: 7, CourseID: "a", EnrolledAt: time.Now().Add(-48 * time.Hour), PaymentStatus: models.PaymentPending}
	newer := models.Enrollment{UserID: 7, CourseID: "b", EnrolledAt: time.Now(), PaymentStatus: models.PaymentPending}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	list, err := enrollment.ListForUser(db, 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].CourseID)
	assert.Equal(t, "a", list[1].CourseID)

	// No authenticated identity: empty list, not an error
	list, err = enrollment.ListForUser(db, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestIsEnrolled(t *testing.T) {
	db := newTestDB(t)

	_, err := enrollment.Enroll(db, 7, webDev())
	require.NoError(t, err)

	assert.True(t, enrollment.IsEnrolled(db, 7, "web-development"))
	assert.False(t, enrollment.IsEnrolled(db, 7, "data-science"))
	assert.False(t, enrollment.IsEnrolled(db, 8, "web-development"))
	assert.False(t, enrollment.IsEnrolled(db, 0, "web-development"))
}

func TestAdminSetStatusIsPermissive(t *testing.T) {
	db := newTestDB(t)

	record, err := enrollment.Enroll(db, 7, webDev())
	require.NoError(t, err)

	updated, err := enrollment.AdminSetStatus(db, record.ID, models.PaymentCompleted, "PAY-123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, updated.PaymentStatus)
	assert.Equal(t, "PAY-123", updated.PaymentReference)

	// completed back to pending is not rejected at this layer
	updated, err = enrollment.AdminSetStatus(db, record.ID, models.PaymentPending, "")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, updated.PaymentStatus)
	// Reference is untouched when not supplied
	assert.Equal(t, "PAY-123", updated.PaymentReference)
}

func TestAdminSetStatusValidation(t *testing.T) {
	db := newTestDB(t)

	_, err := enrollment.AdminSetStatus(db, 1, "refunded", "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	_, err = enrollment.AdminSetStatus(db, 999, models.PaymentCompleted, "")
	require.Error(t, err)
	assert.True(t, enrollment.IsNotFound(err))
}

func TestSelfMarkCompleted(t *testing.T) {
	db := newTestDB(t)

	record, err := enrollment.Enroll(db, 7, webDev())
	require.NoError(t, err)

	// Another user cannot complete it
	_, err = enrollment.SelfMarkCompleted(db, 8, record.ID)
	require.ErrorIs(t, err, apperr.ErrNotOwner)

	updated, err := enrollment.SelfMarkCompleted(db, 7, record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, updated.PaymentStatus)

	// Only pending enrollments can be self-completed
	_, err = enrollment.SelfMarkCompleted(db, 7, record.ID)
	require.ErrorIs(t, err, apperr.ErrNotPending)
}

func TestGetStats(t *testing.T) {
	db := newTestDB(t)

	thisMonth := time.Now()
	past := time.Now().AddDate(0, -2, 0)

	seed := []models.Enrollment{
		{UserID: 1, CourseID: "a", PaymentStatus: models.PaymentCompleted, EnrolledAt: thisMonth},
		{UserID: 2, CourseID: "a", PaymentStatus: models.PaymentPending, EnrolledAt: thisMonth},
		{UserID: 3, CourseID: "b", PaymentStatus: models.PaymentPending, EnrolledAt: past},
		{UserID: 4, CourseID: "b", PaymentStatus: models.PaymentFailed, EnrolledAt: past},
		{UserID: 5, CourseID: "c", PaymentStatus: models.PaymentCancelled, EnrolledAt: past},
	}
	require.NoError(t, db.Create(&seed).Error)

	stats, err := enrollment.GetStats(db)
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Failed)
	assert.Equal(t, int64(1), stats.Cancelled)
	assert.Equal(t, int64(2), stats.ThisMonth)
}

func TestListAllNewestFirst(t *testing.T) {
	db := newTestDB(t)

	seed := []models.Enrollment{
		{UserID: 1, CourseID: "a", PaymentStatus: models.PaymentPending, EnrolledAt: time.Now().Add(-time.Hour)},
		{UserID: 2, CourseID: "b", PaymentStatus: models.PaymentPending, EnrolledAt: time.Now()},
	}
	require.NoError(t, db.Create(&seed).Error)

	list, err := enrollment.ListAll(db)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].CourseID)
}
