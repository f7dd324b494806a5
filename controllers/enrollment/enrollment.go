package enrollmentController

import (
	"errors"
	"log"

	"techverse/database"
	"techverse/middleware"
	"techverse/models"
	"techverse/services/apperr"
	"techverse/services/enrollment"
	"techverse/utils"
	enrollmentValidator "techverse/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseSlug := c.Locals("courseSlug").(string)

	// Check if course exists and is published
	var course models.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", courseSlug, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not available!", nil)
	}

	reqData, _ := c.Locals("validatedEnroll").(*enrollmentValidator.EnrollRequest)
	if reqData == nil {
		reqData = &enrollmentValidator.EnrollRequest{}
	}

	record, err := enrollment.Enroll(database.Database.Db, userID, enrollment.Data{
		CourseID:       course.Slug,
		CourseName:     course.Title,
		CoursePrice:    course.Price,
		PaymentLink:    course.PaymentLink,
		DiscountCode:   reqData.DiscountCode,
		DiscountAmount: reqData.DiscountAmount,
		Notes:          reqData.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
		case apperr.IsValidation(err):
			return middleware.ValidationErrorResponse(c, map[string]string{"enrollment": err.Error()})
		default:
			log.Printf("Enrollment error: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", record)
}

func GetUserEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := enrollment.ListForUser(database.Database.Db, userID)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments":   enrollments,
		"total_spent":   enrollment.TotalSpent(enrollments),
		"total_savings": enrollment.TotalSavings(enrollments),
	})
}

// IsEnrolled reports whether the current user is enrolled in a course
func IsEnrolled(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseSlug := c.Locals("courseSlug").(string)

	enrolled := enrollment.IsEnrolled(database.Database.Db, userID, courseSlug)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
		"enrolled": enrolled,
	})
}

// MarkCompleted lets a user mark their own pending enrollment as paid
func MarkCompleted(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(uint)

	record, err := enrollment.SelfMarkCompleted(database.Database.Db, userID, enrollmentID)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotOwner):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This enrollment does not belong to you!", nil)
		case errors.Is(err, apperr.ErrNotPending):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment is not pending for this enrollment!", nil)
		case enrollment.IsNotFound(err):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		default:
			log.Printf("Error marking payment completed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment status!", nil)
		}
	}

	// Send confirmation email asynchronously
	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err == nil {
		go utils.SendPaymentConfirmation(user.Email, user.Name, record.CourseName, record.PaymentReference)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment marked as completed!", record)
}
