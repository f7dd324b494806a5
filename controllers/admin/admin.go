package adminController

import (
	"log"

	"techverse/database"
	"techverse/middleware"
	"techverse/services/apperr"
	"techverse/services/enrollment"
	"techverse/services/inquiry"

	"github.com/gofiber/fiber/v2"
)

// GetEnrollments lists all enrollments, optionally filtered by payment
// status and a case-insensitive search over course name, user id and
// course id. Filtering is applied over the full fetched set.
func GetEnrollments(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedEnrollmentQuery").(*struct {
		Status string `query:"status"`
		Search string `query:"search"`
	})

	enrollments, err := enrollment.ListAll(database.Database.Db)
	if err != nil {
		log.Printf("Error fetching all enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	if reqData != nil {
		enrollments = enrollment.Filter(enrollments, reqData.Status, reqData.Search)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments":   enrollments,
		"total":         len(enrollments),
		"total_savings": enrollment.TotalSavings(enrollments),
	})
}

// GetEnrollmentStats returns per-status counts plus this month's total
func GetEnrollmentStats(c *fiber.Ctx) error {
	stats, err := enrollment.GetStats(database.Database.Db)
	if err != nil {
		log.Printf("Error fetching enrollment stats: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollment stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment stats fetched successfully!", stats)
}

// SetEnrollmentStatus sets any payment status on any enrollment
func SetEnrollmentStatus(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)

	reqData, ok := c.Locals("validatedStatus").(*struct {
		Status           string `json:"status"`
		PaymentReference string `json:"payment_reference"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	record, err := enrollment.AdminSetStatus(database.Database.Db, enrollmentID, reqData.Status, reqData.PaymentReference)
	if err != nil {
		switch {
		case apperr.IsValidation(err):
			return middleware.ValidationErrorResponse(c, map[string]string{"status": err.Error()})
		case enrollment.IsNotFound(err):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		default:
			log.Printf("Error updating payment status: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment status!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment status updated successfully!", record)
}

// GetInquiries lists all inquiries, newest first
func GetInquiries(c *fiber.Ctx) error {
	inquiries, err := inquiry.List(database.Database.Db)
	if err != nil {
		log.Printf("Error fetching inquiries: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch inquiries!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inquiries fetched successfully!", fiber.Map{
		"inquiries": inquiries,
		"total":     len(inquiries),
	})
}

// SetInquiryStatus updates an inquiry's status
func SetInquiryStatus(c *fiber.Ctx) error {
	inquiryID := c.Locals("inquiryID").(uint)

	status, ok := c.Locals("validatedInquiryStatus").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	record, err := inquiry.UpdateStatus(database.Database.Db, inquiryID, status)
	if err != nil {
		switch {
		case apperr.IsValidation(err):
			return middleware.ValidationErrorResponse(c, map[string]string{"status": err.Error()})
		case enrollment.IsNotFound(err):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Inquiry not found!", nil)
		default:
			log.Printf("Error updating inquiry status: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update inquiry status!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inquiry status updated successfully!", record)
}

// InquiriesHealth reports connectivity and the live column set of the
// inquiries table
func InquiriesHealth(c *fiber.Ctx) error {
	report := inquiry.TestConnection(database.Database.Db)

	status := fiber.StatusOK
	if !report.Connected {
		status = fiber.StatusServiceUnavailable
	}

	return middleware.JsonResponse(c, status, report.Connected, "Inquiries table health checked!", report)
}
