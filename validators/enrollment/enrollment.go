package enrollmentValidator

import (
	"strconv"
	"strings"
	"techverse/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type EnrollRequest struct {
	DiscountCode   string `json:"discount_code" validate:"omitempty,max=64"`
	DiscountAmount int    `json:"discount_amount" validate:"omitempty,min=0"`
	Notes          string `json:"notes" validate:"omitempty,max=2000"`
}

// EnrollCourse validates the course slug param and the optional body fields
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("id"))
		if courseSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		reqData := new(EnrollRequest)
		// Body is optional: a plain enroll has no discount or notes
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
			if err := validate.Struct(reqData); err != nil {
				errors := make(map[string]string)
				for _, fieldErr := range err.(validator.ValidationErrors) {
					errors[strings.ToLower(fieldErr.Field())] = "Failed on rule: " + fieldErr.Tag()
				}
				return middleware.ValidationErrorResponse(c, errors)
			}
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// EnrollmentID validates the numeric enrollment id param
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Enrollment ID!", nil)
		}

		c.Locals("enrollmentID", uint(id))
		return c.Next()
	}
}

// SetStatus validates the admin status-update body
func SetStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status           string `json:"status"`
			PaymentReference string `json:"payment_reference"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Status) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Status is required!"})
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}

// ListQuery validates the admin list filters
func ListQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `query:"status"`
			Search string `query:"search"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedEnrollmentQuery", reqData)
		return c.Next()
	}
}
