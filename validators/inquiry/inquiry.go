package inquiryValidator

import (
	"strconv"
	"strings"
	"techverse/middleware"
	"techverse/services/inquiry"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type inquiryBody struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty,min=7,max=20"`
	CourseInterest string `json:"course_interest" validate:"omitempty,max=120"`
	Message        string `json:"message" validate:"omitempty,max=5000"`
}

// SubmitInquiry validates the public inquiry form body. The service layer
// re-checks name and email before touching the store; this handler rejects
// obviously malformed requests early.
func SubmitInquiry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(inquiryBody)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(reqData.Email)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[strings.ToLower(fieldErr.Field())] = "Failed on rule: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInquiry", &inquiry.FormData{
			Name:           reqData.Name,
			Email:          reqData.Email,
			Phone:          reqData.Phone,
			CourseInterest: reqData.CourseInterest,
			Message:        reqData.Message,
		})
		return c.Next()
	}
}

// InquiryID validates the numeric inquiry id param
func InquiryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Inquiry ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Inquiry ID!", nil)
		}

		c.Locals("inquiryID", uint(id))
		return c.Next()
	}
}

// SetStatus validates the admin inquiry status body
func SetStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Status) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Status is required!"})
		}

		c.Locals("validatedInquiryStatus", reqData.Status)
		return c.Next()
	}
}
