package inquiryController

import (
	"log"

	"techverse/config"
	"techverse/database"
	"techverse/middleware"
	"techverse/services/apperr"
	"techverse/services/inquiry"
	"techverse/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitInquiry persists a public inquiry. First attempt adapts to the
// probed table schema; if the store rejects it, a minimal fallback record
// is tried; if that also fails, the client is given out-of-band contact
// channels instead of a bare error.
func SubmitInquiry(c *fiber.Ctx) error {
	data, ok := c.Locals("validatedInquiry").(*inquiry.FormData)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	record, err := inquiry.Submit(db, *data)
	if err != nil {
		if apperr.IsValidation(err) {
			return middleware.ValidationErrorResponse(c, map[string]string{"inquiry": err.Error()})
		}

		log.Printf("Full inquiry submission failed, trying basic path: %v", err)

		record, err = inquiry.SubmitBasic(db, *data)
		if err != nil {
			log.Printf("Basic inquiry submission failed: %v", err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "We could not save your inquiry. Please reach us directly.", fiber.Map{
				"contact_email": config.AppConfig.FallbackEmail,
				"whatsapp_url":  config.AppConfig.FallbackWhatsApp,
				"form_url":      config.AppConfig.FallbackFormURL,
			})
		}
	}

	// Notify the admin asynchronously; a mail failure never fails the request
	go utils.SendInquiryNotification(config.AppConfig.AdminEmail, record)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Inquiry submitted successfully!", record)
}
