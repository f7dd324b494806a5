package inquiryRoutes

import (
	controllers "techverse/controllers/inquiry"
	validators "techverse/validators/inquiry"

	"github.com/gofiber/fiber/v2"
)

// SetupInquiryRoutes sets up the public inquiry submission route
func SetupInquiryRoutes(app *fiber.App) {
	app.Post("/inquiry", validators.SubmitInquiry(), controllers.SubmitInquiry)
}
