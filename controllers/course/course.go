package courseController

import (
	"techverse/database"
	"techverse/middleware"
	"techverse/models"

	"github.com/gofiber/fiber/v2"
)

// GetCourses returns the published course catalog (public)
func GetCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("is_published = ? AND is_deleted = ?", true, false).
		Order("price asc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns one published course by slug (public)
func GetCourseDetails(c *fiber.Ctx) error {
	slug := c.Params("id")

	var course models.Course
	if err := database.Database.Db.
		Where("slug = ? AND is_published = ? AND is_deleted = ?", slug, true, false).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
