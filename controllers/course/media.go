package controllers

import (
	"coursehub/config"
	"coursehub/middleware"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia stores a thumbnail or video file and returns its served URL
func UploadMedia(c *fiber.Ctx) error {
	_, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded!", nil)
	}

	if !utils.AllowedMediaFile(file.Filename) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File type not allowed!", nil)
	}

	savedPath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully!", fiber.Map{
		"url": utils.GetFileURL(savedPath),
	})
}
