package userController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the current user's profile
func GetProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile updates free-form profile fields. Role and faculty status
// are never touched here.
func UpdateProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*struct {
		Name         string `json:"name"`
		Mobile       string `json:"mobile"`
		Bio          string `json:"bio"`
		Expertise    string `json:"expertise"`
		ProfileImage string `json:"profile_image"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Mobile != "" {
		user.Mobile = reqData.Mobile
	}
	if reqData.Bio != "" {
		user.Bio = reqData.Bio
	}
	if reqData.Expertise != "" {
		user.Expertise = reqData.Expertise
	}
	if reqData.ProfileImage != "" {
		user.ProfileImage = reqData.ProfileImage
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
